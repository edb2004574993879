package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ordenes-api/internal/application/auth"
	"github.com/jhoicas/Ordenes-api/internal/application/workorder"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CreateWO    *workorder.CreateWorkOrderUseCase
	BatchStatus *workorder.BatchStatusUseCase
	WORepo      repository.WorkOrderRepository
	LineRepo    repository.LineItemRepository
	LedgerRepo  repository.StockLedgerRepository
	AuditRepo   repository.StatusUpdateRepository
	ProjectRepo repository.ProjectRepository
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Órdenes de trabajo (protegido)
	woHandler := NewWorkOrderHandler(deps.CreateWO, deps.BatchStatus, deps.WORepo, deps.LineRepo, deps.AuditRepo)
	workorders := protected.Group("/workorders")
	workorders.Post("/", RequireRole(entity.RoleAdmin, entity.RoleSupervisor), woHandler.Create)
	// El cambio de estado muta el kárdex: solo supervisores y almacenistas
	workorders.Post("/status", RequireRole(entity.RoleAdmin, entity.RoleSupervisor, entity.RoleAlmacenista), woHandler.UpdateStatusBatch)
	workorders.Get("/:code", woHandler.GetByCode)
	workorders.Get("/:code/history", woHandler.History)

	// Proyectos y kárdex (protegido, solo lectura)
	ledgerHandler := NewStockLedgerHandler(deps.LedgerRepo, deps.ProjectRepo)
	projectHandler := NewProjectHandler(deps.ProjectRepo, deps.WORepo)
	projects := protected.Group("/projects")
	projects.Get("/", projectHandler.List)
	projects.Get("/:id/workorders", projectHandler.ListWorkOrders)
	projects.Get("/:id/stock-ledger", ledgerHandler.ListByProject)
	projects.Post("/:id/stock-ledger", RequireRole(entity.RoleAdmin, entity.RoleSupervisor), ledgerHandler.Create)
}
