package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ordenes-api/internal/application/dto"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

// StockLedgerHandler consultas de kárdex por proyecto (protegido).
// Los contadores solo los muta el motor; aquí no hay escrituras de stock.
type StockLedgerHandler struct {
	ledgerRepo  repository.StockLedgerRepository
	projectRepo repository.ProjectRepository
}

// NewStockLedgerHandler construye el handler.
func NewStockLedgerHandler(ledgerRepo repository.StockLedgerRepository, projectRepo repository.ProjectRepository) *StockLedgerHandler {
	return &StockLedgerHandler{ledgerRepo: ledgerRepo, projectRepo: projectRepo}
}

// Create da de alta un ítem de kárdex con su stock total inicial. Los
// contadores arrancan en cero; de ahí en adelante solo los muta el motor.
func (h *StockLedgerHandler) Create(c *fiber.Ctx) error {
	projectID := c.Params("id")
	project, err := h.projectRepo.GetByID(projectID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if project == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proyecto no encontrado"})
	}

	var in dto.CreateStockLedgerItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Code == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code y name son requeridos"})
	}
	if in.TotalStock.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "total_stock no puede ser negativo"})
	}
	if existing, err := h.ledgerRepo.GetByCode(in.Code); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	} else if existing != nil {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "el ítem ya existe"})
	}

	item := &entity.StockLedgerItem{
		Code:       in.Code,
		ProjectID:  projectID,
		Name:       in.Name,
		TotalStock: in.TotalStock,
		StockIn:    decimal.Zero,
		StockOut:   decimal.Zero,
		Cost:       in.Cost,
	}
	if err := h.ledgerRepo.Create(item); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.StockLedgerItemResponse{
		Code:             item.Code,
		ProjectID:        item.ProjectID,
		Name:             item.Name,
		TotalStock:       item.TotalStock,
		StockIn:          item.StockIn,
		StockOut:         item.StockOut,
		AvailableToOrder: item.AvailableToOrder(),
		Cost:             item.Cost,
	})
}

// ListByProject lista el kárdex de un proyecto con el disponible calculado.
func (h *StockLedgerHandler) ListByProject(c *fiber.Ctx) error {
	projectID := c.Params("id")
	project, err := h.projectRepo.GetByID(projectID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if project == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proyecto no encontrado"})
	}

	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()

	items, err := h.ledgerRepo.ListByProject(projectID, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.StockLedgerItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, dto.StockLedgerItemResponse{
			Code:             i.Code,
			ProjectID:        i.ProjectID,
			Name:             i.Name,
			TotalStock:       i.TotalStock,
			StockIn:          i.StockIn,
			StockOut:         i.StockOut,
			AvailableToOrder: i.AvailableToOrder(),
			Cost:             i.Cost,
		})
	}
	return c.JSON(fiber.Map{"total": len(out), "items": out})
}
