package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ordenes-api/internal/application/dto"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

// ProjectHandler consultas de proyectos y sus órdenes (protegido, solo lectura).
type ProjectHandler struct {
	projectRepo repository.ProjectRepository
	woRepo      repository.WorkOrderRepository
}

// NewProjectHandler construye el handler.
func NewProjectHandler(projectRepo repository.ProjectRepository, woRepo repository.WorkOrderRepository) *ProjectHandler {
	return &ProjectHandler{projectRepo: projectRepo, woRepo: woRepo}
}

// List lista los proyectos visibles en el portal.
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()

	projects, err := h.projectRepo.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]fiber.Map, 0, len(projects))
	for _, p := range projects {
		out = append(out, fiber.Map{"id": p.ID, "code": p.Code, "name": p.Name, "created_at": p.CreatedAt})
	}
	return c.JSON(fiber.Map{"total": len(out), "projects": out})
}

// ListWorkOrders lista las órdenes de trabajo de un proyecto.
func (h *ProjectHandler) ListWorkOrders(c *fiber.Ctx) error {
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

	orders, err := h.woRepo.ListByProject(projectID, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.WorkOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toWorkOrderResponse(o, nil))
	}
	return c.JSON(fiber.Map{"total": len(out), "work_orders": out})
}
