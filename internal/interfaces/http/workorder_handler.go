package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ordenes-api/internal/application/dto"
	"github.com/jhoicas/Ordenes-api/internal/application/workorder"
	"github.com/jhoicas/Ordenes-api/internal/domain"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

// WorkOrderHandler maneja las peticiones HTTP de órdenes de trabajo (protegido).
type WorkOrderHandler struct {
	createUC  *workorder.CreateWorkOrderUseCase
	batchUC   *workorder.BatchStatusUseCase
	woRepo    repository.WorkOrderRepository
	lineRepo  repository.LineItemRepository
	auditRepo repository.StatusUpdateRepository
}

// NewWorkOrderHandler construye el handler.
func NewWorkOrderHandler(
	createUC *workorder.CreateWorkOrderUseCase,
	batchUC *workorder.BatchStatusUseCase,
	woRepo repository.WorkOrderRepository,
	lineRepo repository.LineItemRepository,
	auditRepo repository.StatusUpdateRepository,
) *WorkOrderHandler {
	return &WorkOrderHandler{
		createUC:  createUC,
		batchUC:   batchUC,
		woRepo:    woRepo,
		lineRepo:  lineRepo,
		auditRepo: auditRepo,
	}
}

// Create crea una orden con sus líneas y reserva stock en el kárdex.
func (h *WorkOrderHandler) Create(c *fiber.Ctx) error {
	actor := GetUserID(c)
	var in dto.CreateWorkOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	status, err := entity.ParseStatus(in.Status)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATUS", Message: err.Error()})
	}
	lines := make([]workorder.CreateLineInput, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, workorder.CreateLineInput{
			StockLedgerItemCode: l.StockLedgerItemCode,
			Qty:                 l.Qty,
		})
	}
	order, err := h.createUC.Create(c.Context(), workorder.CreateInput{
		Code:          in.Code,
		ProjectID:     in.ProjectID,
		Description:   in.Description,
		InitialStatus: status,
		Lines:         lines,
		Actor:         actor,
	})
	if err != nil {
		return writeWorkOrderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toWorkOrderResponse(order, nil))
}

// GetByCode devuelve una orden con sus líneas.
func (h *WorkOrderHandler) GetByCode(c *fiber.Ctx) error {
	code := c.Params("code")
	order, err := h.woRepo.GetByCode(code)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if order == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
	}
	items, err := h.lineRepo.ListByWorkOrder(code)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toWorkOrderResponse(order, items))
}

// UpdateStatusBatch avanza un lote de órdenes al estado destino. Las entradas
// que no representan un avance legal se descartan sin error; la respuesta
// lista solo las órdenes realmente procesadas.
func (h *WorkOrderHandler) UpdateStatusBatch(c *fiber.Ctx) error {
	actor := GetUserID(c)
	var in dto.BatchStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	target, err := entity.ParseStatus(in.TargetStatus)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATUS", Message: err.Error()})
	}
	entries := make([]workorder.TransitionEntry, 0, len(in.Entries))
	for _, e := range in.Entries {
		prev, err := entity.ParseStatus(e.PrevStatus)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATUS", Message: "orden " + e.Code + ": " + err.Error()})
		}
		entries = append(entries, workorder.TransitionEntry{
			Code:               e.Code,
			PrevStatus:         prev,
			DeliveredItemCodes: e.DeliveredItemCodes,
		})
	}
	result, err := h.batchUC.ApplyStatusBatch(c.Context(), workorder.BatchInput{
		Entries:        entries,
		TargetStatus:   target,
		Comments:       in.Comments,
		TrackingNumber: in.TrackingNumber,
		Actor:          actor,
	})
	if err != nil {
		return writeWorkOrderError(c, err)
	}
	return c.JSON(dto.BatchStatusResponse{
		ProcessedCodes: result.ProcessedCodes,
		AppliedStatus:  result.AppliedStatus.String(),
	})
}

// History devuelve el log de transiciones de una orden.
func (h *WorkOrderHandler) History(c *fiber.Ctx) error {
	code := c.Params("code")
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()

	updates, err := h.auditRepo.ListByWorkOrder(code, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.StatusUpdateResponse, 0, len(updates))
	for _, u := range updates {
		var prev *string
		if u.PrevStatus != nil {
			s := u.PrevStatus.String()
			prev = &s
		}
		out = append(out, dto.StatusUpdateResponse{
			ID:             u.ID,
			WorkOrderCode:  u.WorkOrderCode,
			PrevStatus:     prev,
			CurrentStatus:  u.CurrentStatus.String(),
			Comments:       u.Comments,
			TrackingNumber: u.TrackingNumber,
			CreatedBy:      u.CreatedBy,
			CreatedAt:      u.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"total": len(out), "updates": out})
}

// writeWorkOrderError mapea los errores de dominio del núcleo a códigos HTTP.
func writeWorkOrderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATUS", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrEmptyLineItems):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "EMPTY_LINE_ITEMS", Message: err.Error()})
	case errors.Is(err, domain.ErrConcurrencyConflict), errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func toWorkOrderResponse(order *entity.WorkOrder, items []*entity.WorkOrderLineItem) dto.WorkOrderResponse {
	out := dto.WorkOrderResponse{
		Code:        order.Code,
		ProjectID:   order.ProjectID,
		Description: order.Description,
		Status:      order.Status.String(),
		StatusCode:  int(order.Status),
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
	for _, it := range items {
		out.Lines = append(out.Lines, dto.WorkOrderLineResponse{
			StockLedgerItemCode: it.StockLedgerItemCode,
			Qty:                 it.Qty,
			Delivered:           it.Delivered,
		})
	}
	return out
}
