package workorder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ordenes-api/internal/domain"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

// CreateWorkOrderUseCase crea una orden con sus líneas y corre el motor una
// vez (transición nil -> Open/Pending) para reservar stock en el kárdex.
type CreateWorkOrderUseCase struct {
	txRunner    TxRunner
	projectRepo repository.ProjectRepository
	woRepo      repository.WorkOrderRepository
}

// NewCreateWorkOrderUseCase construye el caso de uso.
func NewCreateWorkOrderUseCase(txRunner TxRunner, projectRepo repository.ProjectRepository, woRepo repository.WorkOrderRepository) *CreateWorkOrderUseCase {
	return &CreateWorkOrderUseCase{txRunner: txRunner, projectRepo: projectRepo, woRepo: woRepo}
}

// CreateLineInput línea solicitada al crear la orden.
type CreateLineInput struct {
	StockLedgerItemCode string
	Qty                 decimal.Decimal
}

// CreateInput entrada de creación de una orden de trabajo.
type CreateInput struct {
	Code          string
	ProjectID     string
	Description   string
	InitialStatus entity.Status // Open o Pending
	Lines         []CreateLineInput
	Actor         string
}

// Create valida, y en una sola transacción inserta la orden y sus líneas,
// aplica la reserva inicial sobre el kárdex y deja la fila de auditoría
// con PrevStatus nulo.
func (uc *CreateWorkOrderUseCase) Create(ctx context.Context, input CreateInput) (*entity.WorkOrder, error) {
	if input.Code == "" || input.ProjectID == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.InitialStatus != entity.StatusOpen && input.InitialStatus != entity.StatusPending {
		return nil, domain.ErrInvalidStatus
	}
	if len(input.Lines) == 0 {
		return nil, domain.ErrEmptyLineItems
	}
	for _, l := range input.Lines {
		if l.StockLedgerItemCode == "" || !l.Qty.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	project, err := uc.projectRepo.GetByID(input.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("%w: proyecto %s", domain.ErrNotFound, input.ProjectID)
	}
	if existing, err := uc.woRepo.GetByCode(input.Code); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: ya existe la orden %s", domain.ErrConflict, input.Code)
	}

	now := time.Now()
	order := &entity.WorkOrder{
		Code:        input.Code,
		ProjectID:   input.ProjectID,
		Description: input.Description,
		Status:      input.InitialStatus,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	items := make([]*entity.WorkOrderLineItem, 0, len(input.Lines))
	for _, l := range input.Lines {
		items = append(items, &entity.WorkOrderLineItem{
			WorkOrderCode:       input.Code,
			StockLedgerItemCode: l.StockLedgerItemCode,
			Qty:                 l.Qty,
		})
	}

	res, err := CreditStock(nil, input.InitialStatus, nil, items)
	if err != nil {
		return nil, err
	}

	err = uc.txRunner.Run(ctx, func(
		woRepo repository.WorkOrderRepository,
		lineRepo repository.LineItemRepository,
		ledgerRepo repository.StockLedgerRepository,
		auditRepo repository.StatusUpdateRepository,
	) error {
		if err := woRepo.Create(order); err != nil {
			return err
		}
		for _, it := range items {
			if err := lineRepo.Create(it); err != nil {
				return err
			}
		}
		if err := applyResult(lineRepo, ledgerRepo, res); err != nil {
			return err
		}
		return auditRepo.Append(&entity.WorkOrderStatusUpdate{
			ID:            uuid.New().String(),
			WorkOrderCode: input.Code,
			PrevStatus:    nil,
			CurrentStatus: input.InitialStatus,
			CreatedBy:     input.Actor,
			CreatedAt:     now,
		})
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}
