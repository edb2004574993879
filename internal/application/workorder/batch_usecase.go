package workorder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Ordenes-api/internal/domain"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
	"github.com/jhoicas/Ordenes-api/pkg/logger"
)

// BatchStatusUseCase coordina el cambio de estado en lote: valida existencia,
// filtra transiciones ilegales, invoca el motor por orden aceptada y persiste
// estado + deltas + auditoría como una sola unidad atómica.
type BatchStatusUseCase struct {
	txRunner TxRunner
	woRepo   repository.WorkOrderRepository
	log      *logger.Logger
}

// NewBatchStatusUseCase construye el coordinador.
func NewBatchStatusUseCase(txRunner TxRunner, woRepo repository.WorkOrderRepository, log *logger.Logger) *BatchStatusUseCase {
	return &BatchStatusUseCase{txRunner: txRunner, woRepo: woRepo, log: log}
}

// BatchInput entrada del cambio de estado en lote.
type BatchInput struct {
	Entries        []TransitionEntry
	TargetStatus   entity.Status
	Comments       string
	TrackingNumber string
	Actor          string
}

// BatchResult órdenes realmente avanzadas y el estado aplicado. Un lote
// filtrado a vacío devuelve ProcessedCodes vacío sin error; el caller
// distingue "no había nada que procesar" de un fallo.
type BatchResult struct {
	ProcessedCodes []string
	AppliedStatus  entity.Status
	Results        map[string]*EngineResult
}

// ApplyStatusBatch ejecuta el lote completo.
//
// Pasos: (1) cargar todas las órdenes referenciadas y fallar el lote entero si
// falta alguna; (2) filtrar con FilterTransitions; (3) dentro de una sola
// transacción, por cada entrada aceptada: cargar líneas, correr el motor,
// aplicar deltas con bloqueo por fila y agregar una fila de auditoría;
// (4) commit único. Las entradas descartadas por el filtro no generan error.
func (uc *BatchStatusUseCase) ApplyStatusBatch(ctx context.Context, input BatchInput) (*BatchResult, error) {
	if !input.TargetStatus.IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	if len(input.Entries) == 0 {
		return nil, domain.ErrInvalidInput
	}

	codes := make([]string, 0, len(input.Entries))
	for _, e := range input.Entries {
		codes = append(codes, e.Code)
	}
	orders, err := uc.woRepo.GetByCodes(codes)
	if err != nil {
		return nil, err
	}
	// La existencia se verifica antes de filtrar: un código desconocido
	// tumba el lote completo, no se salta en silencio.
	for _, e := range input.Entries {
		if orders[e.Code] == nil {
			return nil, fmt.Errorf("%w: orden de trabajo %s", domain.ErrNotFound, e.Code)
		}
	}

	kept := FilterTransitions(input.Entries, input.TargetStatus)
	result := &BatchResult{
		AppliedStatus:  input.TargetStatus,
		ProcessedCodes: make([]string, 0, len(kept)),
		Results:        make(map[string]*EngineResult, len(kept)),
	}
	if len(kept) == 0 {
		uc.log.Info().
			Int("entradas", len(input.Entries)).
			Str("destino", input.TargetStatus.String()).
			Msg("lote filtrado a vacío, nada que procesar")
		return result, nil
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(
		woRepo repository.WorkOrderRepository,
		lineRepo repository.LineItemRepository,
		ledgerRepo repository.StockLedgerRepository,
		auditRepo repository.StatusUpdateRepository,
	) error {
		for _, e := range kept {
			items, err := lineRepo.ListByWorkOrder(e.Code)
			if err != nil {
				return err
			}
			prev := e.PrevStatus
			res, err := CreditStock(&prev, input.TargetStatus, e.DeliveredItemCodes, items)
			if err != nil {
				return fmt.Errorf("orden %s: %w", e.Code, err)
			}
			if err := applyResult(lineRepo, ledgerRepo, res); err != nil {
				return fmt.Errorf("orden %s: %w", e.Code, err)
			}
			if err := woRepo.UpdateStatus(e.Code, input.TargetStatus); err != nil {
				return fmt.Errorf("orden %s: %w", e.Code, err)
			}
			if err := auditRepo.Append(&entity.WorkOrderStatusUpdate{
				ID:             uuid.New().String(),
				WorkOrderCode:  e.Code,
				PrevStatus:     &prev,
				CurrentStatus:  input.TargetStatus,
				Comments:       input.Comments,
				TrackingNumber: input.TrackingNumber,
				CreatedBy:      input.Actor,
				CreatedAt:      now,
			}); err != nil {
				return fmt.Errorf("orden %s: %w", e.Code, err)
			}
			result.ProcessedCodes = append(result.ProcessedCodes, e.Code)
			result.Results[e.Code] = res
		}
		return nil
	})
	if err != nil {
		uc.log.Warn().Err(err).
			Str("destino", input.TargetStatus.String()).
			Msg("lote revertido")
		return nil, err
	}

	uc.log.Info().
		Int("procesadas", len(result.ProcessedCodes)).
		Int("descartadas", len(input.Entries)-len(kept)).
		Str("destino", input.TargetStatus.String()).
		Msg("cambio de estado en lote aplicado")
	return result, nil
}

// ApplyStatusTransition avanza una sola orden: lote de una entrada, misma
// validación y misma transacción. Devuelve los deltas aplicados a esa orden.
func (uc *BatchStatusUseCase) ApplyStatusTransition(ctx context.Context, code string, prevStatus, currStatus entity.Status, deliveredItemCodes []string, actor string) (*EngineResult, error) {
	batch, err := uc.ApplyStatusBatch(ctx, BatchInput{
		Entries: []TransitionEntry{{
			Code:               code,
			PrevStatus:         prevStatus,
			DeliveredItemCodes: deliveredItemCodes,
		}},
		TargetStatus: currStatus,
		Actor:        actor,
	})
	if err != nil {
		return nil, err
	}
	res, ok := batch.Results[code]
	if !ok {
		// El filtro descartó la transición: no es un avance legal.
		return nil, domain.ErrInvalidStatus
	}
	return res, nil
}
