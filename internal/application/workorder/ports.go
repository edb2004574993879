package workorder

import (
	"context"

	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad para el lote completo: o avanzan todas las órdenes aceptadas, o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		woRepo repository.WorkOrderRepository,
		lineRepo repository.LineItemRepository,
		ledgerRepo repository.StockLedgerRepository,
		auditRepo repository.StatusUpdateRepository,
	) error) error
}
