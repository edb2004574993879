package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Ordenes-api/internal/application/workorder"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

var _ workorder.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Todo lote
// de cambio de estado corre por aquí: un Begin, un Commit; cualquier error
// a mitad de camino revierte el lote completo.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	woRepo repository.WorkOrderRepository,
	lineRepo repository.LineItemRepository,
	ledgerRepo repository.StockLedgerRepository,
	auditRepo repository.StatusUpdateRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	woRepo := NewWorkOrderRepository(tx)
	lineRepo := NewLineItemRepository(tx)
	ledgerRepo := NewStockLedgerRepository(tx)
	auditRepo := NewStatusUpdateRepository(tx)

	if err := fn(woRepo, lineRepo, ledgerRepo, auditRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
