package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

var _ repository.StockLedgerRepository = (*StockLedgerRepo)(nil)

// StockLedgerRepo implementación de StockLedgerRepository sobre PostgreSQL (usable con pool o tx).
type StockLedgerRepo struct {
	q Querier
}

// NewStockLedgerRepository construye el adaptador de kárdex. Pasar pool o tx (Querier).
func NewStockLedgerRepository(q Querier) *StockLedgerRepo {
	return &StockLedgerRepo{q: q}
}

const ledgerColumns = `code, project_id, name, total_stock, stock_in, stock_out, cost, updated_at`

func scanLedgerItem(row pgx.Row) (*entity.StockLedgerItem, error) {
	var i entity.StockLedgerItem
	err := row.Scan(&i.Code, &i.ProjectID, &i.Name, &i.TotalStock, &i.StockIn, &i.StockOut, &i.Cost, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// Create persiste un ítem de kárdex.
func (r *StockLedgerRepo) Create(item *entity.StockLedgerItem) error {
	query := `
		INSERT INTO stock_ledger_items (code, project_id, name, total_stock, stock_in, stock_out, cost, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())`
	_, err := r.q.Exec(context.Background(), query,
		item.Code, item.ProjectID, item.Name, item.TotalStock, item.StockIn, item.StockOut, item.Cost,
	)
	if err != nil {
		return fmt.Errorf("create stock ledger item: %w", err)
	}
	return nil
}

// GetByCode obtiene un ítem por código. Devuelve nil, nil si no existe.
func (r *StockLedgerRepo) GetByCode(code string) (*entity.StockLedgerItem, error) {
	query := `SELECT ` + ledgerColumns + ` FROM stock_ledger_items WHERE code = $1`
	item, err := scanLedgerItem(r.q.QueryRow(context.Background(), query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock ledger item: %w", err)
	}
	return item, nil
}

// GetForUpdate obtiene el ítem y bloquea la fila (SELECT FOR UPDATE). Dos
// lotes concurrentes que toquen el mismo ítem quedan serializados aquí hasta
// el commit de la transacción dueña del bloqueo.
func (r *StockLedgerRepo) GetForUpdate(code string) (*entity.StockLedgerItem, error) {
	query := `SELECT ` + ledgerColumns + ` FROM stock_ledger_items WHERE code = $1 FOR UPDATE`
	item, err := scanLedgerItem(r.q.QueryRow(context.Background(), query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock ledger item for update: %w", err)
	}
	return item, nil
}

// ApplyDelta suma los deltas a los contadores del ítem. Se asume la fila ya
// bloqueada con GetForUpdate dentro de la misma transacción.
func (r *StockLedgerRepo) ApplyDelta(code string, stockIn, stockOut, totalStock decimal.Decimal) error {
	query := `
		UPDATE stock_ledger_items
		SET stock_in = stock_in + $2,
		    stock_out = stock_out + $3,
		    total_stock = total_stock + $4,
		    updated_at = now()
		WHERE code = $1`
	tag, err := r.q.Exec(context.Background(), query, code, stockIn, stockOut, totalStock)
	if err != nil {
		return fmt.Errorf("apply ledger delta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("apply ledger delta: ítem %s no existe", code)
	}
	return nil
}

// ListByProject lista el kárdex de un proyecto.
func (r *StockLedgerRepo) ListByProject(projectID string, limit, offset int) ([]*entity.StockLedgerItem, error) {
	query := `
		SELECT ` + ledgerColumns + ` FROM stock_ledger_items
		WHERE project_id = $1
		ORDER BY code
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, projectID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock ledger items: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockLedgerItem
	for rows.Next() {
		var i entity.StockLedgerItem
		if err := rows.Scan(&i.Code, &i.ProjectID, &i.Name, &i.TotalStock, &i.StockIn, &i.StockOut, &i.Cost, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock ledger item: %w", err)
		}
		out = append(out, &i)
	}
	return out, rows.Err()
}
