package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

var _ repository.LineItemRepository = (*LineItemRepo)(nil)

// LineItemRepo implementación de LineItemRepository sobre PostgreSQL (usable con pool o tx).
type LineItemRepo struct {
	q Querier
}

// NewLineItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLineItemRepository(q Querier) *LineItemRepo {
	return &LineItemRepo{q: q}
}

// Create persiste una línea de orden de trabajo.
func (r *LineItemRepo) Create(item *entity.WorkOrderLineItem) error {
	query := `
		INSERT INTO work_order_line_items (work_order_code, stock_ledger_item_code, qty, delivered)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		item.WorkOrderCode, item.StockLedgerItemCode, item.Qty, item.Delivered,
	)
	if err != nil {
		return fmt.Errorf("create line item: %w", err)
	}
	return nil
}

// ListByWorkOrder devuelve todas las líneas de una orden.
func (r *LineItemRepo) ListByWorkOrder(workOrderCode string) ([]*entity.WorkOrderLineItem, error) {
	query := `
		SELECT work_order_code, stock_ledger_item_code, qty, delivered
		FROM work_order_line_items WHERE work_order_code = $1
		ORDER BY stock_ledger_item_code`
	rows, err := r.q.Query(context.Background(), query, workOrderCode)
	if err != nil {
		return nil, fmt.Errorf("list line items: %w", err)
	}
	defer rows.Close()

	var out []*entity.WorkOrderLineItem
	for rows.Next() {
		var it entity.WorkOrderLineItem
		if err := rows.Scan(&it.WorkOrderCode, &it.StockLedgerItemCode, &it.Qty, &it.Delivered); err != nil {
			return nil, fmt.Errorf("scan line item: %w", err)
		}
		out = append(out, &it)
	}
	return out, rows.Err()
}

// UpdateDelivered cambia la bandera de entrega de una línea.
func (r *LineItemRepo) UpdateDelivered(workOrderCode, stockLedgerItemCode string, delivered bool) error {
	query := `
		UPDATE work_order_line_items SET delivered = $3
		WHERE work_order_code = $1 AND stock_ledger_item_code = $2`
	tag, err := r.q.Exec(context.Background(), query, workOrderCode, stockLedgerItemCode, delivered)
	if err != nil {
		return fmt.Errorf("update line item delivered: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update line item delivered: línea %s/%s no existe", workOrderCode, stockLedgerItemCode)
	}
	return nil
}
