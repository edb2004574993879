package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

// WorkOrderRepo implementación de WorkOrderRepository sobre PostgreSQL (usable con pool o tx).
type WorkOrderRepo struct {
	q Querier
}

// NewWorkOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWorkOrderRepository(q Querier) *WorkOrderRepo {
	return &WorkOrderRepo{q: q}
}

// Create persiste una orden de trabajo.
func (r *WorkOrderRepo) Create(order *entity.WorkOrder) error {
	query := `
		INSERT INTO work_orders (code, project_id, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		order.Code, order.ProjectID, order.Description, int(order.Status),
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create work order: %w", err)
	}
	return nil
}

// GetByCode obtiene una orden por código. Devuelve nil, nil si no existe.
func (r *WorkOrderRepo) GetByCode(code string) (*entity.WorkOrder, error) {
	query := `
		SELECT code, project_id, description, status, created_at, updated_at
		FROM work_orders WHERE code = $1`
	var o entity.WorkOrder
	var status int
	err := r.q.QueryRow(context.Background(), query, code).Scan(
		&o.Code, &o.ProjectID, &o.Description, &status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work order: %w", err)
	}
	o.Status = entity.Status(status)
	return &o, nil
}

// GetByCodes devuelve las órdenes encontradas indexadas por código.
func (r *WorkOrderRepo) GetByCodes(codes []string) (map[string]*entity.WorkOrder, error) {
	if len(codes) == 0 {
		return map[string]*entity.WorkOrder{}, nil
	}
	query := `
		SELECT code, project_id, description, status, created_at, updated_at
		FROM work_orders WHERE code = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, codes)
	if err != nil {
		return nil, fmt.Errorf("get work orders: %w", err)
	}
	defer rows.Close()

	out := make(map[string]*entity.WorkOrder, len(codes))
	for rows.Next() {
		var o entity.WorkOrder
		var status int
		if err := rows.Scan(&o.Code, &o.ProjectID, &o.Description, &status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan work order: %w", err)
		}
		o.Status = entity.Status(status)
		out[o.Code] = &o
	}
	return out, rows.Err()
}

// UpdateStatus escribe el nuevo estado de la orden.
func (r *WorkOrderRepo) UpdateStatus(code string, status entity.Status) error {
	query := `UPDATE work_orders SET status = $2, updated_at = now() WHERE code = $1`
	tag, err := r.q.Exec(context.Background(), query, code, int(status))
	if err != nil {
		return fmt.Errorf("update work order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update work order status: orden %s no existe", code)
	}
	return nil
}

// ListByProject lista las órdenes de un proyecto, más recientes primero.
func (r *WorkOrderRepo) ListByProject(projectID string, limit, offset int) ([]*entity.WorkOrder, error) {
	query := `
		SELECT code, project_id, description, status, created_at, updated_at
		FROM work_orders WHERE project_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, projectID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list work orders: %w", err)
	}
	defer rows.Close()

	var out []*entity.WorkOrder
	for rows.Next() {
		var o entity.WorkOrder
		var status int
		if err := rows.Scan(&o.Code, &o.ProjectID, &o.Description, &status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan work order: %w", err)
		}
		o.Status = entity.Status(status)
		out = append(out, &o)
	}
	return out, rows.Err()
}
