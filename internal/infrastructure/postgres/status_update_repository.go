package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

var _ repository.StatusUpdateRepository = (*StatusUpdateRepo)(nil)

// StatusUpdateRepo log de auditoría de transiciones sobre PostgreSQL.
// Solo INSERT y SELECT; la tabla no tiene UPDATE ni DELETE en el esquema.
type StatusUpdateRepo struct {
	q Querier
}

// NewStatusUpdateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStatusUpdateRepository(q Querier) *StatusUpdateRepo {
	return &StatusUpdateRepo{q: q}
}

// Append inserta una fila de auditoría.
func (r *StatusUpdateRepo) Append(update *entity.WorkOrderStatusUpdate) error {
	if update.ID == "" {
		update.ID = uuid.New().String()
	}
	var prev *int
	if update.PrevStatus != nil {
		v := int(*update.PrevStatus)
		prev = &v
	}
	createdBy := (*string)(nil)
	if update.CreatedBy != "" {
		createdBy = &update.CreatedBy
	}
	query := `
		INSERT INTO work_order_status_updates (id, work_order_code, prev_status, current_status, comments, tracking_number, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		update.ID, update.WorkOrderCode, prev, int(update.CurrentStatus),
		update.Comments, update.TrackingNumber, createdBy, update.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append status update: %w", err)
	}
	return nil
}

// ListByWorkOrder devuelve el historial de una orden, más reciente primero.
func (r *StatusUpdateRepo) ListByWorkOrder(workOrderCode string, limit, offset int) ([]*entity.WorkOrderStatusUpdate, error) {
	query := `
		SELECT id, work_order_code, prev_status, current_status, comments, tracking_number, created_by, created_at
		FROM work_order_status_updates
		WHERE work_order_code = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, workOrderCode, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list status updates: %w", err)
	}
	defer rows.Close()

	var out []*entity.WorkOrderStatusUpdate
	for rows.Next() {
		var u entity.WorkOrderStatusUpdate
		var prev *int
		var curr int
		var createdBy *string
		if err := rows.Scan(&u.ID, &u.WorkOrderCode, &prev, &curr, &u.Comments, &u.TrackingNumber, &createdBy, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan status update: %w", err)
		}
		if prev != nil {
			s := entity.Status(*prev)
			u.PrevStatus = &s
		}
		u.CurrentStatus = entity.Status(curr)
		if createdBy != nil {
			u.CreatedBy = *createdBy
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}
