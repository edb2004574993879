package repository

import "github.com/jhoicas/Ordenes-api/internal/domain/entity"

// StatusUpdateRepository define el puerto del log de auditoría de transiciones.
// Solo inserta y consulta; las filas nunca se modifican.
type StatusUpdateRepository interface {
	Append(update *entity.WorkOrderStatusUpdate) error
	ListByWorkOrder(workOrderCode string, limit, offset int) ([]*entity.WorkOrderStatusUpdate, error)
}
