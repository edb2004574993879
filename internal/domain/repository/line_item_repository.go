package repository

import "github.com/jhoicas/Ordenes-api/internal/domain/entity"

// LineItemRepository define el puerto de persistencia para las líneas de una orden.
type LineItemRepository interface {
	Create(item *entity.WorkOrderLineItem) error
	ListByWorkOrder(workOrderCode string) ([]*entity.WorkOrderLineItem, error)
	UpdateDelivered(workOrderCode, stockLedgerItemCode string, delivered bool) error
}
