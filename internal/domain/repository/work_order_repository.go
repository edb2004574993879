package repository

import "github.com/jhoicas/Ordenes-api/internal/domain/entity"

// WorkOrderRepository define el puerto de persistencia para WorkOrder (DIP).
type WorkOrderRepository interface {
	Create(order *entity.WorkOrder) error
	GetByCode(code string) (*entity.WorkOrder, error)
	// GetByCodes devuelve las órdenes encontradas indexadas por código;
	// los códigos inexistentes simplemente no aparecen en el mapa.
	GetByCodes(codes []string) (map[string]*entity.WorkOrder, error)
	UpdateStatus(code string, status entity.Status) error
	ListByProject(projectID string, limit, offset int) ([]*entity.WorkOrder, error)
}
