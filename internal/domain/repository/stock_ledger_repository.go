package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
)

// StockLedgerRepository define el puerto de persistencia para el kárdex.
type StockLedgerRepository interface {
	Create(item *entity.StockLedgerItem) error
	GetByCode(code string) (*entity.StockLedgerItem, error)
	// GetForUpdate carga el ítem bloqueando la fila (SELECT FOR UPDATE) para
	// serializar por ítem las mutaciones de contadores.
	GetForUpdate(code string) (*entity.StockLedgerItem, error)
	// ApplyDelta suma los deltas a los contadores del ítem ya bloqueado.
	ApplyDelta(code string, stockIn, stockOut, totalStock decimal.Decimal) error
	ListByProject(projectID string, limit, offset int) ([]*entity.StockLedgerItem, error)
}
