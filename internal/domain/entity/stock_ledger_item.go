package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLedgerItem ítem del kárdex de un proyecto, con los tres contadores
// que el motor muta como efecto de las transiciones de estado:
//   - StockIn: cantidad reservada por órdenes abiertas, aún no despachada
//   - StockOut: cantidad ya despachada
//   - TotalStock: cantidad vendible restante en bodega
//
// En reposo los tres son >= 0. Nada fuera del motor los toca.
type StockLedgerItem struct {
	Code       string
	ProjectID  string
	Name       string
	TotalStock decimal.Decimal
	StockIn    decimal.Decimal
	StockOut   decimal.Decimal
	Cost       decimal.Decimal
	UpdatedAt  time.Time
}

// AvailableToOrder cantidad libre para comprometer a nuevas órdenes.
func (i *StockLedgerItem) AvailableToOrder() decimal.Decimal {
	return i.TotalStock.Sub(i.StockIn)
}
