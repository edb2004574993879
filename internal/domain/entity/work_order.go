package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkOrder representa una orden de trabajo dentro de un proyecto.
// El estado solo avanza a través del coordinador de lotes; nunca se edita directo.
type WorkOrder struct {
	Code        string
	ProjectID   string
	Description string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WorkOrderLineItem línea de una orden de trabajo (identidad compuesta orden + ítem de kárdex).
// Qty es inmutable después de la creación; Delivered solo lo muta el motor de kárdex.
type WorkOrderLineItem struct {
	WorkOrderCode       string
	StockLedgerItemCode string
	Qty                 decimal.Decimal
	Delivered           bool
}
