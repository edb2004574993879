package workorder

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ordenes-api/internal/domain"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
)

// LedgerDelta deltas a sumar sobre los contadores de un ítem del kárdex.
type LedgerDelta struct {
	StockLedgerItemCode string
	StockIn             decimal.Decimal
	StockOut            decimal.Decimal
	TotalStock          decimal.Decimal
}

// LineItemUpdate cambio de la bandera Delivered de una línea.
type LineItemUpdate struct {
	WorkOrderCode       string
	StockLedgerItemCode string
	Delivered           bool
}

// EngineResult salida del motor: deltas de kárdex y cambios de bandera,
// calculados pero sin aplicar. El coordinador los persiste dentro de la transacción.
type EngineResult struct {
	Deltas          []LedgerDelta
	LineItemUpdates []LineItemUpdate
}

// inProcessBand estados 1..4: la orden se mueve dentro de la banda de
// procesamiento sin tocar el kárdex.
func inProcessBand(s entity.Status) bool {
	return s >= entity.StatusOpen && s <= entity.StatusVerified
}

// CreditStock calcula el efecto de una transición de estado sobre el kárdex.
// prev == nil significa "orden recién creada" (reserva inicial).
// deliveredCodes solo aplica en la entrega parcial; en la entrega total se
// ignora y se cierran todas las líneas pendientes.
//
// Función pura sobre las líneas cargadas: no hace I/O. Reglas:
//
//	nil  -> {1,2}:  StockIn += Qty en cada línea (reserva)
//	1..4 -> 1..4:   sin efecto
//	{4,5} -> 5:     líneas no entregadas del subconjunto: Delivered=true,
//	                StockIn -= Qty, StockOut += Qty, TotalStock -= Qty
//	{4,5} -> 6:     igual, para todas las líneas no entregadas
//	1..4 -> {7,8}:  StockIn -= Qty en cada línea (deshace la reserva)
//	{5,6} -> {7,8}: líneas con Delivered=true: Delivered=false,
//	                StockOut -= Qty, TotalStock += Qty
//	otro caso:      sin efecto
//
// Releer una transición de entrega sobre una línea ya entregada no produce
// deltas: el filtro por Delivered hace la entrega idempotente.
func CreditStock(prev *entity.Status, curr entity.Status, deliveredCodes []string, items []*entity.WorkOrderLineItem) (*EngineResult, error) {
	if !curr.IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	if prev != nil && !prev.IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyLineItems
	}

	res := &EngineResult{}

	switch {
	case prev == nil:
		if curr != entity.StatusOpen && curr != entity.StatusPending {
			return nil, domain.ErrInvalidStatus
		}
		for _, it := range items {
			res.Deltas = append(res.Deltas, LedgerDelta{
				StockLedgerItemCode: it.StockLedgerItemCode,
				StockIn:             it.Qty,
			})
		}

	case inProcessBand(*prev) && inProcessBand(curr):
		// La orden avanza dentro de la banda sin mover stock.

	case (*prev == entity.StatusVerified || *prev == entity.StatusPartialDelivery) && curr == entity.StatusPartialDelivery:
		subset := make(map[string]bool, len(deliveredCodes))
		for _, code := range deliveredCodes {
			subset[code] = true
		}
		for _, it := range items {
			if it.Delivered || !subset[it.StockLedgerItemCode] {
				continue
			}
			res.appendDelivery(it)
		}

	case (*prev == entity.StatusVerified || *prev == entity.StatusPartialDelivery) && curr == entity.StatusDelivered:
		// Entrega total: cierra todo lo pendiente, el subconjunto no cuenta.
		for _, it := range items {
			if it.Delivered {
				continue
			}
			res.appendDelivery(it)
		}

	case inProcessBand(*prev) && curr.IsTerminal():
		for _, it := range items {
			res.Deltas = append(res.Deltas, LedgerDelta{
				StockLedgerItemCode: it.StockLedgerItemCode,
				StockIn:             it.Qty.Neg(),
			})
		}

	case (*prev == entity.StatusPartialDelivery || *prev == entity.StatusDelivered) && curr.IsTerminal():
		// Deshacer solo lo entregado; la bandera por línea decide, no el estado,
		// porque una orden cancelada a mitad de entrega parcial trae mezcla.
		for _, it := range items {
			if !it.Delivered {
				continue
			}
			res.Deltas = append(res.Deltas, LedgerDelta{
				StockLedgerItemCode: it.StockLedgerItemCode,
				StockOut:            it.Qty.Neg(),
				TotalStock:          it.Qty,
			})
			res.LineItemUpdates = append(res.LineItemUpdates, LineItemUpdate{
				WorkOrderCode:       it.WorkOrderCode,
				StockLedgerItemCode: it.StockLedgerItemCode,
				Delivered:           false,
			})
		}
	}

	return res, nil
}

// appendDelivery deltas de entrega de una línea pendiente: la reserva pasa a
// despachado y la cantidad sale de bodega.
func (r *EngineResult) appendDelivery(it *entity.WorkOrderLineItem) {
	r.Deltas = append(r.Deltas, LedgerDelta{
		StockLedgerItemCode: it.StockLedgerItemCode,
		StockIn:             it.Qty.Neg(),
		StockOut:            it.Qty,
		TotalStock:          it.Qty.Neg(),
	})
	r.LineItemUpdates = append(r.LineItemUpdates, LineItemUpdate{
		WorkOrderCode:       it.WorkOrderCode,
		StockLedgerItemCode: it.StockLedgerItemCode,
		Delivered:           true,
	})
}
