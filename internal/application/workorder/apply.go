package workorder

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ordenes-api/internal/domain"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

// applyResult persiste la salida del motor usando los repositorios de la
// transacción en curso: bloquea cada fila del kárdex (SELECT FOR UPDATE),
// verifica que ningún contador quede negativo y aplica deltas y banderas.
//
// Un contador negativo significa que los datos cargados ya no cuadran con la
// transición pedida; se aborta en vez de recortar el valor.
func applyResult(lineRepo repository.LineItemRepository, ledgerRepo repository.StockLedgerRepository, res *EngineResult) error {
	for _, d := range res.Deltas {
		item, err := ledgerRepo.GetForUpdate(d.StockLedgerItemCode)
		if err != nil {
			return err
		}
		if item == nil {
			return fmt.Errorf("%w: ítem de kárdex %s", domain.ErrNotFound, d.StockLedgerItemCode)
		}
		newIn := item.StockIn.Add(d.StockIn)
		newOut := item.StockOut.Add(d.StockOut)
		newTotal := item.TotalStock.Add(d.TotalStock)
		if newIn.LessThan(decimal.Zero) || newOut.LessThan(decimal.Zero) || newTotal.LessThan(decimal.Zero) {
			return fmt.Errorf("%w: el ítem %s quedaría con contadores negativos", domain.ErrConflict, d.StockLedgerItemCode)
		}
		if newTotal.Sub(newIn).LessThan(decimal.Zero) {
			return fmt.Errorf("%w: el ítem %s quedaría con disponible negativo", domain.ErrConflict, d.StockLedgerItemCode)
		}
		if err := ledgerRepo.ApplyDelta(d.StockLedgerItemCode, d.StockIn, d.StockOut, d.TotalStock); err != nil {
			return err
		}
	}
	for _, u := range res.LineItemUpdates {
		if err := lineRepo.UpdateDelivered(u.WorkOrderCode, u.StockLedgerItemCode, u.Delivered); err != nil {
			return err
		}
	}
	return nil
}
