package workorder

import "github.com/jhoicas/Ordenes-api/internal/domain/entity"

// TransitionEntry una orden dentro de una solicitud de cambio de estado en lote.
// DeliveredItemCodes solo se usa cuando el estado destino es Entrega Parcial.
type TransitionEntry struct {
	Code               string
	PrevStatus         entity.Status
	DeliveredItemCodes []string
}

// FilterTransitions devuelve las entradas que representan una transición
// legal hacia adelante y deben procesarse; el resto se descarta en silencio.
//
// Se conserva una entrada si el ordinal destino es estrictamente mayor que el
// previo, o si la orden ya está en Entrega Parcial y vuelve a ella (reentrante:
// una orden entra a 5 cuantas veces haya algo que entregar). Nunca se permite
// retroceder desde un ordinal mayor: eso se decide aquí, no en el motor.
func FilterTransitions(entries []TransitionEntry, target entity.Status) []TransitionEntry {
	kept := make([]TransitionEntry, 0, len(entries))
	for _, e := range entries {
		reentry := target == entity.StatusPartialDelivery && e.PrevStatus == entity.StatusPartialDelivery
		if reentry || target > e.PrevStatus {
			kept = append(kept, e)
		}
	}
	return kept
}
