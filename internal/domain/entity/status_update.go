package entity

import "time"

// WorkOrderStatusUpdate registro de auditoría de una transición procesada.
// Append-only: una fila por transición aplicada, nunca se actualiza ni borra.
type WorkOrderStatusUpdate struct {
	ID             string
	WorkOrderCode  string
	PrevStatus     *Status // nil cuando la orden se acaba de crear
	CurrentStatus  Status
	Comments       string
	TrackingNumber string
	CreatedBy      string
	CreatedAt      time.Time
}
