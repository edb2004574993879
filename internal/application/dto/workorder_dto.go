package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWorkOrderRequest entrada para crear una orden con sus líneas.
// Status inicial solo puede ser "Open" o "Pending" (u ordinal 1/2).
type CreateWorkOrderRequest struct {
	Code        string                 `json:"code" validate:"required,max=50"`
	ProjectID   string                 `json:"project_id" validate:"required"`
	Description string                 `json:"description" validate:"omitempty,max=500"`
	Status      string                 `json:"status" validate:"required"`
	Lines       []WorkOrderLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// WorkOrderLineRequest línea solicitada: ítem de kárdex y cantidad.
type WorkOrderLineRequest struct {
	StockLedgerItemCode string          `json:"stock_ledger_item_code" validate:"required"`
	Qty                 decimal.Decimal `json:"qty" validate:"required"`
}

// BatchStatusRequest cambio de estado en lote: un estado destino compartido
// y una entrada por orden con su estado previo.
type BatchStatusRequest struct {
	TargetStatus   string                 `json:"target_status" validate:"required"`
	Comments       string                 `json:"comments" validate:"omitempty,max=500"`
	TrackingNumber string                 `json:"tracking_number" validate:"omitempty,max=100"`
	Entries        []BatchStatusEntryBody `json:"entries" validate:"required,min=1,dive"`
}

// BatchStatusEntryBody una orden dentro del lote. DeliveredItemCodes solo
// aplica cuando el destino es Entrega Parcial.
type BatchStatusEntryBody struct {
	Code               string   `json:"code" validate:"required"`
	PrevStatus         string   `json:"prev_status" validate:"required"`
	DeliveredItemCodes []string `json:"delivered_item_codes" validate:"omitempty"`
}

// BatchStatusResponse órdenes realmente avanzadas. Un lote filtrado a vacío
// responde 200 con processed_codes vacío.
type BatchStatusResponse struct {
	ProcessedCodes []string `json:"processed_codes"`
	AppliedStatus  string   `json:"applied_status"`
}

// WorkOrderResponse salida de una orden con sus líneas.
type WorkOrderResponse struct {
	Code        string                  `json:"code"`
	ProjectID   string                  `json:"project_id"`
	Description string                  `json:"description"`
	Status      string                  `json:"status"`
	StatusCode  int                     `json:"status_code"`
	Lines       []WorkOrderLineResponse `json:"lines,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

// WorkOrderLineResponse línea con su bandera de entrega.
type WorkOrderLineResponse struct {
	StockLedgerItemCode string          `json:"stock_ledger_item_code"`
	Qty                 decimal.Decimal `json:"qty"`
	Delivered           bool            `json:"delivered"`
}

// StatusUpdateResponse fila del historial de transiciones de una orden.
type StatusUpdateResponse struct {
	ID             string    `json:"id"`
	WorkOrderCode  string    `json:"work_order_code"`
	PrevStatus     *string   `json:"prev_status"`
	CurrentStatus  string    `json:"current_status"`
	Comments       string    `json:"comments,omitempty"`
	TrackingNumber string    `json:"tracking_number,omitempty"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateStockLedgerItemRequest alta de un ítem de kárdex (contadores en cero).
type CreateStockLedgerItemRequest struct {
	Code       string          `json:"code" validate:"required,max=50"`
	Name       string          `json:"name" validate:"required,max=200"`
	TotalStock decimal.Decimal `json:"total_stock" validate:"required"`
	Cost       decimal.Decimal `json:"cost" validate:"omitempty"`
}

// StockLedgerItemResponse ítem del kárdex con el disponible calculado.
type StockLedgerItemResponse struct {
	Code             string          `json:"code"`
	ProjectID        string          `json:"project_id"`
	Name             string          `json:"name"`
	TotalStock       decimal.Decimal `json:"total_stock"`
	StockIn          decimal.Decimal `json:"stock_in"`
	StockOut         decimal.Decimal `json:"stock_out"`
	AvailableToOrder decimal.Decimal `json:"available_to_order"`
	Cost             decimal.Decimal `json:"cost"`
}
