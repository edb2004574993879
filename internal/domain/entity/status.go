package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// Status estado de una orden de trabajo. El valor numérico es el ordinal
// que define la progresión permitida (solo hacia adelante, ver workorder.FilterTransitions).
type Status int

// Estados de una orden de trabajo, en orden de progresión.
const (
	StatusOpen            Status = 1
	StatusPending         Status = 2
	StatusInProcess       Status = 3
	StatusVerified        Status = 4
	StatusPartialDelivery Status = 5
	StatusDelivered       Status = 6
	StatusCancelled       Status = 7
	StatusDeleted         Status = 8
)

var statusNames = map[Status]string{
	StatusOpen:            "Open",
	StatusPending:         "Pending",
	StatusInProcess:       "In Process",
	StatusVerified:        "Verified",
	StatusPartialDelivery: "Partial Delivery",
	StatusDelivered:       "Delivered",
	StatusCancelled:       "Cancelled",
	StatusDeleted:         "Deleted",
}

// String devuelve el nombre legible del estado.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// IsValid indica si el valor corresponde a un estado conocido.
func (s Status) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

// IsTerminal indica si el estado cierra la orden (Cancelled o Deleted).
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusDeleted
}

// ParseStatus acepta el ordinal ("5") o el nombre ("Partial Delivery", insensible a mayúsculas).
func ParseStatus(raw string) (Status, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("estado vacío")
	}
	if n, err := strconv.Atoi(raw); err == nil {
		s := Status(n)
		if !s.IsValid() {
			return 0, fmt.Errorf("estado fuera de rango: %d", n)
		}
		return s, nil
	}
	for s, name := range statusNames {
		if strings.EqualFold(name, raw) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("estado desconocido: %q", raw)
}
