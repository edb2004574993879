package entity

import "time"

// Project agrupa órdenes de trabajo e ítems de kárdex. Los datos maestros
// vienen del ERP externo; aquí solo se consultan.
type Project struct {
	ID        string
	Code      string
	Name      string
	CreatedAt time.Time
}
