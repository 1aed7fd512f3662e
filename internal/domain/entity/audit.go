package entity

import "time"

// Audit columnas de auditoría compartidas por las entidades del catálogo.
// Las estampa la capa de persistencia (now() en insert/update), nunca el cliente.
type Audit struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}
