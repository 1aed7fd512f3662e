package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo. Siempre referencia una
// Category y un Provider existentes; Stock nunca es negativo.
// CategoryName y ProviderName son de solo lectura, resueltos por JOIN.
type Product struct {
	ID           int64
	Name         string
	Description  string
	Price        decimal.Decimal
	Stock        int
	CategoryID   int64
	ProviderID   int64
	CategoryName string
	ProviderName string
	Audit
}
