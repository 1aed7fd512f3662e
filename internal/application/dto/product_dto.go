package dto

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// Solo letras, números, espacios y guiones.
var productNamePattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-]+$`)

// ProductRequest entrada para crear o actualizar un producto.
// Stock es puntero para distinguir "no enviado" de cero.
type ProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       *int            `json:"stock"`
	CategoryID  int64           `json:"categoryId"`
	ProviderID  int64           `json:"providerId"`
}

// Validate devuelve la lista de errores de campo ("<campo>: <mensaje>"), vacía si es válido.
func (in ProductRequest) Validate() []string {
	var errs []string

	nameLen := len([]rune(in.Name))
	switch {
	case in.Name == "":
		errs = append(errs, "name: product name is required")
	case nameLen < 3 || nameLen > 100:
		errs = append(errs, "name: product name must be between 3 and 100 characters")
	case !productNamePattern.MatchString(in.Name):
		errs = append(errs, "name: product name contains invalid characters (only letters, numbers, spaces and hyphens allowed)")
	}

	if len([]rune(in.Description)) > 255 {
		errs = append(errs, "description: description cannot exceed 255 characters")
	}

	if !in.Price.IsPositive() {
		errs = append(errs, "price: price must be greater than zero")
	} else {
		// Máximo 10 dígitos enteros y 2 decimales
		if in.Price.Exponent() < -2 {
			errs = append(errs, "price: price format is invalid (expected format: X.XX)")
		}
		if len(in.Price.Truncate(0).String()) > 10 {
			errs = append(errs, "price: price format is invalid (expected format: X.XX)")
		}
	}

	if in.Stock == nil {
		errs = append(errs, "stock: stock is required")
	} else if *in.Stock < 0 {
		errs = append(errs, "stock: stock cannot be negative")
	}

	if in.CategoryID <= 0 {
		errs = append(errs, "categoryId: category ID is required and must be a positive number")
	}
	if in.ProviderID <= 0 {
		errs = append(errs, "providerId: provider ID is required and must be a positive number")
	}

	return errs
}

// ProductResponse salida de un producto con los nombres de categoría y proveedor resueltos.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	CategoryID   int64           `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	ProviderID   int64           `json:"providerId"`
	ProviderName string          `json:"providerName"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ProductFilterRequest criterios opcionales del endpoint /filter.
type ProductFilterRequest struct {
	Name     string           `query:"name"`
	MinPrice *decimal.Decimal `query:"minPrice"`
	MaxPrice *decimal.Decimal `query:"maxPrice"`
	Category string           `query:"category"`
	PageRequest
}

// ImportSummary resultado de una importación masiva.
type ImportSummary struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
