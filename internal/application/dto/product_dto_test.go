package dto_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/techstore-api/internal/application/dto"
)

func intPtr(n int) *int { return &n }

func validProduct() dto.ProductRequest {
	return dto.ProductRequest{
		Name:        "Lenovo Legion 5 Pro",
		Description: "Gaming laptop",
		Price:       decimal.RequireFromString("1250.50"),
		Stock:       intPtr(50),
		CategoryID:  2,
		ProviderID:  5,
	}
}

func TestProductRequest_Valido_SinErrores(t *testing.T) {
	assert.Empty(t, validProduct().Validate())
}

func TestProductRequest_VariosCamposInvalidos_AcumulaDetalles(t *testing.T) {
	in := dto.ProductRequest{
		Name:  "ab", // muy corto
		Price: decimal.NewFromInt(-5),
	}
	errs := in.Validate()

	// name, price, stock, categoryId y providerId fallan a la vez
	assert.Len(t, errs, 5)
	assert.Contains(t, strings.Join(errs, "|"), "name:")
	assert.Contains(t, strings.Join(errs, "|"), "price:")
	assert.Contains(t, strings.Join(errs, "|"), "stock:")
}

func TestProductRequest_NombreConCaracteresInvalidos(t *testing.T) {
	in := validProduct()
	in.Name = "Laptop@#$%"
	errs := in.Validate()
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "invalid characters")
}

func TestProductRequest_PrecioConMasDeDosDecimales(t *testing.T) {
	in := validProduct()
	in.Price = decimal.RequireFromString("9.999")
	errs := in.Validate()
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "price:")
}

func TestProductRequest_PrecioConMasDeDiezDigitosEnteros(t *testing.T) {
	in := validProduct()
	in.Price = decimal.RequireFromString("12345678901.00")
	errs := in.Validate()
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "price:")
}

func TestProductRequest_StockCeroEsValido(t *testing.T) {
	in := validProduct()
	in.Stock = intPtr(0)
	assert.Empty(t, in.Validate())
}

func TestCategoryRequest_Limites(t *testing.T) {
	assert.NotEmpty(t, dto.CategoryRequest{Name: ""}.Validate())
	assert.NotEmpty(t, dto.CategoryRequest{Name: "ab"}.Validate())
	assert.NotEmpty(t, dto.CategoryRequest{Name: strings.Repeat("x", 51)}.Validate())
	assert.Empty(t, dto.CategoryRequest{Name: "Periféricos"}.Validate())
}

func TestProviderRequest_CamposRequeridos(t *testing.T) {
	errs := dto.ProviderRequest{}.Validate()
	assert.Len(t, errs, 2)
	assert.Empty(t, dto.ProviderRequest{Name: "Logitech S.A.", TaxID: "B-98765432"}.Validate())
}
