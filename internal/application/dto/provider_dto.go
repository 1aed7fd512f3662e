package dto

import "time"

// ProviderRequest entrada para registrar un proveedor.
type ProviderRequest struct {
	Name  string `json:"name"`
	TaxID string `json:"taxId"`
}

// Validate devuelve la lista de errores de campo, vacía si es válido.
func (in ProviderRequest) Validate() []string {
	var errs []string
	if in.Name == "" {
		errs = append(errs, "name: provider name is required")
	}
	if in.TaxID == "" {
		errs = append(errs, "taxId: tax ID is required")
	}
	return errs
}

// ProviderResponse salida de un proveedor.
type ProviderResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"taxId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
