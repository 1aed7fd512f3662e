package dto

import "time"

// CategoryRequest entrada para crear o actualizar una categoría.
type CategoryRequest struct {
	Name string `json:"name"`
}

// Validate devuelve la lista de errores de campo ("<campo>: <mensaje>"), vacía si es válido.
func (in CategoryRequest) Validate() []string {
	var errs []string
	name := len([]rune(in.Name))
	switch {
	case in.Name == "":
		errs = append(errs, "name: the category name cannot be empty")
	case name < 3 || name > 50:
		errs = append(errs, "name: the name must be between 3 and 50 characters")
	}
	return errs
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
