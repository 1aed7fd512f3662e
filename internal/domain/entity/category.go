package entity

// Category representa una categoría de productos. Es dueña de sus productos:
// eliminarla elimina también los productos que la referencian.
type Category struct {
	ID   int64
	Name string // único, 3-50 caracteres
	Audit
}
