package entity

// Provider representa un proveedor. Los productos lo referencian pero no
// les pertenece: no se puede eliminar mientras existan productos asociados.
type Provider struct {
	ID    int64
	Name  string
	TaxID string // identificador fiscal, único
	Audit
}
