package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/techstore-api/internal/domain"
	"github.com/jhoicas/techstore-api/internal/domain/entity"
	"github.com/jhoicas/techstore-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// productSelect proyección estándar: el producto con los nombres de su
// categoría y proveedor resueltos por JOIN.
const productSelect = `
	SELECT p.id, p.name, p.description, p.price, p.stock,
	       p.category_id, c.name, p.provider_id, pr.name,
	       p.created_at, p.updated_at
	FROM products p
	JOIN categories c ON c.id = p.category_id
	JOIN providers pr ON pr.id = p.provider_id`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (name, description, price, stock, category_id, provider_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.Stock,
		product.CategoryID, product.ProviderID,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// CreateBulk persiste un lote de productos en un solo round-trip (pgx.Batch).
func (r *ProductRepo) CreateBulk(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}
	query := `
		INSERT INTO products (name, description, price, stock, category_id, provider_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		RETURNING id, created_at, updated_at`
	batch := &pgx.Batch{}
	for _, p := range products {
		batch.Queue(query, p.Name, p.Description, p.Price, p.Stock, p.CategoryID, p.ProviderID)
	}
	results := r.q.SendBatch(ctx, batch)
	defer results.Close()
	for _, p := range products {
		if err := results.QueryRow().Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return fmt.Errorf("insert product batch: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	row := r.q.QueryRow(ctx, productSelect+` WHERE p.id = $1`, id)
	return scanProductRow(row)
}

// GetByIDForUpdate obtiene un producto bloqueando su fila hasta el fin de la
// transacción. El JOIN no participa del lock (FOR UPDATE OF p).
func (r *ProductRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	row := r.q.QueryRow(ctx, productSelect+` WHERE p.id = $1 FOR UPDATE OF p`, id)
	return scanProductRow(row)
}

// List lista productos con paginación en orden estable por id.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	return r.queryProducts(ctx, productSelect+` ORDER BY p.id LIMIT $1 OFFSET $2`, limit, offset)
}

// SearchByName busca por substring del nombre, case-insensitive, paginado.
func (r *ProductRepo) SearchByName(ctx context.Context, name string, limit, offset int) ([]*entity.Product, error) {
	return r.queryProducts(ctx,
		productSelect+` WHERE p.name ILIKE $1 ORDER BY p.id LIMIT $2 OFFSET $3`,
		"%"+name+"%", limit, offset,
	)
}

// Filter combina los criterios presentes con AND, construyendo el WHERE de
// forma incremental con placeholders numerados.
func (r *ProductRepo) Filter(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	query := productSelect
	var conds []string
	var args []any

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Name != "" {
		add("p.name ILIKE $%d", "%"+f.Name+"%")
	}
	if f.MinPrice != nil {
		add("p.price >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add("p.price <= $%d", *f.MaxPrice)
	}
	if f.Category != "" {
		add("lower(c.name) = lower($%d)", f.Category)
	}

	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	args = append(args, f.Limit, f.Offset)
	query += fmt.Sprintf(" ORDER BY p.id LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	return r.queryProducts(ctx, query, args...)
}

// ListLowStock lista productos con stock por debajo del límite.
func (r *ProductRepo) ListLowStock(ctx context.Context, stockLimit int) ([]*entity.Product, error) {
	return r.queryProducts(ctx, productSelect+` WHERE p.stock < $1 ORDER BY p.id`, stockLimit)
}

// ListByMinPrice lista productos con precio mayor o igual al mínimo.
func (r *ProductRepo) ListByMinPrice(ctx context.Context, minPrice decimal.Decimal) ([]*entity.Product, error) {
	return r.queryProducts(ctx, productSelect+` WHERE p.price >= $1 ORDER BY p.id`, minPrice)
}

// SearchByTerm busca el término en nombre o descripción, case-insensitive.
func (r *ProductRepo) SearchByTerm(ctx context.Context, term string) ([]*entity.Product, error) {
	pattern := "%" + term + "%"
	return r.queryProducts(ctx,
		productSelect+` WHERE p.name ILIKE $1 OR p.description ILIKE $1 ORDER BY p.id`,
		pattern,
	)
}

// Update sobrescribe los campos mutables. ErrNotFound si no existe.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, stock = $5, category_id = $6, provider_id = $7, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`
	err := r.q.QueryRow(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.Stock,
		product.CategoryID, product.ProviderID,
	).Scan(&product.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock actualiza solo el stock del producto y devuelve el updated_at
// que estampó la base de datos.
func (r *ProductRepo) UpdateStock(ctx context.Context, id int64, stock int) (time.Time, error) {
	var updatedAt time.Time
	err := r.q.QueryRow(ctx,
		`UPDATE products SET stock = $2, updated_at = now() WHERE id = $1 RETURNING updated_at`,
		id, stock,
	).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, domain.ErrNotFound
		}
		return time.Time{}, fmt.Errorf("update product stock: %w", err)
	}
	return updatedAt, nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByCategory elimina todos los productos de una categoría y devuelve cuántos borró.
func (r *ProductRepo) DeleteByCategory(ctx context.Context, categoryID int64) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE category_id = $1`, categoryID)
	if err != nil {
		return 0, fmt.Errorf("delete products by category: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func (r *ProductRepo) queryProducts(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func scanProduct(row pgx.Row, p *entity.Product) error {
	return row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
		&p.CategoryID, &p.CategoryName, &p.ProviderID, &p.ProviderName,
		&p.CreatedAt, &p.UpdatedAt,
	)
}

func scanProductRow(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := scanProduct(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}
