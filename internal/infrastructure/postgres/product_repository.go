package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/neocommerce-api/internal/domain/entity"
	"github.com/jhoicas/neocommerce-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, price, original_price, rating, review_count, image, category, discount, featured, vendor_name, vendor_verified`

// ProductRepo lectura del catálogo desde la tabla products (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// List devuelve todos los productos en el orden del catálogo (position).
func (r *ProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID obtiene un producto por ID; nil, nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func scanProduct(row pgx.Row) (entity.Product, error) {
	var (
		p             entity.Product
		originalPrice decimal.NullDecimal
		discount      *int32
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.Price, &originalPrice, &p.Rating, &p.ReviewCount, &p.Image,
		&p.Category, &discount, &p.Featured, &p.Vendor.Name, &p.Vendor.Verified,
	)
	if err != nil {
		return entity.Product{}, err
	}
	if originalPrice.Valid {
		op := originalPrice.Decimal
		p.OriginalPrice = &op
	}
	if discount != nil {
		d := int(*discount)
		p.Discount = &d
	}
	return p, nil
}

// Seed inserta o actualiza el catálogo completo en una transacción (herramienta de seed).
// position conserva el orden de entrada.
func Seed(ctx context.Context, pool *pgxpool.Pool, products []entity.Product) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO products (` + productColumns + `, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, price = EXCLUDED.price, original_price = EXCLUDED.original_price,
			rating = EXCLUDED.rating, review_count = EXCLUDED.review_count, image = EXCLUDED.image,
			category = EXCLUDED.category, discount = EXCLUDED.discount, featured = EXCLUDED.featured,
			vendor_name = EXCLUDED.vendor_name, vendor_verified = EXCLUDED.vendor_verified,
			position = EXCLUDED.position`
	for i, p := range products {
		var originalPrice decimal.NullDecimal
		if p.OriginalPrice != nil {
			originalPrice = decimal.NewNullDecimal(*p.OriginalPrice)
		}
		var discount *int32
		if p.Discount != nil {
			d := int32(*p.Discount)
			discount = &d
		}
		if _, err := tx.Exec(ctx, query,
			p.ID, p.Name, p.Price, originalPrice, p.Rating, p.ReviewCount, p.Image,
			p.Category, discount, p.Featured, p.Vendor.Name, p.Vendor.Verified, i,
		); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.ID, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
