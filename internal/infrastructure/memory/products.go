// Package memory implementa los puertos de lectura sobre datos fijados en memoria:
// el catálogo de ejemplo, las categorías, el panel del vendedor y el contenido editorial.
package memory

import (
	"context"
	"fmt"
	"math"

	"github.com/jhoicas/neocommerce-api/internal/domain"
	"github.com/jhoicas/neocommerce-api/internal/domain/entity"
	"github.com/jhoicas/neocommerce-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo snapshot inmutable del catálogo. Seguro para uso concurrente tras construirse.
type ProductRepo struct {
	products []entity.Product
	byID     map[string]int
}

// NewProductRepository construye el snapshot. Falla si hay IDs repetidos o productos inválidos.
func NewProductRepository(products []entity.Product) (*ProductRepo, error) {
	r := &ProductRepo{
		products: make([]entity.Product, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	copy(r.products, products)
	for i, p := range r.products {
		if err := Validate(p); err != nil {
			return nil, err
		}
		if _, dup := r.byID[p.ID]; dup {
			return nil, fmt.Errorf("producto %s: %w", p.ID, domain.ErrDuplicate)
		}
		r.byID[p.ID] = i
	}
	return r, nil
}

// List devuelve una copia del catálogo en su orden original.
func (r *ProductRepo) List(_ context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID devuelve el producto o nil, nil si no existe.
func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	p := r.products[i]
	return &p, nil
}

// Validate comprueba las invariantes de un producto del snapshot.
func Validate(p entity.Product) error {
	switch {
	case p.ID == "":
		return fmt.Errorf("producto sin id: %w", domain.ErrInvalidInput)
	case p.Name == "":
		return fmt.Errorf("producto %s sin nombre: %w", p.ID, domain.ErrInvalidInput)
	case !p.Price.IsPositive():
		return fmt.Errorf("producto %s: precio debe ser positivo: %w", p.ID, domain.ErrInvalidInput)
	case math.IsNaN(p.Rating) || p.Rating < 0 || p.Rating > 5:
		return fmt.Errorf("producto %s: rating fuera de [0,5]: %w", p.ID, domain.ErrInvalidInput)
	case p.ReviewCount < 0:
		return fmt.Errorf("producto %s: review_count negativo: %w", p.ID, domain.ErrInvalidInput)
	}
	return nil
}

func price(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func pricePtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func intPtr(v int) *int { return &v }

// SampleProducts devuelve los 6 productos de ejemplo de la tienda (ids "1" a "6").
func SampleProducts() []entity.Product {
	return []entity.Product{
		{
			ID:            "1",
			Name:          "iPhone 15 Pro Max - 256GB Titanium",
			Price:         price(5200000),
			OriginalPrice: pricePtr(5600000),
			Rating:        4.8,
			ReviewCount:   2847,
			Image:         "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=500",
			Category:      "electronics",
			Featured:      true,
			Discount:      intPtr(7),
			Vendor:        entity.Vendor{Name: "TechStore Pro", Verified: true},
		},
		{
			ID:            "2",
			Name:          `MacBook Pro 16" M3 Max`,
			Price:         price(11600000),
			OriginalPrice: pricePtr(12800000),
			Rating:        4.7,
			ReviewCount:   856,
			Image:         "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=500",
			Category:      "electronics",
			Featured:      true,
			Discount:      intPtr(9),
			Vendor:        entity.Vendor{Name: "Apple Premium", Verified: true},
		},
		{
			ID:          "3",
			Name:        "Nike Air Jordan 1 Retro High OG",
			Price:       price(760000),
			Rating:      4.9,
			ReviewCount: 1923,
			Image:       "https://images.unsplash.com/photo-1556906781-9a412961c28c?w=500",
			Category:    "fashion",
			Featured:    true,
			Vendor:      entity.Vendor{Name: "Sneaker Vault", Verified: true},
		},
		{
			ID:            "4",
			Name:          "Sony WH-1000XM5 Casque Sans Fil",
			Price:         price(1400000),
			OriginalPrice: pricePtr(1600000),
			Rating:        4.6,
			ReviewCount:   1245,
			Image:         "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500",
			Category:      "electronics",
			Discount:      intPtr(12),
			Vendor:        entity.Vendor{Name: "Audio Expert", Verified: true},
		},
		{
			ID:          "5",
			Name:        "Chanel N°5 Eau de Parfum 100ml",
			Price:       price(640000),
			Rating:      4.6,
			ReviewCount: 634,
			Image:       "https://images.unsplash.com/photo-1541643600914-78b084683601?w=500",
			Category:    "beauty",
			Featured:    true,
			Vendor:      entity.Vendor{Name: "Luxury Beauty", Verified: true},
		},
		{
			ID:            "6",
			Name:          "Canapé Scandinave 3 Places",
			Price:         price(3600000),
			OriginalPrice: pricePtr(4800000),
			Rating:        4.4,
			ReviewCount:   423,
			Image:         "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=500",
			Category:      "home",
			Discount:      intPtr(25),
			Vendor:        entity.Vendor{Name: "Home Design", Verified: false},
		},
	}
}
