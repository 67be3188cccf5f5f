package memory

import (
	"context"

	"github.com/jhoicas/neocommerce-api/internal/domain/entity"
	"github.com/jhoicas/neocommerce-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo categorías del navegador, fijas.
type CategoryRepo struct {
	categories []entity.Category
}

// NewCategoryRepository construye el repositorio con las categorías dadas.
func NewCategoryRepository(categories []entity.Category) *CategoryRepo {
	return &CategoryRepo{categories: categories}
}

// List devuelve una copia de las categorías.
func (r *CategoryRepo) List(_ context.Context) ([]entity.Category, error) {
	out := make([]entity.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

// SampleCategories las 8 categorías de la tienda.
func SampleCategories() []entity.Category {
	return []entity.Category{
		{ID: "electronics", Name: "Électronique", Icon: "💻", ProductCount: 1240, Featured: true},
		{ID: "fashion", Name: "Mode", Icon: "👗", ProductCount: 2840, Featured: true},
		{ID: "home", Name: "Maison & Jardin", Icon: "🏠", ProductCount: 890},
		{ID: "beauty", Name: "Beauté & Santé", Icon: "💄", ProductCount: 560, Featured: true},
		{ID: "sports", Name: "Sports & Loisirs", Icon: "⚽", ProductCount: 720},
		{ID: "books", Name: "Livres & Média", Icon: "📚", ProductCount: 1150},
		{ID: "toys", Name: "Jouets & Enfants", Icon: "🧸", ProductCount: 430},
		{ID: "automotive", Name: "Auto & Moto", Icon: "🚗", ProductCount: 280},
	}
}
