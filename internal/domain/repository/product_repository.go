package repository

import (
	"context"

	"github.com/jhoicas/neocommerce-api/internal/domain/entity"
)

// ProductRepository define el puerto de lectura del snapshot del catálogo (DIP).
// List devuelve los productos en el orden del catálogo; GetByID devuelve nil, nil si no existe.
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
}
