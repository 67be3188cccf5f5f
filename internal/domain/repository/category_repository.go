package repository

import (
	"context"

	"github.com/jhoicas/neocommerce-api/internal/domain/entity"
)

// CategoryRepository define el puerto de lectura de las categorías del navegador.
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
}
