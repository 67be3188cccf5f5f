package repository

import (
	"context"

	"github.com/jhoicas/neocommerce-api/internal/domain/entity"
)

// VendorRepository define el puerto de lectura de los datos del panel del vendedor.
type VendorRepository interface {
	Stats(ctx context.Context) ([]entity.VendorStat, error)
	RecentOrders(ctx context.Context) ([]entity.VendorOrder, error)
	Listings(ctx context.Context) ([]entity.VendorListing, error)
	Messages(ctx context.Context) ([]entity.CustomerMessage, error)
}
