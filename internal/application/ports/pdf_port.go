package ports

import (
	"context"

	"github.com/jhoicas/neocommerce-api/internal/domain/entity"
)

// CatalogPDFMeta datos de cabecera del documento exportado.
type CatalogPDFMeta struct {
	Title    string
	Filters  string // descripción legible de los filtros aplicados
	Currency string
}

// CatalogPDFGenerator define el puerto de salida para exportar la vista filtrada a PDF.
type CatalogPDFGenerator interface {
	GenerateCatalogPDF(ctx context.Context, meta CatalogPDFMeta, products []entity.Product) ([]byte, error)
}
