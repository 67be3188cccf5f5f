// Package csvcatalog carga el snapshot del catálogo desde un CSV (archivo local u objeto S3)
// y lo escribe en el mismo formato para la herramienta de seed.
package csvcatalog

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/jhoicas/neocommerce-api/internal/domain"
	"github.com/jhoicas/neocommerce-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Row fila del CSV del catálogo. Las columnas opcionales vacías se interpretan como ausentes.
type Row struct {
	ID             string  `csv:"id"`
	Name           string  `csv:"name"`
	Price          string  `csv:"price"`
	OriginalPrice  string  `csv:"original_price"`
	Rating         float64 `csv:"rating"`
	ReviewCount    int     `csv:"review_count"`
	Image          string  `csv:"image"`
	Category       string  `csv:"category"`
	Discount       string  `csv:"discount"`
	Featured       bool    `csv:"featured"`
	VendorName     string  `csv:"vendor_name"`
	VendorVerified bool    `csv:"vendor_verified"`
}

// Decode lee el CSV completo y lo convierte en productos, en el orden del archivo.
func Decode(r io.Reader) ([]entity.Product, error) {
	var rows []*Row
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("csv: parsear catálogo: %w", err)
	}
	products := make([]entity.Product, 0, len(rows))
	for i, row := range rows {
		p, err := row.toEntity()
		if err != nil {
			return nil, fmt.Errorf("csv: fila %d: %w", i+2, err)
		}
		products = append(products, p)
	}
	return products, nil
}

// Encode escribe los productos como CSV con cabecera.
func Encode(w io.Writer, products []entity.Product) error {
	rows := make([]*Row, 0, len(products))
	for _, p := range products {
		rows = append(rows, fromEntity(p))
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("csv: escribir catálogo: %w", err)
	}
	return nil
}

func (r *Row) toEntity() (entity.Product, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(r.Price))
	if err != nil {
		return entity.Product{}, fmt.Errorf("producto %s: price %q: %w", r.ID, r.Price, domain.ErrInvalidInput)
	}
	p := entity.Product{
		ID:          strings.TrimSpace(r.ID),
		Name:        strings.TrimSpace(r.Name),
		Price:       price,
		Rating:      r.Rating,
		ReviewCount: r.ReviewCount,
		Image:       strings.TrimSpace(r.Image),
		Category:    strings.TrimSpace(r.Category),
		Featured:    r.Featured,
		Vendor:      entity.Vendor{Name: strings.TrimSpace(r.VendorName), Verified: r.VendorVerified},
	}
	if s := strings.TrimSpace(r.OriginalPrice); s != "" {
		op, err := decimal.NewFromString(s)
		if err != nil {
			return entity.Product{}, fmt.Errorf("producto %s: original_price %q: %w", r.ID, s, domain.ErrInvalidInput)
		}
		p.OriginalPrice = &op
	}
	if s := strings.TrimSpace(r.Discount); s != "" {
		d, err := strconv.Atoi(s)
		if err != nil {
			return entity.Product{}, fmt.Errorf("producto %s: discount %q: %w", r.ID, s, domain.ErrInvalidInput)
		}
		p.Discount = &d
	}
	return p, nil
}

func fromEntity(p entity.Product) *Row {
	row := &Row{
		ID:             p.ID,
		Name:           p.Name,
		Price:          p.Price.String(),
		Rating:         p.Rating,
		ReviewCount:    p.ReviewCount,
		Image:          p.Image,
		Category:       p.Category,
		Featured:       p.Featured,
		VendorName:     p.Vendor.Name,
		VendorVerified: p.Vendor.Verified,
	}
	if p.OriginalPrice != nil {
		row.OriginalPrice = p.OriginalPrice.String()
	}
	if p.Discount != nil {
		row.Discount = strconv.Itoa(*p.Discount)
	}
	return row
}
