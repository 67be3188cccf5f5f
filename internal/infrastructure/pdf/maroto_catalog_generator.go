// Package pdf exporta la vista filtrada del catálogo a un documento A4.
//
// Layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + filtros aplicados    │  Fecha              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Categoría | Vendedor | Nota | Precio      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: N productos                                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/neocommerce-api/internal/application/ports"
	"github.com/jhoicas/neocommerce-api/internal/domain/entity"
)

var _ ports.CatalogPDFGenerator = (*MarotoCatalogGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 124, Green: 58, Blue: 237}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoCatalogGenerator implementa ports.CatalogPDFGenerator usando Maroto v2.
type MarotoCatalogGenerator struct {
	now func() time.Time
}

// NewMarotoCatalogGenerator construye el generador.
func NewMarotoCatalogGenerator() *MarotoCatalogGenerator {
	return &MarotoCatalogGenerator{now: time.Now}
}

// GenerateCatalogPDF genera el PDF y devuelve sus bytes.
func (g *MarotoCatalogGenerator) GenerateCatalogPDF(
	_ context.Context,
	meta ports.CatalogPDFMeta,
	products []entity.Product,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(meta.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(meta, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow(meta.Currency))
	m.AddRows(tableRows(products)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(len(products)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(meta ports.CatalogPDFMeta, now time.Time) core.Row {
	return row.New(16).Add(
		col.New(9).Add(
			text.New(meta.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(meta.Filters, "Tous les produits"), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(3).Add(
			text.New(now.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow(currency string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Produit", 5, align.Left),
		h("Catégorie", 2, align.Left),
		h("Vendeur", 2, align.Left),
		h("Note", 1, align.Center),
		h("Prix ("+currency+")", 2, align.Right),
	)
}

func tableRows(products []entity.Product) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		vendor := p.Vendor.Name
		if p.Vendor.Verified {
			vendor += " ✓"
		}
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(p.Name, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(p.Category, props.Text{Size: 8, Top: 1, Color: colorGray})),
			col.New(2).Add(text.New(vendor, props.Text{Size: 8, Top: 1})),
			col.New(1).Add(text.New(strconv.FormatFloat(p.Rating, 'f', 1, 64), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(formatMoney(p.Price.StringFixed(0)), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return result
}

func footerRow(count int) core.Row {
	label := fmt.Sprintf("%d produit", count)
	if count > 1 {
		label += "s"
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta espacios de miles en un string numérico sin decimales.
// Ej: "5200000" → "5 200 000"
func formatMoney(s string) string {
	neg := len(s) > 0 && s[0] == '-'
	if neg {
		s = s[1:]
	}
	n := len(s)
	buf := make([]byte, 0, n+n/3+1)
	if neg {
		buf = append(buf, '-')
	}
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
