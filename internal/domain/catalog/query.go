// Package catalog contiene el pipeline de consulta del catálogo: filtro + orden sobre el
// snapshot estático de productos. Es una función pura; no hace I/O ni muta la entrada.
package catalog

import (
	"cmp"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/jhoicas/neocommerce-api/internal/domain"
	"github.com/jhoicas/neocommerce-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey criterio de orden de la vista filtrada.
type SortKey string

const (
	SortByName      SortKey = "name"       // nombre, lexicográfico ascendente
	SortByPriceAsc  SortKey = "price-asc"  // precio ascendente
	SortByPriceDesc SortKey = "price-desc" // precio descendente
	SortByRating    SortKey = "rating"     // nota descendente
)

// SortKeys enumera los criterios válidos en el orden del selector.
var SortKeys = []SortKey{SortByName, SortByPriceAsc, SortByPriceDesc, SortByRating}

// ParseSortKey convierte el valor recibido en un SortKey. Vacío equivale a SortByName.
func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortByName, nil
	}
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(SortKeys, k) {
		return k, nil
	}
	return "", fmt.Errorf("sort %q: %w", s, domain.ErrInvalidInput)
}

// Params parámetros de consulta: (búsqueda, categoría, tope de precio, orden).
// VerifiedOnly y DiscountedOnly corresponden a las casillas del panel de filtros.
type Params struct {
	Search         string
	Category       string // vacío = todas las categorías
	MaxPrice       decimal.Decimal
	Sort           SortKey
	VerifiedOnly   bool
	DiscountedOnly bool
}

// Key devuelve una clave canónica de los parámetros, usada para memoizar la vista.
// Dos Params que producen siempre la misma vista comparten clave.
func (p Params) Key() string {
	sk := p.Sort
	if sk == "" {
		sk = SortByName
	}
	// Encode escapa cada valor y ordena los campos.
	return url.Values{
		"q":   {cases.Fold().String(p.Search)},
		"c":   {p.Category},
		"max": {p.MaxPrice.String()},
		"s":   {string(sk)},
		"v":   {strconv.FormatBool(p.VerifiedOnly)},
		"d":   {strconv.FormatBool(p.DiscountedOnly)},
	}.Encode()
}

// Query aplica el filtro y el orden sobre el catálogo y devuelve una vista nueva.
// El resultado es siempre un subconjunto del catálogo; los empates conservan el orden del catálogo.
func Query(products []entity.Product, p Params) []entity.Product {
	fold := cases.Fold()
	term := fold.String(p.Search)

	out := make([]entity.Product, 0, len(products))
	for _, prod := range products {
		if term != "" && !strings.Contains(fold.String(prod.Name), term) {
			continue
		}
		if p.Category != "" && prod.Category != p.Category {
			continue
		}
		if prod.Price.IsNegative() || prod.Price.GreaterThan(p.MaxPrice) {
			continue
		}
		if p.VerifiedOnly && !prod.Vendor.Verified {
			continue
		}
		if p.DiscountedOnly && !prod.HasDiscount() {
			continue
		}
		out = append(out, prod)
	}

	slices.SortStableFunc(out, comparator(p.Sort))
	return out
}

// comparator devuelve la función de comparación del criterio. Un criterio desconocido ordena por nombre.
func comparator(k SortKey) func(a, b entity.Product) int {
	switch k {
	case SortByPriceAsc:
		return func(a, b entity.Product) int { return a.Price.Cmp(b.Price) }
	case SortByPriceDesc:
		return func(a, b entity.Product) int { return b.Price.Cmp(a.Price) }
	case SortByRating:
		return func(a, b entity.Product) int { return cmp.Compare(b.Rating, a.Rating) }
	default:
		// Equivalente a localeCompare: las letras acentuadas se comparan por su letra base.
		col := collate.New(language.French)
		return func(a, b entity.Product) int { return col.CompareString(a.Name, b.Name) }
	}
}
