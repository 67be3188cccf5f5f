package entity

import "github.com/shopspring/decimal"

// Estados de una publicación del vendedor.
const (
	ListingActive     = "active"
	ListingOutOfStock = "out_of_stock"
)

// VendorStat indicador del panel (ventas, ingresos, productos activos, nota media).
type VendorStat struct {
	Title  string
	Value  string
	Change string
}

// VendorOrder pedido reciente mostrado en la pestaña de resumen.
type VendorOrder struct {
	ID       string
	Customer string
	Product  string
	Amount   decimal.Decimal
	Currency string
	Status   string // Expédié, En cours, Livré, Confirmé
}

// VendorListing producto publicado por el vendedor.
type VendorListing struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	Currency string
	Stock    int
	Views    int
	Sales    int
	Rating   float64
	Status   string
}

// CustomerMessage mensaje de cliente en la bandeja del vendedor.
type CustomerMessage struct {
	ID        string
	Customer  string
	Subject   string
	Preview   string
	Timestamp string // etiqueta relativa ("Il y a 2h")
	Unread    bool
}
