package entity

import "github.com/shopspring/decimal"

// Vendor vendedor que publica el producto en la tienda.
type Vendor struct {
	Name     string
	Verified bool
}

// Product representa un producto del catálogo (snapshot de solo lectura, fijado al arrancar).
// OriginalPrice solo se usa para mostrar el precio tachado; no se exige que supere Price.
type Product struct {
	ID            string
	Name          string
	Price         decimal.Decimal  // precio de venta, sin unidad menor
	OriginalPrice *decimal.Decimal // opcional
	Rating        float64          // 0 – 5
	ReviewCount   int
	Image         string // URI de la imagen
	Category      string // etiqueta abierta: electronics, fashion, home...
	Discount      *int   // porcentaje opcional
	Featured      bool
	Vendor        Vendor
}

// HasDiscount indica si el producto está en promoción.
func (p Product) HasDiscount() bool {
	return p.Discount != nil && *p.Discount > 0
}
