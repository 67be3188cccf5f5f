package dto

import (
	"github.com/shopspring/decimal"
)

// ProductQueryRequest parámetros de la búsqueda del catálogo (query string).
// MaxPrice nil aplica el tope por defecto; Sort vacío ordena por nombre.
type ProductQueryRequest struct {
	Search     string           `query:"q"`
	Category   string           `query:"category"`
	MaxPrice   *decimal.Decimal `query:"-"`
	Sort       string           `query:"sort"`
	Verified   bool             `query:"verified"`
	Discounted bool             `query:"discounted"`
}

// ProductQueryResponse parámetros efectivamente aplicados (tras defaults y recorte al techo).
type ProductQueryResponse struct {
	Search     string          `json:"q"`
	Category   string          `json:"category"`
	MaxPrice   decimal.Decimal `json:"max_price"`
	Sort       string          `json:"sort"`
	Verified   bool            `json:"verified"`
	Discounted bool            `json:"discounted"`
}

// VendorResponse vendedor de un producto.
type VendorResponse struct {
	Name     string `json:"name"`
	Verified bool   `json:"verified"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Rating        float64          `json:"rating"`
	ReviewCount   int              `json:"review_count"`
	Image         string           `json:"image"`
	Category      string           `json:"category"`
	Discount      *int             `json:"discount,omitempty"`
	Featured      bool             `json:"featured"`
	Vendor        VendorResponse   `json:"vendor"`
}

// EmptyState contenido del estado vacío y parámetros para reiniciar los filtros.
type EmptyState struct {
	Title string               `json:"title"`
	Hint  string               `json:"hint"`
	Reset ProductQueryResponse `json:"reset"`
}

// ProductListResponse vista filtrada del catálogo.
// Total es el tamaño de la vista; CatalogSize el del snapshot completo.
type ProductListResponse struct {
	Items       []ProductResponse    `json:"items"`
	Total       int                  `json:"total"`
	CatalogSize int                  `json:"catalog_size"`
	Query       ProductQueryResponse `json:"query"`
	EmptyState  *EmptyState          `json:"empty_state,omitempty"`
}

// IntentResponse acuse de una intención del cliente (carrito, favoritos, vista).
type IntentResponse struct {
	ProductID string `json:"product_id"`
	Action    string `json:"action"`
	Message   string `json:"message"`
}

// CategoryResponse categoría del navegador.
type CategoryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	ProductCount int    `json:"product_count"`
	Featured     bool   `json:"featured"`
}

// CategoryOption opción del selector de categoría del catálogo. ID vacío = todas.
type CategoryOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// CategoryListResponse categorías y opciones del filtro.
type CategoryListResponse struct {
	Items         []CategoryResponse `json:"items"`
	FilterOptions []CategoryOption   `json:"filter_options"`
	SortOptions   []string           `json:"sort_options"`
}
