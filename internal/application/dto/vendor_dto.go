package dto

import "github.com/shopspring/decimal"

// VendorStatResponse indicador del panel.
type VendorStatResponse struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
}

// VendorOrderResponse pedido reciente.
type VendorOrderResponse struct {
	ID       string          `json:"id"`
	Customer string          `json:"customer"`
	Product  string          `json:"product"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Status   string          `json:"status"`
}

// VendorListingResponse producto publicado por el vendedor.
type VendorListingResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
	Stock    int             `json:"stock"`
	Views    int             `json:"views"`
	Sales    int             `json:"sales"`
	Rating   float64         `json:"rating"`
	Status   string          `json:"status"`
}

// CustomerMessageResponse mensaje de la bandeja del vendedor.
type CustomerMessageResponse struct {
	ID        string `json:"id"`
	Customer  string `json:"customer"`
	Subject   string `json:"subject"`
	Preview   string `json:"preview"`
	Timestamp string `json:"timestamp"`
	Unread    bool   `json:"unread"`
}

// VendorDashboardResponse contenido de la pestaña activa del panel.
// Solo se rellenan las secciones de la pestaña pedida.
type VendorDashboardResponse struct {
	Tab          string                    `json:"tab"`
	Tabs         []string                  `json:"tabs"`
	Stats        []VendorStatResponse      `json:"stats,omitempty"`
	RecentOrders []VendorOrderResponse     `json:"recent_orders,omitempty"`
	Listings     []VendorListingResponse   `json:"listings,omitempty"`
	Messages     []CustomerMessageResponse `json:"messages,omitempty"`
	UnreadCount  int                       `json:"unread_count"`
}

// VendorProductDraft formulario "ajouter un produit" del panel.
type VendorProductDraft struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}
