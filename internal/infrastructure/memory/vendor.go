package memory

import (
	"context"

	"github.com/jhoicas/neocommerce-api/internal/domain/entity"
	"github.com/jhoicas/neocommerce-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

// VendorRepo datos de demostración del panel del vendedor.
type VendorRepo struct{}

// NewVendorRepository construye el repositorio.
func NewVendorRepository() *VendorRepo { return &VendorRepo{} }

// Stats indicadores del resumen.
func (r *VendorRepo) Stats(_ context.Context) ([]entity.VendorStat, error) {
	return []entity.VendorStat{
		{Title: "Ventes totales", Value: "1,247", Change: "+12% ce mois"},
		{Title: "Revenus", Value: "€24,680", Change: "+8% ce mois"},
		{Title: "Produits actifs", Value: "156", Change: "Stable"},
		{Title: "Note moyenne", Value: "4.8", Change: "+0.2 ce mois"},
	}, nil
}

// RecentOrders pedidos recientes.
func (r *VendorRepo) RecentOrders(_ context.Context) ([]entity.VendorOrder, error) {
	return []entity.VendorOrder{
		{ID: "ORD-001", Customer: "Marie Dubois", Product: "iPhone 15 Pro", Amount: decimal.NewFromInt(1299), Currency: "EUR", Status: "Expédié"},
		{ID: "ORD-002", Customer: "Jean Martin", Product: "MacBook Pro", Amount: decimal.NewFromInt(2899), Currency: "EUR", Status: "En cours"},
		{ID: "ORD-003", Customer: "Sophie Laurent", Product: "AirPods Pro", Amount: decimal.NewFromInt(249), Currency: "EUR", Status: "Livré"},
		{ID: "ORD-004", Customer: "Pierre Moreau", Product: "iPad Air", Amount: decimal.NewFromInt(699), Currency: "EUR", Status: "Confirmé"},
	}, nil
}

// Listings productos publicados por el vendedor.
func (r *VendorRepo) Listings(_ context.Context) ([]entity.VendorListing, error) {
	return []entity.VendorListing{
		{ID: "1", Name: "iPhone 15 Pro Max", Price: decimal.NewFromInt(1299), Currency: "EUR", Stock: 15, Views: 2847, Sales: 156, Rating: 4.8, Status: entity.ListingActive},
		{ID: "2", Name: "MacBook Pro M3", Price: decimal.NewFromInt(2899), Currency: "EUR", Stock: 8, Views: 1423, Sales: 89, Rating: 4.7, Status: entity.ListingActive},
		{ID: "3", Name: "AirPods Pro 2", Price: decimal.NewFromInt(249), Currency: "EUR", Stock: 0, Views: 892, Sales: 234, Rating: 4.6, Status: entity.ListingOutOfStock},
	}, nil
}

// Messages bandeja de mensajes de clientes.
func (r *VendorRepo) Messages(_ context.Context) ([]entity.CustomerMessage, error) {
	return []entity.CustomerMessage{
		{ID: "1", Customer: "Marie Dubois", Subject: "Question sur la garantie", Preview: "Bonjour, j'aimerais savoir si le produit est bien couvert par...", Timestamp: "Il y a 2h", Unread: true},
		{ID: "2", Customer: "Jean Martin", Subject: "Problème de livraison", Preview: "Ma commande n'est toujours pas arrivée, pouvez-vous me...", Timestamp: "Il y a 5h", Unread: true},
		{ID: "3", Customer: "Sophie Laurent", Subject: "Très satisfaite !", Preview: "Je voulais vous remercier pour la qualité exceptionnelle...", Timestamp: "Hier", Unread: false},
	}, nil
}
