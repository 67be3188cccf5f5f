package memory

import (
	"github.com/jhoicas/neocommerce-api/internal/domain/entity"
	"github.com/jhoicas/neocommerce-api/internal/domain/repository"
)

var _ repository.StorefrontContent = (*StorefrontContent)(nil)

// StorefrontContent contenido editorial de la tienda (cabecera, hero, ventajas, contacto).
type StorefrontContent struct{}

// NewStorefrontContent construye el proveedor de contenido.
func NewStorefrontContent() *StorefrontContent { return &StorefrontContent{} }

// Navigation enlaces de la cabecera.
func (StorefrontContent) Navigation() []entity.NavLink {
	return []entity.NavLink{
		{Name: "Accueil", Href: "/"},
		{Name: "Produits", Href: "/products"},
		{Name: "Catégories", Href: "/categories"},
		{Name: "Vendeurs", Href: "/vendors"},
		{Name: "Contact", Href: "/contact"},
	}
}

// Features ventajas de la página de inicio.
func (StorefrontContent) Features() []entity.Feature {
	return []entity.Feature{
		{Title: "Livraison Express", Description: "Livraison gratuite en 24-48h partout à Madagascar"},
		{Title: "Paiement Sécurisé", Description: "Transactions 100% sécurisées avec cryptage SSL"},
		{Title: "Garantie Premium", Description: "Garantie de satisfaction ou remboursement intégral"},
		{Title: "Prix Compétitifs", Description: "Les meilleurs prix du marché garantis"},
	}
}

// HeroStats cifras del hero.
func (StorefrontContent) HeroStats() []entity.HeroStat {
	return []entity.HeroStat{
		{Label: "Produits", Value: "50K+"},
		{Label: "Vendeurs", Value: "10K+"},
		{Label: "Clients", Value: "100K+"},
	}
}

// ContactChannels canales de contacto.
func (StorefrontContent) ContactChannels() []entity.ContactChannel {
	return []entity.ContactChannel{
		{Title: "Email", Value: "allinonestoretana101@gmail.com", Action: "mailto:allinonestoretana101@gmail.com"},
		{Title: "Téléphone", Value: "+261 38 51 117 60", Action: "tel:+261385111760"},
		{Title: "WhatsApp", Value: "+261 32 64 352 32", Action: "https://wa.me/261326435232"},
		{Title: "Facebook", Value: "Notre page Facebook", Action: "https://www.facebook.com/profile.php?id=61577882525407"},
		{Title: "Localisation", Value: "Madagascar"},
	}
}
