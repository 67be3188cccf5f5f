package repository

import "github.com/jhoicas/neocommerce-api/internal/domain/entity"

// StorefrontContent define el contenido editorial estático de la tienda.
type StorefrontContent interface {
	Navigation() []entity.NavLink
	Features() []entity.Feature
	HeroStats() []entity.HeroStat
	ContactChannels() []entity.ContactChannel
}
