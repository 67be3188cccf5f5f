package entity

// Category representa una categoría del navegador de categorías.
// ProductCount es la cifra comercial mostrada en la tarjeta, no el conteo del snapshot.
type Category struct {
	ID           string
	Name         string
	Icon         string
	ProductCount int
	Featured     bool
}
