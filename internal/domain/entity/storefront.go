package entity

// NavLink enlace de la cabecera.
type NavLink struct {
	Name string
	Href string
}

// Feature argumento comercial de la página de inicio.
type Feature struct {
	Title       string
	Description string
}

// HeroStat cifra destacada del hero.
type HeroStat struct {
	Label string
	Value string
}
