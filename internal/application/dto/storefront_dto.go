package dto

// NavLinkResponse enlace de la cabecera.
type NavLinkResponse struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// NavigationResponse cabecera de la tienda.
type NavigationResponse struct {
	Links             []NavLinkResponse `json:"links"`
	SearchPlaceholder string            `json:"search_placeholder"`
}

// HeroStatResponse cifra destacada del hero.
type HeroStatResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// HeroResponse sección principal de la página de inicio.
type HeroResponse struct {
	Tagline  string             `json:"tagline"`
	Title    string             `json:"title"`
	Subtitle string             `json:"subtitle"`
	Stats    []HeroStatResponse `json:"stats"`
}

// FeatureResponse ventaja comercial.
type FeatureResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// HomeResponse página de inicio completa.
type HomeResponse struct {
	Hero               HeroResponse       `json:"hero"`
	Features           []FeatureResponse  `json:"features"`
	FeaturedProducts   []ProductResponse  `json:"featured_products"`
	FeaturedCategories []CategoryResponse `json:"featured_categories"`
}

// NewsletterRequest alta en la newsletter.
type NewsletterRequest struct {
	Email string `json:"email"`
}
