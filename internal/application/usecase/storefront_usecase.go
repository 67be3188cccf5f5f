package usecase

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/neocommerce-api/internal/application/dto"
	"github.com/jhoicas/neocommerce-api/internal/domain"
	"github.com/jhoicas/neocommerce-api/internal/domain/repository"
)

const (
	heroTagline  = "Plateforme #1 en France"
	heroTitle    = "L'avenir du E-commerce commence ici"
	heroSubtitle = "Découvrez une expérience d'achat révolutionnaire avec notre plateforme premium. " +
		"Des produits exceptionnels, une technologie de pointe et une communauté dynamique."
	searchPlaceholder = "Rechercher des produits..."
)

// StorefrontUseCase contenido de la página de inicio, cabecera y newsletter.
type StorefrontUseCase struct {
	content    repository.StorefrontContent
	catalog    *CatalogUseCase
	categories repository.CategoryRepository
	log        zerolog.Logger
}

// NewStorefrontUseCase construye el caso de uso.
func NewStorefrontUseCase(
	content repository.StorefrontContent,
	catalog *CatalogUseCase,
	categories repository.CategoryRepository,
	log zerolog.Logger,
) *StorefrontUseCase {
	return &StorefrontUseCase{content: content, catalog: catalog, categories: categories, log: log}
}

// Home arma la página de inicio: hero, ventajas, productos y categorías destacados.
func (uc *StorefrontUseCase) Home(ctx context.Context) (*dto.HomeResponse, error) {
	featured, err := uc.catalog.Featured(ctx)
	if err != nil {
		return nil, err
	}
	cats, err := uc.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar categorías: %w", err)
	}

	out := &dto.HomeResponse{
		Hero: dto.HeroResponse{
			Tagline:  heroTagline,
			Title:    heroTitle,
			Subtitle: heroSubtitle,
		},
		FeaturedProducts:   featured,
		FeaturedCategories: make([]dto.CategoryResponse, 0, len(cats)),
	}
	for _, s := range uc.content.HeroStats() {
		out.Hero.Stats = append(out.Hero.Stats, dto.HeroStatResponse{Label: s.Label, Value: s.Value})
	}
	for _, f := range uc.content.Features() {
		out.Features = append(out.Features, dto.FeatureResponse{Title: f.Title, Description: f.Description})
	}
	for _, c := range cats {
		if c.Featured {
			out.FeaturedCategories = append(out.FeaturedCategories, toCategoryResponse(c))
		}
	}
	return out, nil
}

// Navigation enlaces de la cabecera.
func (uc *StorefrontUseCase) Navigation() *dto.NavigationResponse {
	links := uc.content.Navigation()
	out := &dto.NavigationResponse{
		Links:             make([]dto.NavLinkResponse, 0, len(links)),
		SearchPlaceholder: searchPlaceholder,
	}
	for _, l := range links {
		out.Links = append(out.Links, dto.NavLinkResponse{Name: l.Name, Href: l.Href})
	}
	return out
}

// Subscribe alta en la newsletter. Solo valida el email y registra la intención.
func (uc *StorefrontUseCase) Subscribe(_ context.Context, in dto.NewsletterRequest) (*dto.AckResponse, error) {
	email, err := parseEmail(in.Email)
	if err != nil {
		return nil, err
	}
	ref := uuid.New().String()
	uc.log.Info().Str("email", email).Str("reference", ref).Msg("alta en newsletter")
	return &dto.AckResponse{
		Title:     "Inscription confirmée",
		Message:   "Vous recevrez bientôt nos offres exclusives.",
		Reference: ref,
	}, nil
}

// parseEmail valida una dirección simple (sin nombre visible) y la devuelve normalizada.
func parseEmail(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("email requerido: %w", domain.ErrInvalidInput)
	}
	addr, err := mail.ParseAddress(raw)
	if err != nil || addr.Name != "" || addr.Address != raw {
		return "", fmt.Errorf("email %q inválido: %w", raw, domain.ErrInvalidInput)
	}
	return strings.ToLower(addr.Address), nil
}
