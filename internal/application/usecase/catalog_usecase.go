package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/neocommerce-api/internal/application/dto"
	"github.com/jhoicas/neocommerce-api/internal/application/ports"
	"github.com/jhoicas/neocommerce-api/internal/domain"
	"github.com/jhoicas/neocommerce-api/internal/domain/catalog"
	"github.com/jhoicas/neocommerce-api/internal/domain/entity"
	"github.com/jhoicas/neocommerce-api/internal/domain/repository"
)

// Intenciones del cliente sobre un producto.
const (
	IntentAddToCart      = "add_to_cart"
	IntentToggleWishlist = "toggle_wishlist"
	IntentView           = "view"
)

var intentMessages = map[string]string{
	IntentAddToCart:      "Produit ajouté au panier",
	IntentToggleWishlist: "Liste de souhaits mise à jour",
	IntentView:           "Consultation enregistrée",
}

const (
	emptyStateTitle = "Aucun produit trouvé"
	emptyStateHint  = "Essayez de modifier vos critères de recherche ou parcourez nos catégories"
	allCategories   = "Toutes les catégories"
)

// CatalogSettings límites del filtro de precio y moneda de presentación.
type CatalogSettings struct {
	DefaultMaxPrice decimal.Decimal
	PriceCeiling    decimal.Decimal
	Currency        string
}

// CatalogUseCase búsqueda, detalle y exportación del catálogo.
type CatalogUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	cache      ports.QueryCache
	pdf        ports.CatalogPDFGenerator
	settings   CatalogSettings
	log        zerolog.Logger
}

// NewCatalogUseCase construye el caso de uso. cache y pdf pueden ser nil.
func NewCatalogUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	cache ports.QueryCache,
	pdf ports.CatalogPDFGenerator,
	settings CatalogSettings,
	log zerolog.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		products:   products,
		categories: categories,
		cache:      cache,
		pdf:        pdf,
		settings:   settings,
		log:        log,
	}
}

// Search devuelve la vista filtrada del catálogo. Una vista vacía no es un error:
// la respuesta lleva EmptyState con los parámetros de reinicio.
func (uc *CatalogUseCase) Search(ctx context.Context, in dto.ProductQueryRequest) (*dto.ProductListResponse, error) {
	params, err := uc.params(in)
	if err != nil {
		return nil, err
	}
	all, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar catálogo: %w", err)
	}

	view := uc.view(ctx, all, params)

	out := &dto.ProductListResponse{
		Items:       make([]dto.ProductResponse, 0, len(view)),
		Total:       len(view),
		CatalogSize: len(all),
		Query:       toQueryResponse(params),
	}
	for i := range view {
		out.Items = append(out.Items, toProductResponse(&view[i]))
	}
	if len(view) == 0 {
		out.EmptyState = &dto.EmptyState{
			Title: emptyStateTitle,
			Hint:  emptyStateHint,
			Reset: toQueryResponse(catalog.Params{MaxPrice: uc.settings.DefaultMaxPrice, Sort: params.Sort}),
		}
	}
	return out, nil
}

// view consulta la caché y, si falla o no hay entrada, recalcula la vista y la memoiza.
func (uc *CatalogUseCase) view(ctx context.Context, all []entity.Product, params catalog.Params) []entity.Product {
	if uc.cache == nil {
		return catalog.Query(all, params)
	}
	key := params.Key()

	ids, ok, err := uc.cache.Get(ctx, key)
	if err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("caché de consultas no disponible, recalculando")
	}
	if ok && err == nil {
		if view, complete := pick(all, ids); complete {
			return view
		}
	}

	view := catalog.Query(all, params)
	if err := uc.cache.Set(ctx, key, productIDs(view)); err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("no se pudo memoizar la vista")
	}
	return view
}

// params aplica los valores por defecto y recorta el tope de precio al techo configurado.
func (uc *CatalogUseCase) params(in dto.ProductQueryRequest) (catalog.Params, error) {
	sk, err := catalog.ParseSortKey(in.Sort)
	if err != nil {
		return catalog.Params{}, err
	}
	maxPrice := uc.settings.DefaultMaxPrice
	if in.MaxPrice != nil {
		if in.MaxPrice.IsNegative() {
			return catalog.Params{}, fmt.Errorf("max_price negativo: %w", domain.ErrInvalidInput)
		}
		maxPrice = *in.MaxPrice
	}
	if !uc.settings.PriceCeiling.IsZero() && maxPrice.GreaterThan(uc.settings.PriceCeiling) {
		maxPrice = uc.settings.PriceCeiling
	}
	return catalog.Params{
		Search:         strings.TrimSpace(in.Search),
		Category:       strings.TrimSpace(in.Category),
		MaxPrice:       maxPrice,
		Sort:           sk,
		VerifiedOnly:   in.Verified,
		DiscountedOnly: in.Discounted,
	}, nil
}

// GetByID obtiene un producto por ID. Devuelve nil, nil si no existe.
func (uc *CatalogUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	out := toProductResponse(p)
	return &out, nil
}

// Featured productos destacados en el orden del catálogo.
func (uc *CatalogUseCase) Featured(ctx context.Context) ([]dto.ProductResponse, error) {
	all, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar catálogo: %w", err)
	}
	out := make([]dto.ProductResponse, 0, len(all))
	for i := range all {
		if all[i].Featured {
			out = append(out, toProductResponse(&all[i]))
		}
	}
	return out, nil
}

// Categories categorías del navegador y opciones de los selectores del catálogo.
func (uc *CatalogUseCase) Categories(ctx context.Context) (*dto.CategoryListResponse, error) {
	cats, err := uc.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar categorías: %w", err)
	}
	out := &dto.CategoryListResponse{
		Items:         make([]dto.CategoryResponse, 0, len(cats)),
		FilterOptions: make([]dto.CategoryOption, 0, len(cats)+1),
		SortOptions:   make([]string, 0, len(catalog.SortKeys)),
	}
	out.FilterOptions = append(out.FilterOptions, dto.CategoryOption{ID: "", Label: allCategories})
	for _, c := range cats {
		out.Items = append(out.Items, toCategoryResponse(c))
		out.FilterOptions = append(out.FilterOptions, dto.CategoryOption{ID: c.ID, Label: c.Name})
	}
	for _, sk := range catalog.SortKeys {
		out.SortOptions = append(out.SortOptions, string(sk))
	}
	return out, nil
}

// RecordIntent registra en el log una intención del cliente (carrito, favoritos, vista).
// No se guarda estado: el cliente es dueño del carrito y de la lista de favoritos.
func (uc *CatalogUseCase) RecordIntent(ctx context.Context, productID, action string) (*dto.IntentResponse, error) {
	msg, ok := intentMessages[action]
	if !ok {
		return nil, fmt.Errorf("acción %q: %w", action, domain.ErrInvalidInput)
	}
	p, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("producto %s: %w", productID, domain.ErrNotFound)
	}
	uc.log.Info().
		Str("product_id", p.ID).
		Str("product", p.Name).
		Str("action", action).
		Msg("intención del cliente")
	return &dto.IntentResponse{ProductID: p.ID, Action: action, Message: msg}, nil
}

// ExportPDF genera el PDF de la vista filtrada con los mismos parámetros que Search.
func (uc *CatalogUseCase) ExportPDF(ctx context.Context, in dto.ProductQueryRequest) ([]byte, error) {
	if uc.pdf == nil {
		return nil, errors.New("exportación PDF no configurada")
	}
	params, err := uc.params(in)
	if err != nil {
		return nil, err
	}
	all, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar catálogo: %w", err)
	}
	view := uc.view(ctx, all, params)

	doc, err := uc.pdf.GenerateCatalogPDF(ctx, ports.CatalogPDFMeta{
		Title:    "Catalogue Produits",
		Filters:  describeFilters(params),
		Currency: uc.settings.Currency,
	}, view)
	if err != nil {
		return nil, fmt.Errorf("exportar catálogo: %w", err)
	}
	return doc, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

// pick reconstruye la vista a partir de los IDs memoizados.
// complete es false si algún ID ya no está en el catálogo.
func pick(all []entity.Product, ids []string) (view []entity.Product, complete bool) {
	byID := make(map[string]int, len(all))
	for i := range all {
		byID[all[i].ID] = i
	}
	view = make([]entity.Product, 0, len(ids))
	for _, id := range ids {
		i, ok := byID[id]
		if !ok {
			return nil, false
		}
		view = append(view, all[i])
	}
	return view, true
}

func productIDs(products []entity.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func describeFilters(p catalog.Params) string {
	parts := make([]string, 0, 5)
	if p.Search != "" {
		parts = append(parts, fmt.Sprintf("recherche: %q", p.Search))
	}
	if p.Category != "" {
		parts = append(parts, "catégorie: "+p.Category)
	}
	parts = append(parts, "prix max: "+p.MaxPrice.StringFixed(0), "tri: "+string(p.Sort))
	if p.VerifiedOnly {
		parts = append(parts, "vendeurs vérifiés")
	}
	if p.DiscountedOnly {
		parts = append(parts, "en promotion")
	}
	return strings.Join(parts, " · ")
}

func toQueryResponse(p catalog.Params) dto.ProductQueryResponse {
	sk := p.Sort
	if sk == "" {
		sk = catalog.SortByName
	}
	return dto.ProductQueryResponse{
		Search:     p.Search,
		Category:   p.Category,
		MaxPrice:   p.MaxPrice,
		Sort:       string(sk),
		Verified:   p.VerifiedOnly,
		Discounted: p.DiscountedOnly,
	}
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Rating:        p.Rating,
		ReviewCount:   p.ReviewCount,
		Image:         p.Image,
		Category:      p.Category,
		Discount:      p.Discount,
		Featured:      p.Featured,
		Vendor:        dto.VendorResponse{Name: p.Vendor.Name, Verified: p.Vendor.Verified},
	}
}

func toCategoryResponse(c entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Icon:         c.Icon,
		ProductCount: c.ProductCount,
		Featured:     c.Featured,
	}
}
