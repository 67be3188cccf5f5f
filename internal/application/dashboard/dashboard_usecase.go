// Package dashboard contiene los casos de uso del panel del vendedor.
package dashboard

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/neocommerce-api/internal/application/dto"
	"github.com/jhoicas/neocommerce-api/internal/domain"
	"github.com/jhoicas/neocommerce-api/internal/domain/entity"
	"github.com/jhoicas/neocommerce-api/internal/domain/repository"
)

// Pestañas del panel.
const (
	TabOverview = "overview"
	TabProducts = "products"
	TabMessages = "messages"
)

// Tabs pestañas en el orden del panel.
var Tabs = []string{TabOverview, TabProducts, TabMessages}

// DraftCategories categorías aceptadas por el formulario de alta de producto.
var DraftCategories = []string{"electronics", "fashion", "home", "beauty"}

// DashboardUseCase arma el contenido de cada pestaña del panel del vendedor.
type DashboardUseCase struct {
	repo repository.VendorRepository
	log  zerolog.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.VendorRepository, log zerolog.Logger) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, log: log}
}

// ParseTab valida la pestaña. Vacío equivale a TabOverview.
func ParseTab(tab string) (string, error) {
	tab = strings.ToLower(strings.TrimSpace(tab))
	if tab == "" {
		return TabOverview, nil
	}
	if !slices.Contains(Tabs, tab) {
		return "", fmt.Errorf("pestaña %q: %w", tab, domain.ErrInvalidInput)
	}
	return tab, nil
}

// Dashboard devuelve las secciones de la pestaña pedida.
//
//   - overview → indicadores + pedidos recientes
//   - products → productos publicados
//   - messages → bandeja de clientes + no leídos
//
// Las secciones de una pestaña se leen en paralelo; el primer error cancela el resto.
func (uc *DashboardUseCase) Dashboard(ctx context.Context, tab string) (*dto.VendorDashboardResponse, error) {
	tab, err := ParseTab(tab)
	if err != nil {
		return nil, err
	}

	var (
		stats    []entity.VendorStat
		orders   []entity.VendorOrder
		listings []entity.VendorListing
		messages []entity.CustomerMessage
	)

	g, gctx := errgroup.WithContext(ctx)
	switch tab {
	case TabOverview:
		g.Go(func() error {
			var err error
			stats, err = uc.repo.Stats(gctx)
			return wrap("indicadores", err)
		})
		g.Go(func() error {
			var err error
			orders, err = uc.repo.RecentOrders(gctx)
			return wrap("pedidos recientes", err)
		})
	case TabProducts:
		g.Go(func() error {
			var err error
			listings, err = uc.repo.Listings(gctx)
			return wrap("productos", err)
		})
	}
	// El contador de no leídos se muestra en todas las pestañas.
	g.Go(func() error {
		var err error
		messages, err = uc.repo.Messages(gctx)
		return wrap("mensajes", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &dto.VendorDashboardResponse{Tab: tab, Tabs: Tabs}
	for _, s := range stats {
		out.Stats = append(out.Stats, dto.VendorStatResponse{Title: s.Title, Value: s.Value, Change: s.Change})
	}
	for _, o := range orders {
		out.RecentOrders = append(out.RecentOrders, dto.VendorOrderResponse{
			ID: o.ID, Customer: o.Customer, Product: o.Product,
			Amount: o.Amount, Currency: o.Currency, Status: o.Status,
		})
	}
	for _, l := range listings {
		out.Listings = append(out.Listings, dto.VendorListingResponse{
			ID: l.ID, Name: l.Name, Price: l.Price, Currency: l.Currency,
			Stock: l.Stock, Views: l.Views, Sales: l.Sales, Rating: l.Rating, Status: l.Status,
		})
	}
	for _, m := range messages {
		if m.Unread {
			out.UnreadCount++
		}
		if tab == TabMessages {
			out.Messages = append(out.Messages, dto.CustomerMessageResponse{
				ID: m.ID, Customer: m.Customer, Subject: m.Subject,
				Preview: m.Preview, Timestamp: m.Timestamp, Unread: m.Unread,
			})
		}
	}
	return out, nil
}

// DraftProduct valida el formulario de alta de producto y devuelve el acuse. No se guarda nada.
func (uc *DashboardUseCase) DraftProduct(_ context.Context, in dto.VendorProductDraft) (*dto.AckResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("name requerido: %w", domain.ErrInvalidInput)
	}
	if !in.Price.IsPositive() {
		return nil, fmt.Errorf("price debe ser mayor que cero: %w", domain.ErrInvalidInput)
	}
	if !slices.Contains(DraftCategories, in.Category) {
		return nil, fmt.Errorf("category %q no soportada: %w", in.Category, domain.ErrInvalidInput)
	}

	ref := uuid.New().String()
	uc.log.Info().
		Str("reference", ref).
		Str("name", name).
		Str("price", in.Price.String()).
		Str("category", in.Category).
		Msg("borrador de producto del vendedor")

	return &dto.AckResponse{
		Title:     "Produit enregistré",
		Message:   fmt.Sprintf("%s a été ajouté à votre boutique.", name),
		Reference: ref,
	}, nil
}

func wrap(section string, err error) error {
	if err != nil {
		return fmt.Errorf("panel vendedor, %s: %w", section, err)
	}
	return nil
}
