package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/neocommerce-api/internal/application/chat"
	"github.com/jhoicas/neocommerce-api/internal/application/dashboard"
	"github.com/jhoicas/neocommerce-api/internal/application/dto"
	"github.com/jhoicas/neocommerce-api/internal/application/usecase"
	"github.com/jhoicas/neocommerce-api/internal/infrastructure/memory"
	"github.com/jhoicas/neocommerce-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/neocommerce-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye la API completa sobre el catálogo de ejemplo en memoria.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	log := zerolog.Nop()

	products, err := memory.NewProductRepository(memory.SampleProducts())
	require.NoError(t, err)
	categories := memory.NewCategoryRepository(memory.SampleCategories())
	content := memory.NewStorefrontContent()

	catalogUC := usecase.NewCatalogUseCase(products, categories, memory.NewQueryCache(time.Minute), pdf.NewMarotoCatalogGenerator(), usecase.CatalogSettings{
		DefaultMaxPrice: decimal.NewFromInt(8000000),
		PriceCeiling:    decimal.NewFromInt(15000000),
		Currency:        "MGA",
	}, log)
	chatSvc := chat.NewService(chat.NewResponder(chat.NewSeededPicker(1)), 10*time.Millisecond, time.Hour, log)
	t.Cleanup(chatSvc.CloseAll)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CatalogUC:    catalogUC,
		StorefrontUC: usecase.NewStorefrontUseCase(content, catalogUC, categories, log),
		ContactUC:    usecase.NewContactUseCase(content, log),
		Chat:         chatSvc,
		DashboardUC:  dashboard.NewDashboardUseCase(memory.NewVendorRepository(), log),
		Logger:       log,
	})
	return app
}

func do(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func ids(items []dto.ProductResponse) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_BusquedaIPhone(t *testing.T) {
	app := buildTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/products?q=iPhone", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decode[dto.ProductListResponse](t, resp)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "iPhone 15 Pro Max - 256GB Titanium", out.Items[0].Name)
	assert.Equal(t, 6, out.CatalogSize)
}

func TestProducts_CategoriaElectronics(t *testing.T) {
	app := buildTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/products?category=electronics&max_price=15000000&sort=price-desc", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decode[dto.ProductListResponse](t, resp)
	assert.Equal(t, []string{"2", "1", "4"}, ids(out.Items))
}

func TestProducts_TopeCeroEstadoVacio(t *testing.T) {
	app := buildTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/products?max_price=0", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decode[dto.ProductListResponse](t, resp)
	assert.Empty(t, out.Items)
	assert.Equal(t, 0, out.Total)
	require.NotNil(t, out.EmptyState)
	assert.Equal(t, "Aucun produit trouvé", out.EmptyState.Title)
	assert.Equal(t, "Essayez de modifier vos critères de recherche ou parcourez nos catégories", out.EmptyState.Hint)
	assert.Equal(t, "8000000", out.EmptyState.Reset.MaxPrice.String())
}

func TestProducts_ParametrosInvalidos(t *testing.T) {
	app := buildTestApp(t)

	for _, target := range []string{"/api/products?sort=popularity", "/api/products?max_price=abc", "/api/products?max_price=-10"} {
		resp := do(t, app, http.MethodGet, target, nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, target)
		assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)
	}
}

func TestProducts_FiltrosDelPanel(t *testing.T) {
	app := buildTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/products?discounted=true&verified=true&max_price=15000000&sort=price-asc", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"4", "1", "2"}, ids(decode[dto.ProductListResponse](t, resp).Items))
}

func TestProducts_Detalle(t *testing.T) {
	app := buildTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/products/6", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	p := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, "Canapé Scandinave 3 Places", p.Name)
	assert.False(t, p.Vendor.Verified)
	require.NotNil(t, p.Discount)
	assert.Equal(t, 25, *p.Discount)

	resp = do(t, app, http.MethodGet, "/api/products/999", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestProducts_Intenciones(t *testing.T) {
	app := buildTestApp(t)

	for path, action := range map[string]string{"cart": "add_to_cart", "wishlist": "toggle_wishlist", "view": "view"} {
		resp := do(t, app, http.MethodPost, "/api/products/3/"+path, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode, path)
		assert.Equal(t, action, decode[dto.IntentResponse](t, resp).Action)
	}

	resp := do(t, app, http.MethodPost, "/api/products/999/cart", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestProducts_ExportPDF(t *testing.T) {
	app := buildTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/products/export.pdf?category=fashion", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestCategories(t *testing.T) {
	app := buildTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/categories", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.CategoryListResponse](t, resp)
	assert.Equal(t, "Toutes les catégories", out.FilterOptions[0].Label)
}

// ──────────────────────────────────────────────────────────────────────────────
// Storefront y contacto
// ──────────────────────────────────────────────────────────────────────────────

func TestHomeYNavegacion(t *testing.T) {
	app := buildTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/home", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	home := decode[dto.HomeResponse](t, resp)
	assert.Len(t, home.Features, 4)
	assert.NotEmpty(t, home.FeaturedProducts)

	resp = do(t, app, http.MethodGet, "/api/navigation", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, decode[dto.NavigationResponse](t, resp).Links, 5)
}

func TestNewsletter(t *testing.T) {
	app := buildTestApp(t)

	resp := do(t, app, http.MethodPost, "/api/newsletter", dto.NewsletterRequest{Email: "a@b.mg"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/api/newsletter", dto.NewsletterRequest{Email: "nope"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestContact(t *testing.T) {
	app := buildTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/contact", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, decode[dto.ContactInfoResponse](t, resp).Channels, 5)

	resp = do(t, app, http.MethodPost, "/api/contact", dto.ContactRequest{
		Name: "Rija", Email: "rija@example.mg", Subject: "support", Message: "Bonjour",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Message envoyé !", decode[dto.AckResponse](t, resp).Title)

	resp = do(t, app, http.MethodPost, "/api/contact", dto.ContactRequest{Name: "Rija"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	raw, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "INVALID_BODY", decode[dto.ErrorResponse](t, raw).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Chat
// ──────────────────────────────────────────────────────────────────────────────

func TestChat_Ciclo(t *testing.T) {
	app := buildTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/chat/quick-actions", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.QuickActionResponse](t, resp), 3)

	resp = do(t, app, http.MethodPost, "/api/chat/sessions", nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	sess := decode[dto.ChatSessionResponse](t, resp)
	require.Len(t, sess.Messages, 1)
	assert.Equal(t, "Support NeoCommerce", sess.Title)

	base := "/api/chat/sessions/" + sess.ID
	resp = do(t, app, http.MethodPost, base+"/messages", dto.SendChatMessageRequest{Content: "   "})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = do(t, app, http.MethodPost, base+"/messages", dto.SendChatMessageRequest{Content: "Contacter un vendeur"})
	require.Equal(t, fiber.StatusAccepted, resp.StatusCode)
	assert.Equal(t, "Vous", decode[dto.ChatMessageResponse](t, resp).SenderName)

	require.Eventually(t, func() bool {
		resp := do(t, app, http.MethodGet, base+"/messages", nil)
		return len(decode[[]dto.ChatMessageResponse](t, resp)) == 3
	}, 2*time.Second, 10*time.Millisecond)

	resp = do(t, app, http.MethodDelete, base, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = do(t, app, http.MethodGet, base+"/messages", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Panel del vendedor
// ──────────────────────────────────────────────────────────────────────────────

func TestVendorDashboard(t *testing.T) {
	app := buildTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/vendor/dashboard?tab=messages", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.VendorDashboardResponse](t, resp)
	assert.Len(t, out.Messages, 3)
	assert.Equal(t, 2, out.UnreadCount)

	resp = do(t, app, http.MethodGet, "/api/vendor/dashboard?tab=analytics", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestVendorDraftProduct(t *testing.T) {
	app := buildTestApp(t)

	resp := do(t, app, http.MethodPost, "/api/vendor/products", map[string]any{"name": "Lampe", "price": 45000, "category": "home"})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/api/vendor/products", map[string]any{"name": "Lampe", "price": 0, "category": "home"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Middleware de logging
// ──────────────────────────────────────────────────────────────────────────────

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(apphttp.RequestLogger(zerolog.New(&buf)))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/boom", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "tetera") })

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "info", first["level"])
	assert.Equal(t, float64(200), first["status"])
	assert.Equal(t, "/ok", first["path"])
	assert.Equal(t, "warn", second["level"])
	assert.Equal(t, float64(418), second["status"])
}
