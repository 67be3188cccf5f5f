package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/neocommerce-api/internal/application/dto"
	"github.com/jhoicas/neocommerce-api/internal/application/usecase"
)

// CatalogHandler maneja la búsqueda, el detalle y las intenciones sobre productos.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// parseQuery lee los parámetros de la vista filtrada desde la query string.
func parseQuery(c *fiber.Ctx) (dto.ProductQueryRequest, error) {
	in := dto.ProductQueryRequest{
		Search:     c.Query("q"),
		Category:   c.Query("category"),
		Sort:       c.Query("sort"),
		Verified:   c.QueryBool("verified", false),
		Discounted: c.QueryBool("discounted", false),
	}
	if raw := strings.TrimSpace(c.Query("max_price")); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return in, err
		}
		in.MaxPrice = &d
	}
	return in, nil
}

// Search godoc
// @Summary      Buscar productos
// @Description  Filtra y ordena el catálogo. Una vista vacía responde 200 con empty_state.
// @Tags         products
// @Produce      json
// @Param        q           query  string  false  "Texto buscado en el nombre"
// @Param        category    query  string  false  "ID de categoría (vacío = todas)"
// @Param        max_price   query  number  false  "Tope de precio inclusivo"  default(8000000)
// @Param        sort        query  string  false  "name | price-asc | price-desc | rating"  default(name)
// @Param        verified    query  bool    false  "Solo vendedores verificados"
// @Param        discounted  query  bool    false  "Solo productos en promoción"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	in, err := parseQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "max_price debe ser numérico"})
	}
	out, err := h.uc.Search(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ExportPDF godoc
// @Summary      Exportar la vista filtrada a PDF
// @Tags         products
// @Produce      application/pdf
// @Param        q          query  string  false  "Texto buscado"
// @Param        category   query  string  false  "ID de categoría"
// @Param        max_price  query  number  false  "Tope de precio"
// @Param        sort       query  string  false  "Orden"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/export.pdf [get]
func (h *CatalogHandler) ExportPDF(c *fiber.Ctx) error {
	in, err := parseQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "max_price debe ser numérico"})
	}
	doc, err := h.uc.ExportPDF(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="catalogue.pdf"`)
	return c.Send(doc)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *CatalogHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Listar categorías y opciones de filtro
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/categories [get]
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.Categories(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Intent devuelve el handler de una intención (carrito, favoritos, vista).
//
// @Summary      Registrar intención sobre un producto
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.IntentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/cart [post]
// @Router       /api/products/{id}/wishlist [post]
// @Router       /api/products/{id}/view [post]
func (h *CatalogHandler) Intent(action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := h.uc.RecordIntent(c.UserContext(), c.Params("id"), action)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(out)
	}
}
