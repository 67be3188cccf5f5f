package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/neocommerce-api/internal/application/dashboard"
	"github.com/jhoicas/neocommerce-api/internal/application/dto"
)

// VendorHandler panel del vendedor.
type VendorHandler struct {
	uc *dashboard.DashboardUseCase
}

// NewVendorHandler construye el handler.
func NewVendorHandler(uc *dashboard.DashboardUseCase) *VendorHandler {
	return &VendorHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Panel del vendedor
// @Tags         vendor
// @Produce      json
// @Param        tab  query  string  false  "overview | products | messages"  default(overview)
// @Success      200  {object}  dto.VendorDashboardResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/vendor/dashboard [get]
func (h *VendorHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext(), c.Query("tab"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DraftProduct godoc
// @Summary      Añadir producto (formulario del panel)
// @Tags         vendor
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VendorProductDraft  true  "Producto"
// @Success      201   {object}  dto.AckResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/vendor/products [post]
func (h *VendorHandler) DraftProduct(c *fiber.Ctx) error {
	var in dto.VendorProductDraft
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.DraftProduct(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
