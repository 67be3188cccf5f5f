package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/neocommerce-api/internal/application/dto"
	"github.com/jhoicas/neocommerce-api/internal/application/usecase"
)

// StorefrontHandler página de inicio, cabecera y newsletter.
type StorefrontHandler struct {
	uc *usecase.StorefrontUseCase
}

// NewStorefrontHandler construye el handler.
func NewStorefrontHandler(uc *usecase.StorefrontUseCase) *StorefrontHandler {
	return &StorefrontHandler{uc: uc}
}

// Home godoc
// @Summary      Página de inicio
// @Tags         storefront
// @Produce      json
// @Success      200  {object}  dto.HomeResponse
// @Router       /api/home [get]
func (h *StorefrontHandler) Home(c *fiber.Ctx) error {
	out, err := h.uc.Home(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Navigation godoc
// @Summary      Enlaces de la cabecera
// @Tags         storefront
// @Produce      json
// @Success      200  {object}  dto.NavigationResponse
// @Router       /api/navigation [get]
func (h *StorefrontHandler) Navigation(c *fiber.Ctx) error {
	return c.JSON(h.uc.Navigation())
}

// Subscribe godoc
// @Summary      Alta en la newsletter
// @Tags         storefront
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NewsletterRequest  true  "Email"
// @Success      200   {object}  dto.AckResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/newsletter [post]
func (h *StorefrontHandler) Subscribe(c *fiber.Ctx) error {
	var in dto.NewsletterRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Subscribe(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
