package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/neocommerce-api/internal/application/dto"
	"github.com/jhoicas/neocommerce-api/internal/application/usecase"
)

// ContactHandler formulario y canales de contacto.
type ContactHandler struct {
	uc *usecase.ContactUseCase
}

// NewContactHandler construye el handler.
func NewContactHandler(uc *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// Channels godoc
// @Summary      Canales de contacto y asuntos
// @Tags         contact
// @Produce      json
// @Success      200  {object}  dto.ContactInfoResponse
// @Router       /api/contact [get]
func (h *ContactHandler) Channels(c *fiber.Ctx) error {
	return c.JSON(h.uc.Channels())
}

// Submit godoc
// @Summary      Enviar el formulario de contacto
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ContactRequest  true  "Mensaje"
// @Success      201   {object}  dto.AckResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var in dto.ContactRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Submit(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
