package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/neocommerce-api/internal/application/chat"
	"github.com/jhoicas/neocommerce-api/internal/application/dto"
)

// ChatHandler sesiones del widget de soporte.
type ChatHandler struct {
	svc *chat.Service
}

// NewChatHandler construye el handler.
func NewChatHandler(svc *chat.Service) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// QuickActions godoc
// @Summary      Acciones rápidas del widget
// @Tags         chat
// @Produce      json
// @Success      200  {array}  dto.QuickActionResponse
// @Router       /api/chat/quick-actions [get]
func (h *ChatHandler) QuickActions(c *fiber.Ctx) error {
	return c.JSON(chat.QuickActions)
}

// Open godoc
// @Summary      Abrir sesión de chat
// @Tags         chat
// @Produce      json
// @Success      201  {object}  dto.ChatSessionResponse
// @Router       /api/chat/sessions [post]
func (h *ChatHandler) Open(c *fiber.Ctx) error {
	out, err := h.svc.Open(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Messages godoc
// @Summary      Registro de la sesión
// @Tags         chat
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {array}   dto.ChatMessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/chat/sessions/{id}/messages [get]
func (h *ChatHandler) Messages(c *fiber.Ctx) error {
	out, err := h.svc.Messages(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Send godoc
// @Summary      Enviar mensaje
// @Description  La respuesta del asistente llega de forma diferida; consultar el registro.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID de la sesión"
// @Param        body  body  dto.SendChatMessageRequest  true  "Mensaje"
// @Success      202   {object}  dto.ChatMessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/chat/sessions/{id}/messages [post]
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	var in dto.SendChatMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.svc.Send(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(out)
}

// Close godoc
// @Summary      Cerrar sesión de chat
// @Tags         chat
// @Param        id   path  string  true  "ID de la sesión"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/chat/sessions/{id} [delete]
func (h *ChatHandler) Close(c *fiber.Ctx) error {
	if err := h.svc.Close(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
