package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/fluxora/internal/service"
	"github.com/maheshrc27/fluxora/internal/transfer"
)

type PreviewHandler struct {
	s service.PreviewService
}

func NewPreviewHandler(service service.PreviewService) *PreviewHandler {
	return &PreviewHandler{s: service}
}

func (h *PreviewHandler) Preview(c *fiber.Ctx) error {
	var req transfer.PreviewRequest
	if err := c.BodyParser(&req); err != nil {
		return BadBody(c, err)
	}

	previews, err := h.s.Render(c.Context(), &req)
	if err != nil {
		return Error(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(previews)
}

func (h *PreviewHandler) PreviewHTML(c *fiber.Ctx) error {
	var req transfer.PreviewRequest
	if err := c.BodyParser(&req); err != nil {
		return BadBody(c, err)
	}

	fragment, err := h.s.RenderHTML(c.Context(), &req)
	if err != nil {
		return Error(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(fiber.StatusOK).SendString(fragment)
}
