package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/fluxora/internal/service"
	"github.com/maheshrc27/fluxora/internal/transfer"
)

type ContentHandler struct {
	s service.ContentService
}

func NewContentHandler(service service.ContentService) *ContentHandler {
	return &ContentHandler{s: service}
}

func (h *ContentHandler) ListContent(c *fiber.Ctx) error {
	if id := c.Query("id"); id != "" {
		item, err := h.s.Get(c.Context(), id)
		if err != nil {
			return Error(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(item)
	}

	return c.Status(fiber.StatusOK).JSON(h.s.List(c.Context()))
}

func (h *ContentHandler) CreateContent(c *fiber.Ctx) error {
	var req transfer.ContentCreation
	if err := c.BodyParser(&req); err != nil {
		return BadBody(c, err)
	}

	item, err := h.s.Create(c.Context(), &req)
	if err != nil {
		return Error(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *ContentHandler) UpdateContent(c *fiber.Ctx) error {
	var req transfer.ContentCreation
	if err := c.BodyParser(&req); err != nil {
		return BadBody(c, err)
	}

	item, err := h.s.Update(c.Context(), &req)
	if err != nil {
		return Error(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(item)
}

func (h *ContentHandler) RemoveContent(c *fiber.Ctx) error {
	if err := h.s.Remove(c.Context(), c.Query("id")); err != nil {
		return Error(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

func (h *ContentHandler) UploadMedia(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file selected",
		})
	}

	upload, err := h.s.UploadMedia(c.Context(), file)
	if err != nil {
		return Error(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(upload)
}
