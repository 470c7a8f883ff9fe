package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/fluxora/internal/service"
	"github.com/maheshrc27/fluxora/internal/transfer"
)

type CalendarHandler struct {
	s  service.ScheduleService
	ex service.ExportService
}

func NewCalendarHandler(service service.ScheduleService, export service.ExportService) *CalendarHandler {
	return &CalendarHandler{s: service, ex: export}
}

func (h *CalendarHandler) Week(c *fiber.Ctx) error {
	week, err := WeekParam(c)
	if err != nil {
		return Error(c, err)
	}

	grid := h.s.Week(c.Context(), week)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"grid":   grid,
		"footer": grid.Footer(),
	})
}

func (h *CalendarHandler) Export(c *fiber.Ctx) error {
	week, err := WeekParam(c)
	if err != nil {
		return Error(c, err)
	}

	res, err := h.ex.Export(c.Context(), week)
	if err != nil {
		return Error(c, err)
	}

	if res.Mode == service.ExportModeQueued {
		return c.Status(fiber.StatusAccepted).JSON(res)
	}

	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", res.Filename))
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(res.Body)
}

func (h *CalendarHandler) ListSlots(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.s.List(c.Context()))
}

func (h *CalendarHandler) CreateSlot(c *fiber.Ctx) error {
	var req transfer.SlotCreation
	if err := c.BodyParser(&req); err != nil {
		return BadBody(c, err)
	}

	slot, err := h.s.Create(c.Context(), &req)
	if err != nil {
		return Error(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(slot)
}

func (h *CalendarHandler) RemoveSlot(c *fiber.Ctx) error {
	if err := h.s.Remove(c.Context(), c.Query("id")); err != nil {
		return Error(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// Drag receives the end of a drag gesture and answers with the refreshed week.
func (h *CalendarHandler) Drag(c *fiber.Ctx) error {
	var req transfer.DragEnd
	if err := c.BodyParser(&req); err != nil {
		return BadBody(c, err)
	}

	week, err := WeekParam(c)
	if err != nil {
		return Error(c, err)
	}

	outcome, err := h.s.DragEnd(c.Context(), &req)
	if err != nil {
		return Error(c, err)
	}
	grid := h.s.Week(c.Context(), week)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"outcome": outcome,
		"grid":    grid,
		"footer":  grid.Footer(),
	})
}
