package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/fluxora/internal/service"
)

type DashboardHandler struct {
	s    service.DashboardService
	auth service.AuthService
}

func NewDashboardHandler(service service.DashboardService, auth service.AuthService) *DashboardHandler {
	return &DashboardHandler{s: service, auth: auth}
}

func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	user := h.auth.CurrentUser(GetSession(c))
	return c.Status(fiber.StatusOK).JSON(h.s.Summary(c.Context(), user.Name))
}
