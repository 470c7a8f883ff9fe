package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/fluxora/internal/service"
	"github.com/maheshrc27/fluxora/internal/transfer"
)

type WorkspaceHandler struct {
	accounts  service.AccountService
	campaigns service.CampaignService
	analytics service.AnalyticsService
}

func NewWorkspaceHandler(
	accounts service.AccountService,
	campaigns service.CampaignService,
	analytics service.AnalyticsService) *WorkspaceHandler {
	return &WorkspaceHandler{
		accounts:  accounts,
		campaigns: campaigns,
		analytics: analytics,
	}
}

func (h *WorkspaceHandler) ListAccounts(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.accounts.List(c.Context()))
}

func (h *WorkspaceHandler) CreateAccount(c *fiber.Ctx) error {
	var req transfer.AccountCreation
	if err := c.BodyParser(&req); err != nil {
		return BadBody(c, err)
	}

	account, err := h.accounts.Create(c.Context(), &req)
	if err != nil {
		return Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(account)
}

func (h *WorkspaceHandler) UpdateAccount(c *fiber.Ctx) error {
	var req transfer.AccountCreation
	if err := c.BodyParser(&req); err != nil {
		return BadBody(c, err)
	}

	account, err := h.accounts.Update(c.Context(), &req)
	if err != nil {
		return Error(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(account)
}

func (h *WorkspaceHandler) RemoveAccount(c *fiber.Ctx) error {
	if err := h.accounts.Remove(c.Context(), c.Query("id")); err != nil {
		return Error(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

func (h *WorkspaceHandler) ListCampaigns(c *fiber.Ctx) error {
	active, _ := h.campaigns.Active(c.Context())
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"campaigns": h.campaigns.List(c.Context()),
		"active":    active,
	})
}

func (h *WorkspaceHandler) CreateCampaign(c *fiber.Ctx) error {
	var req transfer.CampaignCreation
	if err := c.BodyParser(&req); err != nil {
		return BadBody(c, err)
	}

	campaign, err := h.campaigns.Create(c.Context(), &req)
	if err != nil {
		return Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(campaign)
}

func (h *WorkspaceHandler) UpdateCampaign(c *fiber.Ctx) error {
	var req transfer.CampaignCreation
	if err := c.BodyParser(&req); err != nil {
		return BadBody(c, err)
	}

	campaign, err := h.campaigns.Update(c.Context(), &req)
	if err != nil {
		return Error(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(campaign)
}

func (h *WorkspaceHandler) RemoveCampaign(c *fiber.Ctx) error {
	if err := h.campaigns.Remove(c.Context(), c.Query("id")); err != nil {
		return Error(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

func (h *WorkspaceHandler) ActivateCampaign(c *fiber.Ctx) error {
	if err := h.campaigns.Activate(c.Context(), c.Query("id")); err != nil {
		return Error(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

func (h *WorkspaceHandler) Analytics(c *fiber.Ctx) error {
	report, err := h.analytics.Report(c.Context(), service.AnalyticsQuery{
		Platform: c.Query("platform"),
		Start:    c.Query("start"),
		End:      c.Query("end"),
	})
	if err != nil {
		return Error(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(report)
}
