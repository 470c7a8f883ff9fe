package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/fluxora/internal/api/middleware"
	"github.com/maheshrc27/fluxora/internal/calendar"
	"github.com/maheshrc27/fluxora/internal/models"
	"github.com/maheshrc27/fluxora/internal/service"
	"github.com/maheshrc27/fluxora/internal/transfer"
)

// GetSession returns the claims set by the session middleware, or nil.
func GetSession(c *fiber.Ctx) *transfer.SessionClaims {
	claims, _ := c.Locals(middleware.SessionKey).(*transfer.SessionClaims)
	return claims
}

// WeekParam reads ?week=YYYY-MM-DD; absent means the current week.
func WeekParam(c *fiber.Ctx) (*models.Date, error) {
	raw := c.Query("week")
	if raw == "" {
		return nil, nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Error maps a service error to a status and the {"error": ...} body.
func Error(c *fiber.Ctx, err error) error {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  verr.Error(),
			"fields": verr.Fields,
		})
	}

	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, calendar.ErrSlotNotFound),
		errors.Is(err, service.ErrContentNotFound),
		errors.Is(err, service.ErrCampaignNotFound),
		errors.Is(err, service.ErrAccountNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, models.ErrUnknownPlatform),
		errors.Is(err, models.ErrInvalidTimeSlot),
		errors.Is(err, models.ErrInvalidDate),
		errors.Is(err, calendar.ErrInvalidCell),
		errors.Is(err, service.ErrUnsupportedMedia):
		status = fiber.StatusBadRequest
	case errors.Is(err, service.ErrContentNotEditable):
		status = fiber.StatusConflict
	case errors.Is(err, service.ErrMediaTooLarge):
		status = fiber.StatusRequestEntityTooLarge
	case errors.Is(err, service.ErrStorageNotConfigured):
		status = fiber.StatusServiceUnavailable
	}

	if status == fiber.StatusInternalServerError {
		slog.Error(err.Error())
		return c.Status(status).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func BadBody(c *fiber.Ctx, err error) error {
	slog.Info(err.Error())
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Invalid request body",
	})
}
