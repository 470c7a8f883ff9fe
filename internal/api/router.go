// Package api assembles the HTTP surface of the dashboard backend.
package api

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	config "github.com/maheshrc27/fluxora/configs"
	"github.com/maheshrc27/fluxora/internal/api/handlers"
	"github.com/maheshrc27/fluxora/internal/api/middleware"
	"github.com/maheshrc27/fluxora/internal/metrics"
	"github.com/maheshrc27/fluxora/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Services struct {
	Auth      service.AuthService
	Schedule  service.ScheduleService
	Content   service.ContentService
	Preview   service.PreviewService
	Export    service.ExportService
	Dashboard service.DashboardService
	Accounts  service.AccountService
	Campaigns service.CampaignService
	Analytics service.AnalyticsService
}

func NewApp(cfg config.Config, s Services, m *metrics.Metrics) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
		BodyLimit:    int(service.MaxMediaSize) + 1024*1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			slog.Error(err.Error(), "path", c.Path())
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))

	authMiddleware := middleware.NewAuthMiddleware(cfg, s.Auth)
	app.Use(authMiddleware.Session())

	auth := handlers.NewAuthHandler(cfg, s.Auth)
	app.Post("/login", auth.Login)
	app.Post("/logout", auth.Logout)

	api := app.Group("/api")
	api.Get("/me", auth.Me)

	dashboard := handlers.NewDashboardHandler(s.Dashboard, s.Auth)
	api.Get("/dashboard", dashboard.Dashboard)

	cal := handlers.NewCalendarHandler(s.Schedule, s.Export)
	api.Get("/calendar", cal.Week)
	api.Get("/calendar/export", cal.Export)
	api.Get("/slots", cal.ListSlots)
	api.Post("/slots/create", cal.CreateSlot)
	api.Post("/slots/remove", cal.RemoveSlot)
	api.Post("/slots/drag", cal.Drag)

	content := handlers.NewContentHandler(s.Content)
	api.Get("/content", content.ListContent)
	api.Post("/content/create", content.CreateContent)
	api.Post("/content/update", content.UpdateContent)
	api.Post("/content/remove", content.RemoveContent)
	api.Post("/content/media", content.UploadMedia)

	preview := handlers.NewPreviewHandler(s.Preview)
	api.Post("/preview", preview.Preview)
	api.Post("/preview/html", preview.PreviewHTML)

	ws := handlers.NewWorkspaceHandler(s.Accounts, s.Campaigns, s.Analytics)
	api.Get("/accounts", ws.ListAccounts)
	api.Post("/accounts/create", ws.CreateAccount)
	api.Post("/accounts/update", ws.UpdateAccount)
	api.Post("/accounts/remove", ws.RemoveAccount)

	api.Get("/campaigns", ws.ListCampaigns)
	api.Post("/campaigns/create", ws.CreateCampaign)
	api.Post("/campaigns/update", ws.UpdateCampaign)
	api.Post("/campaigns/remove", ws.RemoveCampaign)
	api.Post("/campaigns/activate", ws.ActivateCampaign)

	api.Get("/analytics", ws.Analytics)

	return app
}
