package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/fluxora/configs"
	"github.com/maheshrc27/fluxora/internal/service"
)

const SessionKey = "session"

type AuthMiddleware struct {
	s   service.AuthService
	cfg config.Config
}

func NewAuthMiddleware(cfg config.Config, service service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{s: service, cfg: cfg}
}

// Session attaches the session claims when the cookie holds a valid token.
// Requests without a session pass through untouched.
func (m *AuthMiddleware) Session() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(m.cfg.CookieName)
		if tokenString == "" {
			return c.Next()
		}

		claims, err := m.s.Session(tokenString)
		if err != nil {
			c.Cookie(&fiber.Cookie{
				Name:   m.cfg.CookieName,
				Value:  "",
				Path:   "/",
				MaxAge: -1, // Delete cookie
			})
			slog.Info("dropping invalid session", "error", err)
			return c.Next()
		}

		c.Locals(SessionKey, claims)
		return c.Next()
	}
}
