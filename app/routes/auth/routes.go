package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Amiradha/Major-Project/app/database"
)

func SetupAuthRoutes(app *fiber.App, users database.UserStore) {
	auth := app.Group("/auth")

	auth.Get("/login", func(c *fiber.Ctx) error { return ShowLoginPage(c, users) })
	auth.Post("/login", func(c *fiber.Ctx) error { return LoginAPI(c, users) })
	auth.Post("/logout", func(c *fiber.Ctx) error { return LogoutAPI(c, users) })
}

func ShowLoginPage(c *fiber.Ctx, users database.UserStore) error {
	// Already logged in with a live session: skip the form.
	if tokenString := c.Cookies(sessionCookie); tokenString != "" {
		if claims, err := ValidateSessionToken(tokenString); err == nil {
			if _, err := users.SessionByID(claims.SessionID); err == nil {
				return c.Redirect("/academic/component-performance")
			}
		}
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Login - Academic Results",
	}, "")
}

// RequireSession validates the session cookie against the session store and
// gates every reporting route. Pages redirect to the login form; API paths
// answer 401 JSON.
func RequireSession(users database.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

		deny := func() error {
			if isAPIRequest {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
			}
			return c.Redirect("/auth/login")
		}

		tokenString := c.Cookies(sessionCookie)
		if tokenString == "" {
			return deny()
		}

		claims, err := ValidateSessionToken(tokenString)
		if err != nil {
			return deny()
		}

		session, err := users.SessionByID(claims.SessionID)
		if err != nil {
			return deny()
		}

		c.Locals("session_id", session.ID)
		c.Locals("user_id", session.UserID)

		return c.Next()
	}
}
