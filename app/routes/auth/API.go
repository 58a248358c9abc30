package auth

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Amiradha/Major-Project/app/database"
	"github.com/Amiradha/Major-Project/app/models"
)

// LoginAPI matches the submitted credentials against the users table and
// establishes a store-backed session. The password comparison is an exact
// string match against the stored value; the credential table predates this
// system and holds plain text (flagged in DESIGN.md).
func LoginAPI(c *fiber.Ctx, users database.UserStore) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	user, err := users.UserByCredentials(username, password)
	if err != nil {
		if err == database.ErrInvalidCredentials {
			return c.Render("auth/login", fiber.Map{
				"Title":        "Login - Academic Results",
				"ErrorMessage": "Invalid username or password.",
			}, "")
		}
		log.Printf("Login failed for %q: %v", username, err)
		return c.Status(fiber.StatusInternalServerError).Render("auth/login", fiber.Map{
			"Title":        "Login - Academic Results",
			"ErrorMessage": "Something went wrong. Please try again.",
		}, "")
	}

	session := &models.Session{
		ID:        NewSessionID(),
		UserID:    user.ID,
		ExpiresAt: SessionExpiry(),
	}
	if err := users.CreateSession(session); err != nil {
		log.Printf("Failed to create session for %q: %v", username, err)
		return c.Status(fiber.StatusInternalServerError).Render("auth/login", fiber.Map{
			"Title":        "Login - Academic Results",
			"ErrorMessage": "Something went wrong. Please try again.",
		}, "")
	}

	token, err := GenerateSessionToken(session.ID, session.ExpiresAt)
	if err != nil {
		log.Printf("Failed to sign session token: %v", err)
		return c.Status(fiber.StatusInternalServerError).Render("auth/login", fiber.Map{
			"Title":        "Login - Academic Results",
			"ErrorMessage": "Something went wrong. Please try again.",
		}, "")
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.Redirect("/academic/component-performance")
}

// LogoutAPI drops the session row and clears the cookie.
func LogoutAPI(c *fiber.Ctx, users database.UserStore) error {
	if tokenString := c.Cookies(sessionCookie); tokenString != "" {
		if claims, err := ValidateSessionToken(tokenString); err == nil {
			if err := users.DeleteSession(claims.SessionID); err != nil {
				log.Printf("Failed to delete session: %v", err)
			}
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.Redirect("/auth/login")
}
