package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"resumematch/internal/db"
	"resumematch/internal/models"
)

// AuthMiddleware handles user authentication via sessions.
type AuthMiddleware struct {
	db *db.DB
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(database *db.DB) *AuthMiddleware {
	return &AuthMiddleware{db: database}
}

// RequireAuth ensures the user is authenticated, redirecting to /login if not.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	user := m.sessionUser(c)
	if user == nil {
		return c.Redirect().To("/login")
	}

	c.Locals("user", user)
	return c.Next()
}

// RequireAdmin ensures the user is authenticated and flagged as admin.
func (m *AuthMiddleware) RequireAdmin(c fiber.Ctx) error {
	user := m.sessionUser(c)
	if user == nil {
		return c.Redirect().To("/login")
	}
	if !user.IsAdmin {
		return fiber.NewError(fiber.StatusForbidden, "admin access required")
	}

	c.Locals("user", user)
	return c.Next()
}

// OptionalAuth loads the user if authenticated, but doesn't require it.
func (m *AuthMiddleware) OptionalAuth(c fiber.Ctx) error {
	if user := m.sessionUser(c); user != nil {
		c.Locals("user", user)
	}
	return c.Next()
}

// sessionUser resolves the session's subject to a user record. A stale
// session (user deleted) is destroyed.
func (m *AuthMiddleware) sessionUser(c fiber.Ctx) *models.User {
	sess := session.FromContext(c)
	if sess == nil {
		return nil
	}

	sub, ok := sess.Get("user_sub").(string)
	if !ok || sub == "" {
		return nil
	}

	user, err := m.db.GetUserBySub(c.Context(), sub)
	if err != nil {
		sess.Destroy()
		return nil
	}
	return user
}
