// Package handlers contains the HTTP handlers for the web UI.
package handlers

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"resumematch/internal/config"
	"resumematch/internal/models"
)

// Flash levels for one-shot messages shown on the next rendered page.
const (
	FlashSuccess = "success"
	FlashWarning = "warning"
	FlashDanger  = "danger"
)

// setFlash stores a one-shot message in the session.
func setFlash(c fiber.Ctx, level, message string) {
	sess := session.FromContext(c)
	if sess == nil {
		return
	}
	sess.Set("flash_level", level)
	sess.Set("flash_message", message)
}

// takeFlash reads and clears the session's flash message.
func takeFlash(c fiber.Ctx) (level, message string) {
	sess := session.FromContext(c)
	if sess == nil {
		return "", ""
	}

	level, _ = sess.Get("flash_level").(string)
	message, _ = sess.Get("flash_message").(string)
	if message != "" {
		sess.Delete("flash_level")
		sess.Delete("flash_message")
	}
	return level, message
}

// renderData merges branding, the authenticated user, and any pending flash
// message into the template data.
func renderData(c fiber.Ctx, cfg *config.Config, data fiber.Map) fiber.Map {
	data = MergeBranding(data, cfg)

	if user, ok := c.Locals("user").(*models.User); ok {
		data["User"] = user
	}

	if level, message := takeFlash(c); message != "" {
		data["FlashLevel"] = level
		data["FlashMessage"] = message
	}
	return data
}
