package navigation

import (
	"godiya-emr-backend/internal/auth"

	"github.com/gofiber/fiber/v2"
)

// -------------------------------------------------
// GET /api/navigation
// -------------------------------------------------
func SidebarHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := auth.SessionFromContext(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "No active session")
		}

		return c.JSON(fiber.Map{
			"role":           session.Role,
			"dashboard_path": DashboardPathFor(session.Role),
			"sections":       NavigationFor(session.Role),
		})
	}
}

// -------------------------------------------------
// GET /api/navigation/breadcrumbs?path=/emr/reception/patients
// -------------------------------------------------
func BreadcrumbsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Query("path")
		if path == "" {
			return fiber.NewError(fiber.StatusBadRequest, "path query parameter is required")
		}

		return c.JSON(fiber.Map{
			"path":   path,
			"crumbs": BreadcrumbsFor(path),
		})
	}
}
