package middleware

import (
	"net/url"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/contextdb/internal/models"
	"github.com/localnerve/contextdb/internal/utils"
)

// WorkspaceMiddleware validates the :workspace route parameter and stores
// the decoded identifier in context. Workspace ids are often filesystem
// paths, so they arrive URL-encoded.
func WorkspaceMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params("workspace")
		workspace, err := url.PathUnescape(raw)
		if err != nil {
			workspace = raw
		}

		if workspace == "" {
			return utils.ErrorResponse(c, "workspace identifier is required", fiber.StatusBadRequest, "workspace")
		}
		if utf8.RuneCountInString(workspace) > models.MaxWorkspaceIDLen {
			return utils.ErrorResponse(c, "workspace identifier exceeds maximum length", fiber.StatusBadRequest, "workspace")
		}

		c.Locals("workspaceID", workspace)
		return c.Next()
	}
}
