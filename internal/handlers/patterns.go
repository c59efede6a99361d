package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/contextdb/internal/services"
	"github.com/localnerve/contextdb/internal/types"
	"github.com/localnerve/contextdb/internal/utils"
)

// patternBody is the request body for logging a system pattern
type patternBody struct {
	Name        string                 `json:"name"`
	Description *string                `json:"description"`
	Tags        types.FlexList[string] `json:"tags"`
}

// LogSystemPattern handles POST /api/data/:workspace/patterns
func (h *DataHandler) LogSystemPattern(c *fiber.Ctx) error {
	var body patternBody
	if err := c.BodyParser(&body); err != nil {
		return badBody(c, err)
	}

	pattern, err := services.LogSystemPattern(h.DB, workspaceID(c), services.PatternInput{
		Name:        body.Name,
		Description: body.Description,
		Tags:        body.Tags.Slice(),
	})
	if err != nil {
		return serviceError(c, err, "logSystemPattern")
	}
	return utils.SuccessResponse(c, pattern, fiber.StatusCreated)
}

// GetSystemPatterns handles GET /api/data/:workspace/patterns?limit=N
func (h *DataHandler) GetSystemPatterns(c *fiber.Ctx) error {
	patterns, err := services.GetSystemPatterns(h.DB, workspaceID(c), limitQuery(c))
	if err != nil {
		return serviceError(c, err, "getSystemPatterns")
	}
	return utils.SuccessResponse(c, patterns, fiber.StatusOK)
}

// DeleteSystemPattern handles DELETE /api/data/:workspace/patterns/:id
func (h *DataHandler) DeleteSystemPattern(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.ErrorResponse(c, "invalid pattern id", fiber.StatusBadRequest, "param")
	}

	if err := services.DeleteSystemPattern(h.DB, workspaceID(c), id); err != nil {
		return serviceError(c, err, "deleteSystemPattern")
	}
	return utils.DeleteSuccessResponse(c)
}
