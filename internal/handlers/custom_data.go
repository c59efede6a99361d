package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/contextdb/internal/models"
	"github.com/localnerve/contextdb/internal/services"
	"github.com/localnerve/contextdb/internal/utils"
)

// customDataBody is the request body for logging a custom data row. Value
// is kept raw; the column stores an opaque document.
type customDataBody struct {
	Category string          `json:"category"`
	Key      string          `json:"key"`
	Value    json.RawMessage `json:"value"`
}

// LogCustomData handles POST /api/data/:workspace/custom
func (h *DataHandler) LogCustomData(c *fiber.Ctx) error {
	var body customDataBody
	if err := c.BodyParser(&body); err != nil {
		return badBody(c, err)
	}

	row, err := services.LogCustomData(h.DB, workspaceID(c), services.CustomDataInput{
		Category: body.Category,
		Key:      body.Key,
		Value:    models.NewJSON(body.Value),
	})
	if err != nil {
		return serviceError(c, err, "logCustomData")
	}
	return utils.SuccessResponse(c, row, fiber.StatusCreated)
}

// GetCustomData handles GET /api/data/:workspace/custom?category=C&key=K&limit=N
func (h *DataHandler) GetCustomData(c *fiber.Ctx) error {
	rows, err := services.GetCustomData(h.DB, workspaceID(c), services.CustomDataFilter{
		Category: c.Query("category"),
		Key:      c.Query("key"),
		Limit:    limitQuery(c),
	})
	if err != nil {
		return serviceError(c, err, "getCustomData")
	}
	return utils.SuccessResponse(c, rows, fiber.StatusOK)
}

// DeleteCustomData handles DELETE /api/data/:workspace/custom/:id
func (h *DataHandler) DeleteCustomData(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.ErrorResponse(c, "invalid custom data id", fiber.StatusBadRequest, "param")
	}

	if err := services.DeleteCustomData(h.DB, workspaceID(c), id); err != nil {
		return serviceError(c, err, "deleteCustomData")
	}
	return utils.DeleteSuccessResponse(c)
}
