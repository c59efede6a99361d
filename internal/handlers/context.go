package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/contextdb/internal/models"
	"github.com/localnerve/contextdb/internal/services"
	"github.com/localnerve/contextdb/internal/utils"
)

// contextBody is the request body for context replacement. Content is kept
// raw: the column is an opaque document and no shape is imposed here.
type contextBody struct {
	Content json.RawMessage `json:"content"`
}

// GetProductContext handles GET /api/data/:workspace/context/product
func (h *DataHandler) GetProductContext(c *fiber.Ctx) error {
	ctx, err := services.GetProductContext(h.DB, workspaceID(c))
	if err != nil {
		return serviceError(c, err, "getProductContext")
	}
	return utils.SuccessResponse(c, ctx, fiber.StatusOK)
}

// PutProductContext handles PUT /api/data/:workspace/context/product
func (h *DataHandler) PutProductContext(c *fiber.Ctx) error {
	var body contextBody
	if err := c.BodyParser(&body); err != nil {
		return badBody(c, err)
	}

	ctx, err := services.UpsertProductContext(h.DB, workspaceID(c), models.NewJSON(body.Content))
	if err != nil {
		return serviceError(c, err, "putProductContext")
	}
	return utils.SuccessResponse(c, ctx, fiber.StatusOK)
}

// GetActiveContext handles GET /api/data/:workspace/context/active
func (h *DataHandler) GetActiveContext(c *fiber.Ctx) error {
	ctx, err := services.GetActiveContext(h.DB, workspaceID(c))
	if err != nil {
		return serviceError(c, err, "getActiveContext")
	}
	return utils.SuccessResponse(c, ctx, fiber.StatusOK)
}

// PutActiveContext handles PUT /api/data/:workspace/context/active
func (h *DataHandler) PutActiveContext(c *fiber.Ctx) error {
	var body contextBody
	if err := c.BodyParser(&body); err != nil {
		return badBody(c, err)
	}

	ctx, err := services.UpsertActiveContext(h.DB, workspaceID(c), models.NewJSON(body.Content))
	if err != nil {
		return serviceError(c, err, "putActiveContext")
	}
	return utils.SuccessResponse(c, ctx, fiber.StatusOK)
}
