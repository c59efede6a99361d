package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/contextdb/internal/services"
	"github.com/localnerve/contextdb/internal/types"
	"github.com/localnerve/contextdb/internal/utils"
)

// progressBody is the request body for logging a progress entry. Ids accept
// a JSON number or string.
type progressBody struct {
	Status               string           `json:"status"`
	Description          string           `json:"description"`
	ParentID             *types.FlexInt64 `json:"parent_id"`
	LinkedItemType       *string          `json:"linked_item_type"`
	LinkedItemID         *string          `json:"linked_item_id"`
	LinkRelationshipType *string          `json:"link_relationship_type"`
}

// progressPatchBody is the request body for updating a progress entry. Nil
// fields are left unchanged.
type progressPatchBody struct {
	Status      *string          `json:"status"`
	Description *string          `json:"description"`
	ParentID    *types.FlexInt64 `json:"parent_id"`
}

// LogProgress handles POST /api/data/:workspace/progress
func (h *DataHandler) LogProgress(c *fiber.Ctx) error {
	var body progressBody
	if err := c.BodyParser(&body); err != nil {
		return badBody(c, err)
	}

	in := services.ProgressInput{
		Status:               body.Status,
		Description:          body.Description,
		LinkedItemType:       body.LinkedItemType,
		LinkedItemID:         body.LinkedItemID,
		LinkRelationshipType: body.LinkRelationshipType,
	}
	if body.ParentID != nil {
		in.ParentID = body.ParentID.Ptr()
	}

	entry, err := services.LogProgress(h.DB, workspaceID(c), in)
	if err != nil {
		return serviceError(c, err, "logProgress")
	}
	return utils.SuccessResponse(c, entry, fiber.StatusCreated)
}

// UpdateProgress handles PATCH /api/data/:workspace/progress/:id
func (h *DataHandler) UpdateProgress(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.ErrorResponse(c, "invalid progress id", fiber.StatusBadRequest, "param")
	}

	var body progressPatchBody
	if err := c.BodyParser(&body); err != nil {
		return badBody(c, err)
	}

	in := services.ProgressUpdate{
		Status:      body.Status,
		Description: body.Description,
	}
	if body.ParentID != nil {
		in.ParentID = body.ParentID.Ptr()
	}

	entry, err := services.UpdateProgress(h.DB, workspaceID(c), id, in)
	if err != nil {
		return serviceError(c, err, "updateProgress")
	}
	return utils.SuccessResponse(c, entry, fiber.StatusOK)
}

// GetProgress handles GET /api/data/:workspace/progress?status=S&parent_id=N&limit=N
func (h *DataHandler) GetProgress(c *fiber.Ctx) error {
	filter := services.ProgressFilter{
		Status: c.Query("status"),
		Limit:  limitQuery(c),
	}
	if parent := c.QueryInt("parent_id", -1); parent >= 0 {
		pid := int64(parent)
		filter.ParentID = &pid
	}

	entries, err := services.GetProgress(h.DB, workspaceID(c), filter)
	if err != nil {
		return serviceError(c, err, "getProgress")
	}
	return utils.SuccessResponse(c, entries, fiber.StatusOK)
}

// DeleteProgress handles DELETE /api/data/:workspace/progress/:id
func (h *DataHandler) DeleteProgress(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.ErrorResponse(c, "invalid progress id", fiber.StatusBadRequest, "param")
	}

	if err := services.DeleteProgress(h.DB, workspaceID(c), id); err != nil {
		return serviceError(c, err, "deleteProgress")
	}
	return utils.DeleteSuccessResponse(c)
}
