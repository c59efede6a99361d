package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/contextdb/internal/services"
	"github.com/localnerve/contextdb/internal/utils"
)

// linkBody is the request body for creating a link
type linkBody struct {
	SourceItemType   string  `json:"source_item_type"`
	SourceItemID     string  `json:"source_item_id"`
	TargetItemType   string  `json:"target_item_type"`
	TargetItemID     string  `json:"target_item_id"`
	RelationshipType string  `json:"relationship_type"`
	Description      *string `json:"description"`
}

// CreateLink handles POST /api/data/:workspace/links
func (h *DataHandler) CreateLink(c *fiber.Ctx) error {
	var body linkBody
	if err := c.BodyParser(&body); err != nil {
		return badBody(c, err)
	}

	link, err := services.CreateLink(h.DB, workspaceID(c), services.LinkInput{
		SourceItemType:   body.SourceItemType,
		SourceItemID:     body.SourceItemID,
		TargetItemType:   body.TargetItemType,
		TargetItemID:     body.TargetItemID,
		RelationshipType: body.RelationshipType,
		Description:      body.Description,
	})
	if err != nil {
		return serviceError(c, err, "createLink")
	}
	return utils.SuccessResponse(c, link, fiber.StatusCreated)
}

// GetLinks handles GET /api/data/:workspace/links. With item_type and
// item_id query parameters the listing narrows to links touching that item
// in either direction.
func (h *DataHandler) GetLinks(c *fiber.Ctx) error {
	itemType := c.Query("item_type")
	itemID := c.Query("item_id")

	if itemType != "" || itemID != "" {
		links, err := services.GetLinksForItem(h.DB, workspaceID(c), itemType, itemID)
		if err != nil {
			return serviceError(c, err, "getLinksForItem")
		}
		return utils.SuccessResponse(c, links, fiber.StatusOK)
	}

	links, err := services.GetLinks(h.DB, workspaceID(c), limitQuery(c))
	if err != nil {
		return serviceError(c, err, "getLinks")
	}
	return utils.SuccessResponse(c, links, fiber.StatusOK)
}

// DeleteLink handles DELETE /api/data/:workspace/links/:id
func (h *DataHandler) DeleteLink(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.ErrorResponse(c, "invalid link id", fiber.StatusBadRequest, "param")
	}

	if err := services.DeleteLink(h.DB, workspaceID(c), id); err != nil {
		return serviceError(c, err, "deleteLink")
	}
	return utils.DeleteSuccessResponse(c)
}
