package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/contextdb/internal/services"
	"github.com/localnerve/contextdb/internal/types"
	"github.com/localnerve/contextdb/internal/utils"
)

// decisionBody is the request body for logging a decision. Tags accept a
// single string or an array.
type decisionBody struct {
	Summary               string                 `json:"summary"`
	Rationale             *string                `json:"rationale"`
	ImplementationDetails *string                `json:"implementation_details"`
	Tags                  types.FlexList[string] `json:"tags"`
}

// LogDecision handles POST /api/data/:workspace/decisions
func (h *DataHandler) LogDecision(c *fiber.Ctx) error {
	var body decisionBody
	if err := c.BodyParser(&body); err != nil {
		return badBody(c, err)
	}

	decision, err := services.LogDecision(h.DB, workspaceID(c), services.DecisionInput{
		Summary:               body.Summary,
		Rationale:             body.Rationale,
		ImplementationDetails: body.ImplementationDetails,
		Tags:                  body.Tags.Slice(),
	})
	if err != nil {
		return serviceError(c, err, "logDecision")
	}
	return utils.SuccessResponse(c, decision, fiber.StatusCreated)
}

// GetDecisions handles GET /api/data/:workspace/decisions?limit=N
func (h *DataHandler) GetDecisions(c *fiber.Ctx) error {
	decisions, err := services.GetDecisions(h.DB, workspaceID(c), limitQuery(c))
	if err != nil {
		return serviceError(c, err, "getDecisions")
	}
	return utils.SuccessResponse(c, decisions, fiber.StatusOK)
}

// GetDecision handles GET /api/data/:workspace/decisions/:id
func (h *DataHandler) GetDecision(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.ErrorResponse(c, "invalid decision id", fiber.StatusBadRequest, "param")
	}

	decision, err := services.GetDecision(h.DB, workspaceID(c), id)
	if err != nil {
		return serviceError(c, err, "getDecision")
	}
	return utils.SuccessResponse(c, decision, fiber.StatusOK)
}

// DeleteDecision handles DELETE /api/data/:workspace/decisions/:id
func (h *DataHandler) DeleteDecision(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.ErrorResponse(c, "invalid decision id", fiber.StatusBadRequest, "param")
	}

	if err := services.DeleteDecision(h.DB, workspaceID(c), id); err != nil {
		return serviceError(c, err, "deleteDecision")
	}
	return utils.DeleteSuccessResponse(c)
}
