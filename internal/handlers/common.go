// common.go
//
// A scalable, high performance workspace knowledge store and schema toolkit
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of contextdb.
// contextdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// contextdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with contextdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/contextdb/internal/services"
	"github.com/localnerve/contextdb/internal/types"
	"github.com/localnerve/contextdb/internal/utils"
	"gorm.io/gorm"
)

// DataHandler handles workspace data routes
type DataHandler struct {
	DB *gorm.DB
}

// workspaceID returns the decoded workspace identifier stored by the
// workspace middleware.
func workspaceID(c *fiber.Ctx) string {
	ws, _ := c.Locals("workspaceID").(string)
	return ws
}

// idParam parses the :id route parameter
func idParam(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// limitQuery parses the optional limit query parameter; 0 means unlimited
func limitQuery(c *fiber.Ctx) int {
	return c.QueryInt("limit", 0)
}

// serviceError maps a service failure onto the standard response envelope.
// Validation failures are the caller's fault; everything else surfaces the
// underlying error untranslated.
func serviceError(c *fiber.Ctx, err error, op string) error {
	var ve *types.ValidationError
	switch {
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundResponse(c, "Resource not found")
	case errors.As(err, &ve):
		return utils.ErrorResponse(c, ve.Error(), fiber.StatusBadRequest, "validation")
	}
	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, op)
}

// badBody reports an unparseable request body
func badBody(c *fiber.Ctx, err error) error {
	return utils.ErrorResponse(c, "invalid request body: "+err.Error(), fiber.StatusBadRequest, "body")
}
