package habitaciones

import (
	"net/http"

	"github.com/20Magus03/back-express/internal/handlers/common"
	"github.com/20Magus03/back-express/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Delete removes a room by id.
// KISS flow:
// 1) Validate id
// 2) Ensure the room exists
// 3) Delete and answer 204 with no body
func (h *Handler) Delete(c *gin.Context) {
	id, err := common.ParseID(c.Param("id"))
	if err != nil {
		common.BadRequest(c, msgInvalidID)
		return
	}

	ctx := c.Request.Context()
	if _, err := h.rooms.Get(ctx, id); err != nil {
		common.NotFound(c, msgNotFound)
		return
	}

	if err := h.rooms.Delete(ctx, id); err != nil {
		// Removed by a concurrent request between the check and the delete.
		if errors.Is(err, store.ErrNotFound) {
			common.NotFound(c, msgNotFound)
			return
		}
		h.log.Error("delete room", zap.Int64("id", id), zap.Error(err))
		common.ServerError(c, err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
