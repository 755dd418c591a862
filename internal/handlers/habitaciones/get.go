package habitaciones

import (
	"net/http"

	"github.com/20Magus03/back-express/internal/handlers/common"
	"github.com/20Magus03/back-express/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Get returns a single room by id.
// Any lookup failure is reported as not_found.
func (h *Handler) Get(c *gin.Context) {
	id, err := common.ParseID(c.Param("id"))
	if err != nil {
		common.BadRequest(c, msgInvalidID)
		return
	}

	r, err := h.rooms.Get(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			h.log.Warn("get room", zap.Int64("id", id), zap.Error(err))
		}
		common.NotFound(c, msgNotFound)
		return
	}
	c.JSON(http.StatusOK, r)
}
