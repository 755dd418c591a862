package habitaciones

import (
	"net/http"

	"github.com/20Magus03/back-express/internal/handlers/common"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// List returns every room.
// An empty table is reported as 404 rather than an empty array.
func (h *Handler) List(c *gin.Context) {
	rooms, err := h.rooms.List(c.Request.Context())
	if err != nil {
		h.log.Error("list rooms", zap.Error(err))
		common.ServerError(c, err.Error())
		return
	}
	if len(rooms) == 0 {
		common.NotFound(c, "No hay habitaciones registradas")
		return
	}
	c.JSON(http.StatusOK, rooms)
}
