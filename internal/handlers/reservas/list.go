package reservas

import (
	"net/http"

	"github.com/20Magus03/back-express/internal/handlers/common"
	"github.com/gin-gonic/gin"
)

// List returns all reservations in creation order.
func (h *Handler) List(c *gin.Context) {
	all, err := h.reservas.List(c.Request.Context())
	if err != nil {
		common.ServerError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, all)
}

// Get returns a single reservation by id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		common.NotFound(c, msgNotFound)
		return
	}
	r, err := h.reservas.Get(c.Request.Context(), id)
	if err != nil {
		common.NotFound(c, msgNotFound)
		return
	}
	c.JSON(http.StatusOK, r)
}
