package reservas

import (
	"net/http"

	"github.com/20Magus03/back-express/internal/handlers/common"
	"github.com/20Magus03/back-express/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Update replaces nombre, fecha and personas of an existing reservation.
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		common.NotFound(c, msgNotFound)
		return
	}

	var in request
	if err := c.ShouldBindJSON(&in); err != nil {
		common.InvalidFields(c, "nombre, fecha y personas son obligatorios.", err)
		return
	}

	r, err := h.reservas.Update(c.Request.Context(), id, in.reservation())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			common.NotFound(c, msgNotFound)
			return
		}
		common.ServerError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, r)
}
