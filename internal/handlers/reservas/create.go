package reservas

import (
	"net/http"

	"github.com/20Magus03/back-express/internal/handlers/common"
	"github.com/gin-gonic/gin"
)

// Create stores a new reservation and returns it with its assigned id.
func (h *Handler) Create(c *gin.Context) {
	var in request
	if err := c.ShouldBindJSON(&in); err != nil {
		common.InvalidFields(c, "nombre, fecha y personas son obligatorios.", err)
		return
	}

	r, err := h.reservas.Create(c.Request.Context(), in.reservation())
	if err != nil {
		common.ServerError(c, err.Error())
		return
	}
	c.JSON(http.StatusCreated, r)
}
