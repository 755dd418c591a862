package reservas

import (
	"net/http"

	"github.com/20Magus03/back-express/internal/handlers/common"
	"github.com/20Magus03/back-express/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Delete removes a reservation by id.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		common.NotFound(c, msgNotFound)
		return
	}

	if err := h.reservas.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			common.NotFound(c, msgNotFound)
			return
		}
		common.ServerError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reserva eliminada"})
}
