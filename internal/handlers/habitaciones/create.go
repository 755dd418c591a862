package habitaciones

import (
	"net/http"

	"github.com/20Magus03/back-express/internal/handlers/common"
	"github.com/20Magus03/back-express/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// createRequest mirrors store.Room without the id. Pointers distinguish a
// missing field from a zero value; estado=false is valid. Numbers are capped
// at the int32 range of the backing columns.
type createRequest struct {
	NumHabi   *int    `json:"num_habi" binding:"required,gt=0,lte=2147483647"`
	Tipo      *string `json:"tipo" binding:"required,notblank"`
	Capacidad *int    `json:"capacidad" binding:"required,gt=0,lte=2147483647"`
	Precio    *int    `json:"precio" binding:"required,gt=0,lte=2147483647"`
	Estado    *bool   `json:"estado" binding:"required"`
}

// Create registers a new room.
// Room number uniqueness is enforced by the store: a duplicate yields 409.
func (h *Handler) Create(c *gin.Context) {
	var in createRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		common.InvalidFields(c, "Todos los campos son obligatorios y con valores válidos.", err)
		return
	}

	r, err := h.rooms.Create(c.Request.Context(), store.Room{
		NumHabi:   *in.NumHabi,
		Tipo:      *in.Tipo,
		Capacidad: *in.Capacidad,
		Precio:    *in.Precio,
		Estado:    *in.Estado,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateNumber) {
			common.Conflict(c, "El número de habitación ya existe.")
			return
		}
		h.log.Error("create room", zap.Int("num_habi", *in.NumHabi), zap.Error(err))
		common.ServerError(c, "Error interno.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Habitación creada exitosamente",
		"habitacion": r,
	})
}
