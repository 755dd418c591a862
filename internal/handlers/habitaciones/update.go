package habitaciones

import (
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/20Magus03/back-express/internal/handlers/common"
	"github.com/20Magus03/back-express/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Update partially modifies a room.
// Allowed fields: num_habi, tipo, capacidad, precio, estado. Only the
// supplied fields change; unknown keys are ignored.
func (h *Handler) Update(c *gin.Context) {
	id, err := common.ParseID(c.Param("id"))
	if err != nil {
		common.BadRequest(c, msgInvalidID)
		return
	}

	// Accept a generic map so that a missing key and a zero value differ
	var in map[string]any
	if err := c.ShouldBindJSON(&in); err != nil {
		common.BadRequest(c, "El cuerpo de la petición debe ser un objeto JSON.")
		return
	}

	ctx := c.Request.Context()
	if _, err := h.rooms.Get(ctx, id); err != nil {
		common.NotFound(c, msgNotFound+".")
		return
	}

	p, msg := parsePatch(in)
	if msg != "" {
		common.BadRequest(c, msg)
		return
	}
	if p.Empty() {
		common.BadRequest(c, "Debe proporcionar al menos un campo válido para actualizar.")
		return
	}

	r, err := h.rooms.Update(ctx, id, p)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateNumber):
			common.Conflict(c, "El número de habitación ya existe.")
		case errors.Is(err, store.ErrNotFound):
			common.NotFound(c, msgNotFound+".")
		default:
			h.log.Error("update room", zap.Int64("id", id), zap.Error(err))
			common.ServerError(c, "Error al actualizar los datos, verifique los datos!")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Habitación actualizada correctamente.",
		"habitacion": r,
	})
}

// parsePatch validates each supplied field and returns the resulting patch,
// or a message naming the first offending field.
func parsePatch(in map[string]any) (store.RoomPatch, string) {
	var p store.RoomPatch

	if v, ok := in["num_habi"]; ok {
		n, msg := positiveInt(v, "El número de habitación")
		if msg != "" {
			return p, msg
		}
		p.NumHabi = &n
	}

	if v, ok := in["tipo"]; ok {
		s, ok := v.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return p, "El tipo de habitación no puede estar vacío."
		}
		p.Tipo = &s
	}

	if v, ok := in["capacidad"]; ok {
		n, msg := positiveInt(v, "La capacidad")
		if msg != "" {
			return p, msg
		}
		p.Capacidad = &n
	}

	if v, ok := in["precio"]; ok {
		n, msg := positiveInt(v, "El precio")
		if msg != "" {
			return p, msg
		}
		p.Precio = &n
	}

	if v, ok := in["estado"]; ok {
		b, ok := v.(bool)
		if !ok {
			return p, "El estado debe ser un valor booleano (true o false)."
		}
		p.Estado = &b
	}

	return p, ""
}

// positiveInt accepts whole JSON numbers in (0, MaxInt32]. On failure it
// returns a message about label.
func positiveInt(v any, label string) (int, string) {
	f, ok := v.(float64)
	if !ok || f <= 0 || f != math.Trunc(f) {
		return 0, label + " debe ser un número mayor que 0."
	}
	if f > math.MaxInt32 {
		return 0, fmt.Sprintf("%s no puede ser mayor que %d.", label, math.MaxInt32)
	}
	return int(f), ""
}
