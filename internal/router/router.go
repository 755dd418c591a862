package router

import (
	"net/http"

	"github.com/20Magus03/back-express/internal/docs"
	"github.com/20Magus03/back-express/internal/handlers/common"
	"github.com/20Magus03/back-express/internal/handlers/habitaciones"
	"github.com/20Magus03/back-express/internal/handlers/reservas"
	"github.com/20Magus03/back-express/internal/middleware"
	"github.com/20Magus03/back-express/internal/store"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const docsIndex = "/api-docs/index.html"

// New builds the HTTP engine with both resources, health and API docs mounted.
func New(rooms store.RoomStore, res store.ReservationStore, log *zap.Logger) *gin.Engine {
	common.SetupValidator()

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(log), middleware.Recovery(log))

	roomH := habitaciones.New(rooms, log.Named("habitaciones"))
	resH := reservas.New(res)

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Rooms
	hab := r.Group("/habitaciones")
	{
		hab.GET("", roomH.List)
		hab.GET("/:id", roomH.Get)
		hab.POST("", roomH.Create)
		hab.PATCH("/:id", roomH.Update)
		hab.DELETE("/:id", roomH.Delete)
	}

	// Reservations
	rsv := r.Group("/reservas")
	{
		rsv.GET("", resH.List)
		rsv.GET("/:id", resH.Get)
		rsv.POST("", resH.Create)
		rsv.PUT("/:id", resH.Update)
		rsv.DELETE("/:id", resH.Delete)
	}

	// API docs
	swaggerUI := ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.InstanceName(docs.SwaggerInfo.InstanceName()))
	r.GET("/api-docs", func(c *gin.Context) { c.Redirect(http.StatusMovedPermanently, docsIndex) })
	r.GET("/api-docs/*any", func(c *gin.Context) {
		if c.Param("any") == "/" {
			c.Redirect(http.StatusMovedPermanently, docsIndex)
			return
		}
		swaggerUI(c)
	})

	r.NoRoute(func(c *gin.Context) { common.NotFound(c, "") })
	return r
}
