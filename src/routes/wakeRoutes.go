package routes

import (
	"net/http"

	"github.com/NicaExpressway/NicaExpressway-Backend/src/utils"
	"github.com/gin-gonic/gin"
)

// SetupWakeRoutes registers the keep-alive ping used by the hosting platform
func SetupWakeRoutes(router *gin.Engine) {
	router.GET("/wake", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"ok": true, "timestamp": utils.Clock().UnixMilli()})
	})
}
