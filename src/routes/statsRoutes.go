package routes

import (
	"github.com/NicaExpressway/NicaExpressway-Backend/src/controllers"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupStatsRoutes(router *gin.Engine, service *services.StatsService) {
	statsController := controllers.NewStatsController(service)

	router.GET("/stats", statsController.GetStats)
}
