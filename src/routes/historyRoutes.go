package routes

import (
	"github.com/NicaExpressway/NicaExpressway-Backend/src/controllers"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupHistoryRoutes(router *gin.Engine, service *services.HistoryService) {
	historyController := controllers.NewHistoryController(service)

	router.GET("/historial", historyController.GetHistory)
}
