package routes

import (
	"github.com/NicaExpressway/NicaExpressway-Backend/src/controllers"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupRequestRoutes(router *gin.Engine, service *services.RequestService) {
	requestController := controllers.NewRequestController(service)

	requests := router.Group("/pedidos")
	{
		requests.GET("", requestController.GetRequests)
		requests.GET("/:id", requestController.GetRequestByID)
		requests.POST("", requestController.CreateRequest)
	}
}
