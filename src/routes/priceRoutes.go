package routes

import (
	"github.com/NicaExpressway/NicaExpressway-Backend/src/controllers"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/middleware"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupPriceRoutes(router *gin.Engine, gate *middleware.Gate, service *services.PriceService) {
	priceController := controllers.NewPriceController(service)

	router.GET("/prices", priceController.GetPrices)
	router.POST("/prices", gate.RequireKey(), priceController.UpdatePrice)
}
