package routes

import (
	"github.com/NicaExpressway/NicaExpressway-Backend/src/controllers"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupPasswordRoutes(router *gin.Engine, service *services.PasswordService) {
	passwordController := controllers.NewPasswordController(service)

	router.POST("/passwords-check", passwordController.CheckPassword)
}
