package routes

import (
	"github.com/NicaExpressway/NicaExpressway-Backend/src/controllers"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/middleware"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupPackageRoutes(router *gin.Engine, gate *middleware.Gate, service *services.PackageService, export *services.ExportService) {
	packageController := controllers.NewPackageController(service, export)

	packages := router.Group("/paquetes")
	{
		packages.GET("", packageController.GetPackages)
		packages.GET("/:id", packageController.GetPackageByID)
		packages.POST("/search", packageController.SearchPackages)
	}

	// Protected routes
	protected := router.Group("/paquetes")
	protected.Use(gate.RequireKey())
	{
		protected.POST("", packageController.CreatePackage)
		protected.PUT("/:codigo", packageController.UpdatePackage)
		protected.PATCH("/:codigo", packageController.UpdatePackage)
		protected.GET("/export", packageController.ExportPackages)
	}
}
