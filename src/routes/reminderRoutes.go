package routes

import (
	"github.com/NicaExpressway/NicaExpressway-Backend/src/controllers"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/middleware"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupReminderRoutes(router *gin.Engine, gate *middleware.Gate, service *services.ReminderService) {
	reminderController := controllers.NewReminderController(service)

	reminders := router.Group("/recordatorios")
	{
		reminders.GET("", reminderController.GetReminders)
		reminders.GET("/:id", reminderController.GetReminderByID)
	}

	// Protected routes
	protected := router.Group("/recordatorios")
	protected.Use(gate.RequireKey())
	{
		protected.POST("", reminderController.CreateReminder)
		protected.DELETE("", reminderController.DeleteReminder)
		protected.DELETE("/:id", reminderController.DeleteReminder)
	}
}
