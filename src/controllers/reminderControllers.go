package controllers

import (
	"net/http"
	"strings"

	"github.com/NicaExpressway/NicaExpressway-Backend/src/services"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/utils"
	"github.com/gin-gonic/gin"
)

type ReminderController struct {
	service *services.ReminderService
}

func NewReminderController(service *services.ReminderService) *ReminderController {
	return &ReminderController{service: service}
}

// CreateReminder handles POST requests to create a reminder
func (c *ReminderController) CreateReminder(ctx *gin.Context) {
	body, ok := bindBody(ctx)
	if !ok {
		return
	}
	created, err := c.service.CreateReminder(body)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// GetReminders handles GET requests to list reminders by due date
func (c *ReminderController) GetReminders(ctx *gin.Context) {
	reminders, err := c.service.ListReminders()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reminders)
}

// GetReminderByID handles GET /recordatorios/:id
func (c *ReminderController) GetReminderByID(ctx *gin.Context) {
	id, ok := paramID(ctx, ctx.Param("id"))
	if !ok {
		return
	}
	reminder, err := c.service.GetReminderByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reminder)
}

// DeleteReminder handles DELETE requests. The id is taken from the path,
// then ?id=, then an "id" field in the body.
func (c *ReminderController) DeleteReminder(ctx *gin.Context) {
	raw := strings.TrimSpace(ctx.Param("id"))
	if raw == "" {
		raw = strings.TrimSpace(ctx.Query("id"))
	}
	if raw == "" {
		body, ok := bindBody(ctx)
		if !ok {
			return
		}
		if v := utils.FirstString(body, utils.Aliases{"id"}); v != nil {
			raw = strings.TrimSpace(*v)
		}
	}
	if raw == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id required"})
		return
	}

	id, ok := paramID(ctx, raw)
	if !ok {
		return
	}
	if err := c.service.DeleteReminder(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
