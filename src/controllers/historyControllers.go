package controllers

import (
	"net/http"

	"github.com/NicaExpressway/NicaExpressway-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type HistoryController struct {
	service *services.HistoryService
}

func NewHistoryController(service *services.HistoryService) *HistoryController {
	return &HistoryController{service: service}
}

// GetHistory handles GET /historial?codigo=
func (c *HistoryController) GetHistory(ctx *gin.Context) {
	history, err := c.service.GetHistory(ctx.Query("codigo"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, history)
}
