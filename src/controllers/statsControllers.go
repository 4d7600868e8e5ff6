package controllers

import (
	"net/http"

	"github.com/NicaExpressway/NicaExpressway-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type StatsController struct {
	service *services.StatsService
}

func NewStatsController(service *services.StatsService) *StatsController {
	return &StatsController{service: service}
}

// GetStats handles GET /stats?filter=aereo|maritimo|general
func (c *StatsController) GetStats(ctx *gin.Context) {
	stats, err := c.service.GetStats(ctx.DefaultQuery("filter", "general"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
