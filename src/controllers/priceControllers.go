package controllers

import (
	"net/http"

	"github.com/NicaExpressway/NicaExpressway-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type PriceController struct {
	service *services.PriceService
}

func NewPriceController(service *services.PriceService) *PriceController {
	return &PriceController{service: service}
}

// GetPrices handles GET /prices
func (c *PriceController) GetPrices(ctx *gin.Context) {
	prices, err := c.service.GetPrices()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, prices)
}

// UpdatePrice handles POST /prices
func (c *PriceController) UpdatePrice(ctx *gin.Context) {
	body, ok := bindBody(ctx)
	if !ok {
		return
	}
	prices, err := c.service.UpdatePrice(body)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "prices": prices})
}
