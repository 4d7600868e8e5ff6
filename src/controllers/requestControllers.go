package controllers

import (
	"net/http"

	"github.com/NicaExpressway/NicaExpressway-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type RequestController struct {
	service *services.RequestService
}

func NewRequestController(service *services.RequestService) *RequestController {
	return &RequestController{service: service}
}

// CreateRequest handles POST requests to store a customer request
func (c *RequestController) CreateRequest(ctx *gin.Context) {
	body, ok := bindBody(ctx)
	if !ok {
		return
	}
	created, err := c.service.CreateRequest(body)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// GetRequests handles GET /pedidos; ?id= returns a single request
func (c *RequestController) GetRequests(ctx *gin.Context) {
	if raw := ctx.Query("id"); raw != "" {
		c.getRequest(ctx, raw)
		return
	}
	requests, err := c.service.ListRequests(ctx.Query("nombre"), ctx.Query("telefono"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, requests)
}

// GetRequestByID handles GET /pedidos/:id
func (c *RequestController) GetRequestByID(ctx *gin.Context) {
	c.getRequest(ctx, ctx.Param("id"))
}

func (c *RequestController) getRequest(ctx *gin.Context, raw string) {
	id, ok := paramID(ctx, raw)
	if !ok {
		return
	}
	request, err := c.service.GetRequestByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, request)
}
