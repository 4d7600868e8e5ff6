package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/NicaExpressway/NicaExpressway-Backend/src/models"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type PasswordController struct {
	service *services.PasswordService
}

func NewPasswordController(service *services.PasswordService) *PasswordController {
	return &PasswordController{service: service}
}

// CheckPassword handles POST /passwords-check
func (c *PasswordController) CheckPassword(ctx *gin.Context) {
	var req models.PasswordCheckRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	resp, err := c.service.CheckPassword(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
