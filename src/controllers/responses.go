package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/NicaExpressway/NicaExpressway-Backend/src/services"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondError writes err as a JSON error body with the status of its kind
func respondError(ctx *gin.Context, err error) {
	_ = ctx.Error(err)

	var appErr *services.AppError
	if errors.As(err, &appErr) {
		body := gin.H{"error": appErr.Message}
		if appErr.Err != nil && appErr.Kind == services.KindStorage {
			body["message"] = appErr.Err.Error()
		}
		ctx.JSON(appErr.Status(), body)
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No encontrado"})
		return
	}
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
}

// bindBody decodes a JSON object body. An empty body is an empty object.
func bindBody(ctx *gin.Context) (utils.Body, bool) {
	body := utils.Body{}
	if err := ctx.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body", "message": err.Error()})
		return nil, false
	}
	return body, true
}

func paramID(ctx *gin.Context, raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return id, true
}
