package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/NicaExpressway/NicaExpressway-Backend/src/services"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/utils"
	"github.com/gin-gonic/gin"
)

type PackageController struct {
	service *services.PackageService
	export  *services.ExportService
}

func NewPackageController(service *services.PackageService, export *services.ExportService) *PackageController {
	return &PackageController{service: service, export: export}
}

// CreatePackage handles POST requests to register a received package
func (c *PackageController) CreatePackage(ctx *gin.Context) {
	body, ok := bindBody(ctx)
	if !ok {
		return
	}
	pkg, err := c.service.PackageFromBody(body)
	if err != nil {
		respondError(ctx, err)
		return
	}
	created, err := c.service.CreatePackage(pkg)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// GetPackages handles GET requests to list packages, optionally by ?codigo=
func (c *PackageController) GetPackages(ctx *gin.Context) {
	packages, err := c.service.ListPackages(ctx.Query("codigo"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, packages)
}

// GetPackageByID handles GET requests to retrieve a package by its ID
func (c *PackageController) GetPackageByID(ctx *gin.Context) {
	id, ok := paramID(ctx, ctx.Param("id"))
	if !ok {
		return
	}
	pkg, err := c.service.GetPackageByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pkg)
}

// UpdatePackage handles PUT and PATCH requests on /paquetes/:codigo
func (c *PackageController) UpdatePackage(ctx *gin.Context) {
	body, ok := bindBody(ctx)
	if !ok {
		return
	}
	result, err := c.service.UpdatePackage(ctx.Param("codigo"), body)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// SearchPackages handles POST /paquetes/search
func (c *PackageController) SearchPackages(ctx *gin.Context) {
	body, ok := bindBody(ctx)
	if !ok {
		return
	}
	packages, err := c.service.SearchPackages(services.SearchQueryFromBody(body))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, packages)
}

// ExportPackages handles GET /paquetes/export and streams an xlsx workbook
func (c *PackageController) ExportPackages(ctx *gin.Context) {
	var buf bytes.Buffer
	if err := c.export.ExportPackages(&buf, ctx.Query("filter")); err != nil {
		respondError(ctx, err)
		return
	}
	filename := fmt.Sprintf("paquetes-%s.xlsx", utils.Clock().Format(utils.DateLayout))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
