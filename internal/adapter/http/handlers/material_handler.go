package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "techassist/internal/adapter/http/dto/request"
	"techassist/internal/domain/entities"
	"techassist/internal/usecase"
	"techassist/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidMaterialPayload = pkg.NewDomainErrorSimple("INVALID_MATERIAL_INPUT", "Invalid material payload", http.StatusBadRequest)

type MaterialHandler struct {
	usecase usecase.IMaterialUseCase
}

func NewMaterialHandler(uc usecase.IMaterialUseCase) *MaterialHandler {
	return &MaterialHandler{usecase: uc}
}

func (h *MaterialHandler) CreateMaterial(c *gin.Context) {
	var payload request.CreateMaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMaterialPayload.HTTPStatus, errInvalidMaterialPayload.ToHTTPError())
		return
	}

	material, err := h.usecase.Create(c.Request.Context(), entities.Material{
		Name:         payload.Name,
		Description:  payload.Description,
		Category:     payload.Category,
		DefaultPrice: payload.DefaultPrice,
		Unit:         payload.Unit,
	})
	if err != nil {
		appErr := mapMaterialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, material)
}

func (h *MaterialHandler) GetMaterial(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(errInvalidMaterialPayload.HTTPStatus, errInvalidMaterialPayload.ToHTTPError())
		return
	}

	material, err := h.usecase.Get(c.Request.Context(), id)
	if err != nil {
		appErr := mapMaterialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, material)
}

func (h *MaterialHandler) ListMaterials(c *gin.Context) {
	materials, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapMaterialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, materials)
}

func mapMaterialError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMaterial):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMaterialNotFound):
		return pkg.NewDomainErrorSimple("MATERIAL_NOT_FOUND", "Material not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
