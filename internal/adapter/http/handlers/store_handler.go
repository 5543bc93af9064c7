package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "techassist/internal/adapter/http/dto/request"
	response "techassist/internal/adapter/http/dto/response"
	"techassist/internal/domain/entities"
	"techassist/internal/usecase"
	"techassist/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidStoreQuery = pkg.NewDomainErrorSimple("INVALID_STORE_QUERY", "Invalid store search query", http.StatusBadRequest)

// StoreHandler handles part search across hardware stores.
type StoreHandler struct {
	usecase usecase.IPartSearchUseCase
}

func NewStoreHandler(uc usecase.IPartSearchUseCase) *StoreHandler {
	return &StoreHandler{usecase: uc}
}

// SearchStores matches the query against every store's catalog. Zero
// matches is a 200 with an empty array, not an error.
func (h *StoreHandler) SearchStores(c *gin.Context) {
	results, err := h.usecase.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		appErr := mapStoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, results)
}

// SearchStoresByImage is the two-stage image search: the vision provider
// turns the image into a query string, then the query runs through the same
// search as typed input.
func (h *StoreHandler) SearchStoresByImage(c *gin.Context) {
	var payload request.ImageSearchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStoreQuery.HTTPStatus, errInvalidStoreQuery.ToHTTPError())
		return
	}

	query, results, err := h.usecase.SearchByImage(c.Request.Context(), payload.ImageData)
	if err != nil {
		appErr := mapStoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ImageSearchResponse{Query: query, Results: results})
}

// IdentifyParts is the job-scoped variant of image search; the job id is
// accepted for request routing and audit, the search itself is job-agnostic.
func (h *StoreHandler) IdentifyParts(c *gin.Context) {
	if _, err := strconv.ParseInt(c.Param("id"), 10, 64); err != nil {
		c.JSON(errInvalidStoreQuery.HTTPStatus, errInvalidStoreQuery.ToHTTPError())
		return
	}

	var payload request.ImageSearchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStoreQuery.HTTPStatus, errInvalidStoreQuery.ToHTTPError())
		return
	}

	query, results, err := h.usecase.SearchByImage(c.Request.Context(), payload.ImageData)
	if err != nil {
		appErr := mapStoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ImageSearchResponse{Query: query, Results: results})
}

// AddPartToEstimate creates exactly one material line from a store search
// result, carrying the store name as storeSource.
func (h *StoreHandler) AddPartToEstimate(c *gin.Context) {
	var payload request.AddPartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStoreQuery.HTTPStatus, errInvalidStoreQuery.ToHTTPError())
		return
	}

	item, err := h.usecase.AddPartToEstimate(c.Request.Context(), payload.JobID, entities.StorePart{
		ID:    payload.MaterialID,
		Name:  payload.Name,
		Price: payload.UnitPrice,
	}, payload.StoreSource)
	if err != nil {
		appErr := mapStoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, item)
}

func mapStoreError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuery):
		return pkg.NewDomainErrorSimple("INVALID_QUERY", "Search query is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidImage), errors.Is(err, usecase.ErrInvalidPart), errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
