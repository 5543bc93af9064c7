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

var errInvalidPhotoPayload = pkg.NewDomainErrorSimple("INVALID_PHOTO_INPUT", "Invalid photo payload", http.StatusBadRequest)

// PhotoHandler handles job-site photo capture and AI analysis.
type PhotoHandler struct {
	usecase usecase.IAnnotationUseCase
}

func NewPhotoHandler(uc usecase.IAnnotationUseCase) *PhotoHandler {
	return &PhotoHandler{usecase: uc}
}

func (h *PhotoHandler) CreatePhoto(c *gin.Context) {
	var payload request.CreatePhotoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPhotoPayload.HTTPStatus, errInvalidPhotoPayload.ToHTTPError())
		return
	}

	photo, err := h.usecase.CreatePhoto(c.Request.Context(), entities.Photo{
		JobID:       payload.JobID,
		Caption:     payload.Caption,
		DataURL:     payload.DataURL,
		BeforePhoto: payload.BeforePhoto,
	})
	if err != nil {
		appErr := mapAnnotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, photo)
}

func (h *PhotoHandler) ListPhotosByJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(errInvalidPhotoPayload.HTTPStatus, errInvalidPhotoPayload.ToHTTPError())
		return
	}

	photos, err := h.usecase.ListPhotosByJob(c.Request.Context(), jobID)
	if err != nil {
		appErr := mapAnnotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, photos)
}

// AnalyzePhoto runs the vision provider over a stored photo and persists the
// result. Provider failures fall back to a canned analysis, so this route
// never returns a 5xx for an unavailable provider.
func (h *PhotoHandler) AnalyzePhoto(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(errInvalidPhotoPayload.HTTPStatus, errInvalidPhotoPayload.ToHTTPError())
		return
	}

	photo, err := h.usecase.AnalyzePhoto(c.Request.Context(), id)
	if err != nil {
		appErr := mapAnnotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, photo)
}

func mapAnnotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPhoto), errors.Is(err, usecase.ErrInvalidNote), errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPhotoNotFound):
		return pkg.NewDomainErrorSimple("PHOTO_NOT_FOUND", "Photo not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoteNotFound):
		return pkg.NewDomainErrorSimple("NOTE_NOT_FOUND", "Note not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
