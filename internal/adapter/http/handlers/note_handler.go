package handlers

import (
	"net/http"
	"strconv"

	request "techassist/internal/adapter/http/dto/request"
	"techassist/internal/domain/entities"
	"techassist/internal/usecase"
	"techassist/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidNotePayload = pkg.NewDomainErrorSimple("INVALID_NOTE_INPUT", "Invalid note payload", http.StatusBadRequest)

type NoteHandler struct {
	usecase usecase.IAnnotationUseCase
}

func NewNoteHandler(uc usecase.IAnnotationUseCase) *NoteHandler {
	return &NoteHandler{usecase: uc}
}

func (h *NoteHandler) CreateNote(c *gin.Context) {
	var payload request.CreateNoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNotePayload.HTTPStatus, errInvalidNotePayload.ToHTTPError())
		return
	}

	note, err := h.usecase.CreateNote(c.Request.Context(), entities.Note{
		JobID:        payload.JobID,
		Content:      payload.Content,
		TechnicianID: payload.TechnicianID,
	})
	if err != nil {
		appErr := mapAnnotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, note)
}

func (h *NoteHandler) ListNotesByJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(errInvalidNotePayload.HTTPStatus, errInvalidNotePayload.ToHTTPError())
		return
	}

	notes, err := h.usecase.ListNotesByJob(c.Request.Context(), jobID)
	if err != nil {
		appErr := mapAnnotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, notes)
}

// EnhanceNote rewrites a note into a customer-facing report. When the text
// provider is down the original content is kept, so the route still returns
// 200 with the note unchanged.
func (h *NoteHandler) EnhanceNote(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(errInvalidNotePayload.HTTPStatus, errInvalidNotePayload.ToHTTPError())
		return
	}

	note, err := h.usecase.EnhanceNote(c.Request.Context(), id)
	if err != nil {
		appErr := mapAnnotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, note)
}
