package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"transcription-service/internal/api/dto"
	"transcription-service/internal/api/middleware"
	"transcription-service/internal/api/services"
)

// TranscriptionHandler handles transcription-related API endpoints
type TranscriptionHandler struct {
	service services.TranscriptionService
}

// NewTranscriptionHandler creates a new transcription handler
func NewTranscriptionHandler(service services.TranscriptionService) *TranscriptionHandler {
	return &TranscriptionHandler{
		service: service,
	}
}

// List handles GET /transcriptions
// Lists all transcription jobs in creation order
//
// @Summary List transcription jobs
// @Description Retrieves every transcription job currently held, in creation order
// @Tags transcriptions
// @Produce json
// @Success 200 {array} dto.TranscriptionResponse "List of transcription jobs"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Header 200 {string} X-Total-Count "Total number of transcription jobs"
// @Router /transcriptions [get]
func (h *TranscriptionHandler) List(c *gin.Context) {
	response, err := h.service.ListTranscriptions(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Header("X-Total-Count", strconv.Itoa(len(response)))

	c.JSON(http.StatusOK, response)
}

// Create handles POST /transcriptions
// Creates a new transcription job from an uploaded audio file
//
// @Summary Create a new transcription job
// @Description Uploads an audio file and synchronously transcribes it. Only the filename is read from the upload.
// @Tags transcriptions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file to transcribe"
// @Success 201 {object} dto.TranscriptionResponse "Transcription created successfully"
// @Failure 422 {object} errors.APIError "Validation error - missing file"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /transcriptions [post]
func (h *TranscriptionHandler) Create(c *gin.Context) {
	var form dto.CreateTranscriptionForm

	// Validate request
	if err := middleware.ValidateForm(c, &form); err != nil {
		middleware.HandleError(c, err)
		return
	}

	// Create transcription
	response, err := h.service.CreateTranscription(c.Request.Context(), form.File.Filename)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Get handles GET /transcriptions/:id
// Retrieves a specific transcription job by ID
//
// @Summary Get transcription job by ID
// @Description Retrieves a single transcription job by its identifier
// @Tags transcriptions
// @Produce json
// @Param id path string true "Transcription job ID" format(uuid)
// @Success 200 {object} dto.TranscriptionResponse "Transcription job details"
// @Failure 404 {object} errors.APIError "Transcription not found"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /transcriptions/{id} [get]
func (h *TranscriptionHandler) Get(c *gin.Context) {
	response, err := h.service.GetTranscription(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Update handles PUT /transcriptions/:id
// Updating a transcription job is not implemented yet
//
// @Summary Update a transcription job
// @Description Not implemented yet. Always responds with 501 regardless of ID or payload.
// @Tags transcriptions
// @Accept json
// @Produce json
// @Param id path string true "Transcription job ID" format(uuid)
// @Param transcription body dto.UpdateTranscriptionRequest true "Fields to update (currently ignored)"
// @Failure 501 {object} errors.APIError "Not implemented"
// @Router /transcriptions/{id} [put]
func (h *TranscriptionHandler) Update(c *gin.Context) {
	var req dto.UpdateTranscriptionRequest

	// The payload is accepted but ignored until the endpoint is implemented.
	_ = c.ShouldBindJSON(&req)

	response, err := h.service.UpdateTranscription(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Delete handles DELETE /transcriptions/:id
// Deletes a transcription job by ID
//
// @Summary Delete a transcription job
// @Description Removes a transcription job from the store
// @Tags transcriptions
// @Param id path string true "Transcription job ID" format(uuid)
// @Success 204 "Transcription deleted successfully"
// @Failure 404 {object} errors.APIError "Transcription not found"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /transcriptions/{id} [delete]
func (h *TranscriptionHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteTranscription(c.Request.Context(), c.Param("id")); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
