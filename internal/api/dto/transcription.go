package dto

import (
	"mime/multipart"
	"time"

	"transcription-service/internal/app/model"
)

// TranscriptionResponse is the wire representation of a transcription job.
type TranscriptionResponse struct {
	ID            string    `json:"id"`
	AudioFilename string    `json:"audio_filename"`
	Text          *string   `json:"text"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateTranscriptionForm is the multipart payload for creating a job.
// Only the uploaded file is read; its filename becomes the job's
// audio_filename.
type CreateTranscriptionForm struct {
	File *multipart.FileHeader `form:"file" binding:"required"`
}

// UpdateTranscriptionRequest is the payload for updating a job. The update
// endpoint is not implemented yet; the shape is kept for API compatibility.
type UpdateTranscriptionRequest struct {
	AudioFilename *string `json:"audio_filename,omitempty"`
	Text          *string `json:"text,omitempty"`
	Status        *string `json:"status,omitempty" binding:"omitempty,oneof=pending completed failed" enums:"pending,completed,failed"`
}

// ToTranscriptionResponse converts a model job to its response DTO.
func ToTranscriptionResponse(job *model.TranscriptionJob) *TranscriptionResponse {
	if job == nil {
		return nil
	}
	return &TranscriptionResponse{
		ID:            job.ID,
		AudioFilename: job.AudioFilename,
		Text:          job.Text,
		Status:        string(job.Status),
		CreatedAt:     job.CreatedAt,
		UpdatedAt:     job.UpdatedAt,
	}
}
