package services

import (
	"context"

	"transcription-service/internal/api/dto"
)

// TranscriptionService defines the interface for transcription operations
type TranscriptionService interface {
	ListTranscriptions(ctx context.Context) ([]dto.TranscriptionResponse, error)
	CreateTranscription(ctx context.Context, audioFilename string) (*dto.TranscriptionResponse, error)
	GetTranscription(ctx context.Context, id string) (*dto.TranscriptionResponse, error)
	UpdateTranscription(ctx context.Context, id string, req *dto.UpdateTranscriptionRequest) (*dto.TranscriptionResponse, error)
	DeleteTranscription(ctx context.Context, id string) error
}
