package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"transcription-service/internal/api/dto"
	"transcription-service/internal/api/errors"
	"transcription-service/internal/app/engine"
	"transcription-service/internal/app/events"
	"transcription-service/internal/app/model"
	"transcription-service/internal/app/store"
)

// TranscriptionServiceImpl implements TranscriptionService
type TranscriptionServiceImpl struct {
	store     store.TranscriptionStore
	engine    engine.Engine
	publisher events.Publisher
	logger    *zap.Logger
}

// NewTranscriptionService creates a new transcription service
func NewTranscriptionService(
	jobStore store.TranscriptionStore,
	eng engine.Engine,
	publisher events.Publisher,
	logger *zap.Logger,
) TranscriptionService {
	return &TranscriptionServiceImpl{
		store:     jobStore,
		engine:    eng,
		publisher: publisher,
		logger:    logger,
	}
}

// ListTranscriptions returns all transcription jobs in creation order.
func (s *TranscriptionServiceImpl) ListTranscriptions(ctx context.Context) ([]dto.TranscriptionResponse, error) {
	jobs := s.store.List()

	return lo.Map(jobs, func(job model.TranscriptionJob, _ int) dto.TranscriptionResponse {
		return *dto.ToTranscriptionResponse(&job)
	}), nil
}

// CreateTranscription runs the engine on the uploaded audio and stores the
// finished job. The job is persisted only after the engine succeeds, so a
// client never observes a half-created record.
func (s *TranscriptionServiceImpl) CreateTranscription(ctx context.Context, audioFilename string) (*dto.TranscriptionResponse, error) {
	text, err := s.engine.Transcribe(ctx, engine.Audio{Filename: audioFilename})
	if err != nil {
		s.logger.Error("Transcription engine failed",
			zap.String("audio_filename", audioFilename),
			zap.Error(err))
		return nil, errors.NewInternalError("Failed to transcribe audio")
	}

	now := time.Now().UTC()
	job := &model.TranscriptionJob{
		ID:            uuid.New().String(),
		AudioFilename: audioFilename,
		Text:          &text,
		Status:        model.StatusCompleted,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.store.Insert(job)

	if err := s.publisher.Publish(ctx, events.NewJobEvent(events.TranscriptionCreated, job)); err != nil {
		// Event delivery is best effort; the job itself is already stored.
		s.logger.Warn("Failed to publish transcription event",
			zap.String("id", job.ID),
			zap.Error(err))
	}

	s.logger.Info("Transcription created",
		zap.String("id", job.ID),
		zap.String("audio_filename", job.AudioFilename))

	return dto.ToTranscriptionResponse(job), nil
}

// GetTranscription retrieves a transcription job by ID
func (s *TranscriptionServiceImpl) GetTranscription(ctx context.Context, id string) (*dto.TranscriptionResponse, error) {
	job, err := s.store.Get(id)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, errors.NewNotFoundError("transcription")
		}
		return nil, errors.NewInternalError("Failed to retrieve transcription")
	}

	return dto.ToTranscriptionResponse(job), nil
}

// UpdateTranscription is reserved for a future release and currently rejects
// every request, leaving the stored job untouched.
func (s *TranscriptionServiceImpl) UpdateTranscription(ctx context.Context, id string, req *dto.UpdateTranscriptionRequest) (*dto.TranscriptionResponse, error) {
	return nil, errors.NewNotImplementedError("Not implemented")
}

// DeleteTranscription removes a transcription job by ID
func (s *TranscriptionServiceImpl) DeleteTranscription(ctx context.Context, id string) error {
	if err := s.store.Delete(id); err != nil {
		if err == store.ErrNotFound {
			return errors.NewNotFoundError("transcription")
		}
		return errors.NewInternalError("Failed to delete transcription")
	}

	return nil
}
