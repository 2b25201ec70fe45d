package events

import (
	"context"
	"time"

	"transcription-service/internal/app/model"
)

// Event types emitted on the transcriptions channel.
const (
	TranscriptionCreated = "transcription.created"
)

// Event is the payload published when something happens to a transcription.
type Event struct {
	EventType     string `json:"event_type"`
	ID            string `json:"id"`
	AudioFilename string `json:"audio_filename"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// NewJobEvent builds an Event for the given job.
func NewJobEvent(eventType string, job *model.TranscriptionJob) Event {
	return Event{
		EventType:     eventType,
		ID:            job.ID,
		AudioFilename: job.AudioFilename,
		Status:        string(job.Status),
		CreatedAt:     job.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:     job.UpdatedAt.Format(time.RFC3339Nano),
	}
}

// Publisher delivers transcription events to interested consumers. Publish
// failures are surfaced to the caller, which logs and moves on: events are
// best effort and never retried.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}
