package engine

import "context"

// Audio describes the uploaded audio to transcribe. Only the filename is
// modeled; file content is never read by this service.
type Audio struct {
	Filename string
}

// Engine defines the transcription capability. This is the seam where a real
// speech-to-text backend would attach without touching the store or routing
// logic.
type Engine interface {
	Transcribe(ctx context.Context, audio Audio) (string, error)
}
