package engine

import (
	"context"
	"fmt"
)

// defaultTemplate matches the placeholder text the service has always
// produced; %s is the uploaded filename.
const defaultTemplate = "(Mock transcription of %s)"

// MockEngine fabricates a transcription instead of invoking real
// speech-to-text inference. It never fails.
type MockEngine struct {
	template string
}

// NewMockEngine creates a mock engine. An empty template selects the default
// placeholder text.
func NewMockEngine(template string) *MockEngine {
	if template == "" {
		template = defaultTemplate
	}
	return &MockEngine{template: template}
}

func (e *MockEngine) Transcribe(_ context.Context, audio Audio) (string, error) {
	return fmt.Sprintf(e.template, audio.Filename), nil
}
