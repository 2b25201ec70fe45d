package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"transcription-service/internal/api/dto"
)

// MockServices contains all mock services for testing
type MockServices struct {
	TranscriptionService *MockTranscriptionService
}

// NewMockServices creates a new instance of mock services
func NewMockServices(t *testing.T) *MockServices {
	return &MockServices{
		TranscriptionService: NewMockTranscriptionService(t),
	}
}

// MockTranscriptionService is a mock implementation of TranscriptionService
type MockTranscriptionService struct {
	mock.Mock
}

func NewMockTranscriptionService(t *testing.T) *MockTranscriptionService {
	m := &MockTranscriptionService{}
	m.Test(t)
	return m
}

func (m *MockTranscriptionService) ListTranscriptions(ctx context.Context) ([]dto.TranscriptionResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TranscriptionResponse), args.Error(1)
}

func (m *MockTranscriptionService) CreateTranscription(ctx context.Context, audioFilename string) (*dto.TranscriptionResponse, error) {
	args := m.Called(ctx, audioFilename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TranscriptionResponse), args.Error(1)
}

func (m *MockTranscriptionService) GetTranscription(ctx context.Context, id string) (*dto.TranscriptionResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TranscriptionResponse), args.Error(1)
}

func (m *MockTranscriptionService) UpdateTranscription(ctx context.Context, id string, req *dto.UpdateTranscriptionRequest) (*dto.TranscriptionResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TranscriptionResponse), args.Error(1)
}

func (m *MockTranscriptionService) DeleteTranscription(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
