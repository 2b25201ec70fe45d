package test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"transcription-service/internal/api/dto"
	"transcription-service/internal/api/errors"
	"transcription-service/internal/api/handlers"
	"transcription-service/internal/app/testutil"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *testutil.MockServices) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mockServices := testutil.NewMockServices(t)
	return router, mockServices
}

// multipartBody builds a multipart form carrying a single file field.
func multipartBody(t *testing.T, fieldName, filename string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if fieldName != "" {
		part, err := writer.CreateFormFile(fieldName, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake audio bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func strPtr(s string) *string { return &s }

func TestTranscriptionHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		fileField      string
		filename       string
		setupMocks     func(*testutil.MockServices)
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name:      "successful transcription creation",
			fileField: "file",
			filename:  "sample.wav",
			setupMocks: func(ms *testutil.MockServices) {
				now := time.Now().UTC()
				ms.TranscriptionService.On("CreateTranscription", mock.Anything, "sample.wav").
					Return(&dto.TranscriptionResponse{
						ID:            "0b06f547-45cb-46c9-bda6-6041556c2b86",
						AudioFilename: "sample.wav",
						Text:          strPtr("(Mock transcription of sample.wav)"),
						Status:        "completed",
						CreatedAt:     now,
						UpdatedAt:     now,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "0b06f547-45cb-46c9-bda6-6041556c2b86", body["id"])
				assert.Equal(t, "completed", body["status"])
				assert.Equal(t, "sample.wav", body["audio_filename"])
				assert.Equal(t, "(Mock transcription of sample.wav)", body["text"])
			},
		},
		{
			name:           "validation error - missing file",
			fileField:      "",
			setupMocks:     func(ms *testutil.MockServices) {},
			expectedStatus: http.StatusUnprocessableEntity,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "validation", body["kind"])
				assert.NotNil(t, body["details"])
			},
		},
		{
			name:      "service error",
			fileField: "file",
			filename:  "sample.wav",
			setupMocks: func(ms *testutil.MockServices) {
				ms.TranscriptionService.On("CreateTranscription", mock.Anything, "sample.wav").
					Return(nil, errors.NewInternalError("engine unavailable"))
			},
			expectedStatus: http.StatusInternalServerError,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "internal", body["kind"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockServices := setupTestRouter(t)
			tt.setupMocks(mockServices)

			handler := handlers.NewTranscriptionHandler(mockServices.TranscriptionService)
			router.POST("/transcriptions", handler.Create)

			body, contentType := multipartBody(t, tt.fileField, tt.filename)

			req := httptest.NewRequest("POST", "/transcriptions", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var responseBody map[string]interface{}
			err := json.Unmarshal(rec.Body.Bytes(), &responseBody)
			require.NoError(t, err)

			tt.validateBody(t, responseBody)
		})
	}
}

func TestTranscriptionHandler_Get(t *testing.T) {
	tests := []struct {
		name            string
		transcriptionID string
		setupMocks      func(*testutil.MockServices)
		expectedStatus  int
		validateBody    func(*testing.T, map[string]interface{})
	}{
		{
			name:            "successful get",
			transcriptionID: "0b06f547-45cb-46c9-bda6-6041556c2b86",
			setupMocks: func(ms *testutil.MockServices) {
				ms.TranscriptionService.On("GetTranscription", mock.Anything, "0b06f547-45cb-46c9-bda6-6041556c2b86").
					Return(&dto.TranscriptionResponse{
						ID:            "0b06f547-45cb-46c9-bda6-6041556c2b86",
						AudioFilename: "episode.mp3",
						Text:          strPtr("(Mock transcription of episode.mp3)"),
						Status:        "completed",
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "0b06f547-45cb-46c9-bda6-6041556c2b86", body["id"])
				assert.Equal(t, "completed", body["status"])
				assert.Equal(t, "(Mock transcription of episode.mp3)", body["text"])
			},
		},
		{
			name:            "not found",
			transcriptionID: "b4f6a3e2-9d8c-4f5e-8a7b-1c2d3e4f5a6b",
			setupMocks: func(ms *testutil.MockServices) {
				ms.TranscriptionService.On("GetTranscription", mock.Anything, "b4f6a3e2-9d8c-4f5e-8a7b-1c2d3e4f5a6b").
					Return(nil, errors.NewNotFoundError("transcription"))
			},
			expectedStatus: http.StatusNotFound,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "not_found", body["kind"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockServices := setupTestRouter(t)
			tt.setupMocks(mockServices)

			handler := handlers.NewTranscriptionHandler(mockServices.TranscriptionService)
			router.GET("/transcriptions/:id", handler.Get)

			req := httptest.NewRequest("GET", "/transcriptions/"+tt.transcriptionID, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var responseBody map[string]interface{}
			err := json.Unmarshal(rec.Body.Bytes(), &responseBody)
			require.NoError(t, err)

			tt.validateBody(t, responseBody)
		})
	}
}

func TestTranscriptionHandler_List(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(*testutil.MockServices)
		expectedStatus int
		expectedTotal  string
		validateBody   func(*testing.T, []interface{})
	}{
		{
			name: "successful list in creation order",
			setupMocks: func(ms *testutil.MockServices) {
				ms.TranscriptionService.On("ListTranscriptions", mock.Anything).
					Return([]dto.TranscriptionResponse{
						{ID: "0b06f547-45cb-46c9-bda6-6041556c2b86", AudioFilename: "first.wav", Status: "completed"},
						{ID: "b4f6a3e2-9d8c-4f5e-8a7b-1c2d3e4f5a6b", AudioFilename: "second.wav", Status: "completed"},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedTotal:  "2",
			validateBody: func(t *testing.T, body []interface{}) {
				require.Len(t, body, 2)
				first := body[0].(map[string]interface{})
				assert.Equal(t, "first.wav", first["audio_filename"])
			},
		},
		{
			name: "empty list",
			setupMocks: func(ms *testutil.MockServices) {
				ms.TranscriptionService.On("ListTranscriptions", mock.Anything).
					Return([]dto.TranscriptionResponse{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedTotal:  "0",
			validateBody: func(t *testing.T, body []interface{}) {
				assert.Empty(t, body)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockServices := setupTestRouter(t)
			tt.setupMocks(mockServices)

			handler := handlers.NewTranscriptionHandler(mockServices.TranscriptionService)
			router.GET("/transcriptions", handler.List)

			req := httptest.NewRequest("GET", "/transcriptions", nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedTotal, rec.Header().Get("X-Total-Count"))

			var responseBody []interface{}
			err := json.Unmarshal(rec.Body.Bytes(), &responseBody)
			require.NoError(t, err)

			tt.validateBody(t, responseBody)
		})
	}
}

func TestTranscriptionHandler_Update(t *testing.T) {
	tests := []struct {
		name            string
		transcriptionID string
		body            string
	}{
		{
			name:            "update with valid payload",
			transcriptionID: "0b06f547-45cb-46c9-bda6-6041556c2b86",
			body:            `{"audio_filename":"renamed.wav"}`,
		},
		{
			name:            "update with unknown ID",
			transcriptionID: "b4f6a3e2-9d8c-4f5e-8a7b-1c2d3e4f5a6b",
			body:            `{"status":"failed"}`,
		},
		{
			name:            "update with malformed payload",
			transcriptionID: "0b06f547-45cb-46c9-bda6-6041556c2b86",
			body:            `{not json`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockServices := setupTestRouter(t)
			mockServices.TranscriptionService.On("UpdateTranscription", mock.Anything, tt.transcriptionID, mock.Anything).
				Return(nil, errors.NewNotImplementedError("Not implemented"))

			handler := handlers.NewTranscriptionHandler(mockServices.TranscriptionService)
			router.PUT("/transcriptions/:id", handler.Update)

			req := httptest.NewRequest("PUT", "/transcriptions/"+tt.transcriptionID, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNotImplemented, rec.Code)

			var responseBody map[string]interface{}
			err := json.Unmarshal(rec.Body.Bytes(), &responseBody)
			require.NoError(t, err)
			assert.Equal(t, "not_implemented", responseBody["kind"])
			assert.Equal(t, "Not implemented", responseBody["message"])
		})
	}
}

func TestTranscriptionHandler_Delete(t *testing.T) {
	tests := []struct {
		name            string
		transcriptionID string
		setupMocks      func(*testutil.MockServices)
		expectedStatus  int
	}{
		{
			name:            "successful delete",
			transcriptionID: "0b06f547-45cb-46c9-bda6-6041556c2b86",
			setupMocks: func(ms *testutil.MockServices) {
				ms.TranscriptionService.On("DeleteTranscription", mock.Anything, "0b06f547-45cb-46c9-bda6-6041556c2b86").
					Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:            "not found",
			transcriptionID: "b4f6a3e2-9d8c-4f5e-8a7b-1c2d3e4f5a6b",
			setupMocks: func(ms *testutil.MockServices) {
				ms.TranscriptionService.On("DeleteTranscription", mock.Anything, "b4f6a3e2-9d8c-4f5e-8a7b-1c2d3e4f5a6b").
					Return(errors.NewNotFoundError("transcription"))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockServices := setupTestRouter(t)
			tt.setupMocks(mockServices)

			handler := handlers.NewTranscriptionHandler(mockServices.TranscriptionService)
			router.DELETE("/transcriptions/:id", handler.Delete)

			req := httptest.NewRequest("DELETE", "/transcriptions/"+tt.transcriptionID, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
