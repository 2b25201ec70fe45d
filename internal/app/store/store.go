package store

import (
	"errors"

	"transcription-service/internal/app/model"
)

// ErrNotFound is returned when no record exists for the requested id.
var ErrNotFound = errors.New("transcription not found")

// TranscriptionStore holds every job record for the process lifetime. The
// store exclusively owns its records: implementations hand out copies, never
// references to internal state.
type TranscriptionStore interface {
	// Insert stores the job under its id, replacing any existing record with
	// the same id without changing its position in the listing order.
	Insert(job *model.TranscriptionJob)

	// Get returns the job with the given id, or ErrNotFound.
	Get(id string) (*model.TranscriptionJob, error)

	// List returns all held jobs in insertion order.
	List() []model.TranscriptionJob

	// Delete removes the job with the given id, or returns ErrNotFound.
	Delete(id string) error

	// Len reports the number of held jobs.
	Len() int
}
