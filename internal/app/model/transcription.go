package model

import "time"

// Status represents the lifecycle state of a transcription job.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	// StatusFailed is part of the wire contract but no operation currently
	// produces it: the mock engine cannot fail.
	StatusFailed Status = "failed"
)

// TranscriptionJob represents a single transcription record tracked by the
// store. Text is a pointer so it serializes as JSON null until the
// transcription completes.
type TranscriptionJob struct {
	ID            string    `json:"id"`
	AudioFilename string    `json:"audio_filename"`
	Text          *string   `json:"text"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Clone returns a deep copy of the job so store callers can never alias the
// stored record.
func (j *TranscriptionJob) Clone() *TranscriptionJob {
	clone := *j
	if j.Text != nil {
		text := *j.Text
		clone.Text = &text
	}
	return &clone
}
