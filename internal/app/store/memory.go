package store

import (
	"sync"

	"transcription-service/internal/app/model"
)

// MemoryStore is the in-memory TranscriptionStore. A single RWMutex guards
// the map and the insertion-order slice; every operation is a synchronous
// in-memory access, so nothing here blocks or takes a context.
type MemoryStore struct {
	mu    sync.RWMutex
	jobs  map[string]*model.TranscriptionJob
	order []string
}

// NewMemoryStore creates an empty store. Construct it once at process start
// and inject it; all data is lost when the process exits.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		jobs: make(map[string]*model.TranscriptionJob),
	}
}

func (s *MemoryStore) Insert(job *model.TranscriptionJob) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[job.ID]; !exists {
		s.order = append(s.order, job.ID)
	}
	s.jobs[job.ID] = job.Clone()
}

func (s *MemoryStore) Get(id string) (*model.TranscriptionJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return job.Clone(), nil
}

func (s *MemoryStore) List() []model.TranscriptionJob {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]model.TranscriptionJob, 0, len(s.order))
	for _, id := range s.order {
		jobs = append(jobs, *s.jobs[id].Clone())
	}
	return jobs
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[id]; !ok {
		return ErrNotFound
	}
	delete(s.jobs, id)
	for i, jobID := range s.order {
		if jobID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}
