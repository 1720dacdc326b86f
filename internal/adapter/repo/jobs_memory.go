package repo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"server/internal/domain"
)

// JobRegistryMemory implements domain.JobRegistry with a mutex-guarded map.
// Jobs are short-lived (created on start-generation, removed when the stream
// ends), so no expiry is needed here.
type JobRegistryMemory struct {
	mu   sync.RWMutex
	jobs map[string]*domain.Job
}

// NewJobRegistry creates an empty in-memory job registry.
func NewJobRegistry() *JobRegistryMemory {
	return &JobRegistryMemory{jobs: make(map[string]*domain.Job)}
}

// Create stores a new pending job under a fresh unique id and returns it.
func (r *JobRegistryMemory) Create(_ context.Context, businessName, businessType, country string) (*domain.Job, error) {
	if businessName == "" || businessType == "" {
		return nil, domain.ErrInvalidInput
	}
	job := &domain.Job{
		ID:           uuid.NewString(),
		BusinessName: businessName,
		BusinessType: businessType,
		Status:       domain.JobStatusPending,
		Country:      country,
		CreatedAt:    time.Now().UTC(),
	}
	r.mu.Lock()
	r.jobs[job.ID] = job
	r.mu.Unlock()
	return job, nil
}

// Get returns the job for id or domain.ErrNotFound when the id is unknown or
// already consumed.
func (r *JobRegistryMemory) Get(_ context.Context, id string) (*domain.Job, error) {
	r.mu.RLock()
	job, ok := r.jobs[id]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *job
	return &copied, nil
}

// Delete removes the job. Deleting an absent id is a no-op so every terminal
// stream path can call it unconditionally.
func (r *JobRegistryMemory) Delete(_ context.Context, id string) {
	r.mu.Lock()
	delete(r.jobs, id)
	r.mu.Unlock()
}

// Len reports the number of in-flight jobs.
func (r *JobRegistryMemory) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.jobs)
}

var _ domain.JobRegistry = (*JobRegistryMemory)(nil)
