package domain

import "time"

// JobStatus enumerates generation job lifecycle states.
type JobStatus string

// JobStatusPending is the only persisted state: the streaming loop drives a
// job from creation to deletion without externally observable transitions.
const JobStatusPending JobStatus = "pending"

// Job is one user-initiated request to generate the full set of design
// variants for a business. It lives in the registry from the start-generation
// call until its single stream ends.
type Job struct {
	ID           string
	BusinessName string
	BusinessType string
	Status       JobStatus
	Country      string
	CreatedAt    time.Time
}
