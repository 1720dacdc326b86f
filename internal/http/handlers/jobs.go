package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"server/internal/domain"
	"server/internal/middleware"
	"server/internal/sitegen"
	"server/internal/sse"
)

type startGenerationRequest struct {
	BusinessName string `json:"businessName"`
	BusinessType string `json:"businessType"`
}

// StartGeneration registers a new generation job and hands the client the id
// it must use to open the result stream.
func (a *App) StartGeneration(w http.ResponseWriter, r *http.Request) {
	var req startGenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "Business Name and Type are required.")
		return
	}
	businessName := strings.TrimSpace(req.BusinessName)
	businessType := strings.TrimSpace(req.BusinessType)
	if businessName == "" || businessType == "" {
		a.error(w, http.StatusBadRequest, "Business Name and Type are required.")
		return
	}

	country := a.leadCountry(r)
	job, err := a.Jobs.Create(r.Context(), businessName, businessType, country)
	if err != nil {
		a.Logger.Error().Err(err).Msg("create generation job failed")
		a.error(w, http.StatusInternalServerError, "Failed to start generation.")
		return
	}

	a.Logger.Info().
		Str("job_id", job.ID).
		Str("business_type", businessType).
		Str("country", country).
		Msg("generation job created")

	a.json(w, http.StatusOK, map[string]any{"success": true, "jobId": job.ID})
}

// GenerationStream serves the one-way SSE feed for a job: one data event per
// completed variant, then exactly one terminal done or error event. The job
// is removed from the registry when the stream ends on any path.
func (a *App) GenerationStream(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job, err := a.Jobs.Get(r.Context(), jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "Job not found.")
			return
		}
		a.Logger.Error().Err(err).Str("job_id", jobID).Msg("job lookup failed")
		a.error(w, http.StatusInternalServerError, "Failed to open stream.")
		return
	}

	stream, err := sse.NewWriter(w)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "Streaming unsupported.")
		return
	}

	// The request context is gone once the client disconnects, so cleanup
	// runs on a fresh one.
	defer a.Jobs.Delete(context.Background(), jobID)

	ctx := r.Context()
	var cancel context.CancelFunc
	if a.JobTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, a.JobTimeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	events := a.Streamer.Stream(ctx, job)
	for ev := range events {
		if err := a.writeStreamEvent(stream, ev); err != nil {
			a.Logger.Warn().Err(err).Str("job_id", jobID).Msg("stream write failed, stopping generation")
			cancel()
			for range events {
				// drain so the producer goroutine can exit
			}
			break
		}
	}

	a.Logger.Info().Str("job_id", jobID).Msg("generation stream closed")
}

func (a *App) writeStreamEvent(stream *sse.Writer, ev sitegen.Event) error {
	switch {
	case ev.Site != nil:
		return stream.Data(ev.Site)
	case ev.Err != nil:
		return stream.Event("error", map[string]string{"error": ev.Err.Error()})
	case ev.Done:
		return stream.Event("done", map[string]string{"message": "complete"})
	}
	return nil
}

// leadCountry resolves the requester's country for lead analytics. Lookup
// failures only cost the annotation, never the request.
func (a *App) leadCountry(r *http.Request) string {
	if a.Geo == nil {
		return ""
	}
	country, err := a.Geo.CountryCode(middleware.ClientIP(r))
	if err != nil {
		return ""
	}
	return country
}
