package sitegen

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"server/internal/domain"
)

// Event is one message on a job's result stream. Exactly one of the three
// fields is set; Done and Err are terminal.
type Event struct {
	Site *domain.GeneratedSite
	Err  error
	Done bool
}

// VariantGenerator produces the HTML for a single variant.
type VariantGenerator interface {
	Generate(ctx context.Context, businessName, businessType string, variant domain.DesignVariant) (string, error)
}

// Streamer drives the sequential generation of all planned variants for one
// job and exposes the results as a cancellable event channel.
type Streamer struct {
	gen    VariantGenerator
	plan   []domain.DesignVariant
	logger zerolog.Logger
}

// NewStreamer builds a streamer over the fixed variant plan.
func NewStreamer(gen VariantGenerator, logger zerolog.Logger) *Streamer {
	return &Streamer{gen: gen, plan: Plan, logger: logger}
}

// Stream generates each planned variant in order, emitting one event per
// completed variant followed by exactly one terminal event (Done on full
// success, Err on the first failure). The channel is closed after the
// terminal event. Cancelling ctx stops the loop between variants and closes
// the channel without a terminal event; a deadline expiry instead yields a
// terminal error event so the client learns the job timed out.
func (s *Streamer) Stream(ctx context.Context, job *domain.Job) <-chan Event {
	out := make(chan Event)
	go func() {
		defer close(out)
		for i, variant := range s.plan {
			if err := ctx.Err(); err != nil {
				if errors.Is(err, context.DeadlineExceeded) {
					s.logger.Warn().Str("job_id", job.ID).Int("index", i).Msg("sitegen: job deadline expired")
					out <- Event{Err: err}
				} else {
					s.logger.Info().Str("job_id", job.ID).Int("index", i).Msg("sitegen: stream cancelled")
				}
				return
			}
			s.logger.Info().
				Str("job_id", job.ID).
				Int("index", i).
				Str("style", variant.Style).
				Msg("sitegen: generating variant")

			html, err := s.gen.Generate(ctx, job.BusinessName, job.BusinessType, variant)
			if err != nil {
				s.logger.Error().Err(err).Str("job_id", job.ID).Int("index", i).Msg("sitegen: variant failed, aborting job")
				out <- Event{Err: err}
				return
			}
			site := &domain.GeneratedSite{HTML: html, Variant: variant, Index: i}
			if !emit(ctx, out, Event{Site: site}) {
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					out <- Event{Err: ctx.Err()}
				}
				return
			}
		}
		s.logger.Info().Str("job_id", job.ID).Msg("sitegen: all variants complete")
		out <- Event{Done: true}
	}()
	return out
}

// emit delivers a data event unless the context ends first. Terminal events
// bypass it: the consumer keeps receiving until the channel closes, and an
// expired deadline must still surface as an error event rather than a silent
// close.
func emit(ctx context.Context, out chan<- Event, ev Event) bool {
	select {
	case out <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
