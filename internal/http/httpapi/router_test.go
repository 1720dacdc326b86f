package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"server/internal/adapter/repo"
	"server/internal/domain"
	"server/internal/http/handlers"
	"server/internal/sitegen"
)

type stubStreamer struct {
	events []sitegen.Event
}

func (s *stubStreamer) Stream(ctx context.Context, _ *domain.Job) <-chan sitegen.Event {
	ch := make(chan sitegen.Event)
	go func() {
		defer close(ch)
		for _, ev := range s.events {
			select {
			case ch <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

// The stream must survive the full middleware chain, not just a bare handler.
func TestRouterServesGenerationStream(t *testing.T) {
	jobs := repo.NewJobRegistry()
	job, err := jobs.Create(context.Background(), "Acme", "Bakery", "")
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	app := &handlers.App{
		Logger: zerolog.New(io.Discard),
		Jobs:   jobs,
		Streamer: &stubStreamer{events: []sitegen.Event{
			{Site: &domain.GeneratedSite{HTML: "<html>one</html>", Variant: sitegen.Plan[0], Index: 0}},
			{Done: true},
		}},
	}
	router := NewRouter(app, RouterOptions{Logger: zerolog.New(io.Discard)})

	req := httptest.NewRequest(http.MethodGet, "/api/generation-stream/"+job.ID, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("Content-Type = %q, want text/event-stream", ct)
	}

	body := rr.Body.String()
	if !strings.Contains(body, "<html>one</html>") {
		t.Fatalf("data frame missing variant HTML: %q", body)
	}
	if !strings.Contains(body, "event: done") {
		t.Fatalf("terminal done event missing: %q", body)
	}

	if _, err := jobs.Get(context.Background(), job.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("job still registered after stream ended: %v", err)
	}
}

func TestRouterHealthz(t *testing.T) {
	app := &handlers.App{Logger: zerolog.New(io.Discard)}
	router := NewRouter(app, RouterOptions{Logger: zerolog.New(io.Discard)})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/healthz", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
}
