package httpx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

type scriptedTransport struct {
	responses []scriptedResponse
	calls     int
}

type scriptedResponse struct {
	status      int
	contentType string
	body        string
	err         error
}

func (s *scriptedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if s.calls >= len(s.responses) {
		return nil, fmt.Errorf("unexpected call %d", s.calls+1)
	}
	r := s.responses[s.calls]
	s.calls++
	if r.err != nil {
		return nil, r.err
	}
	contentType := r.contentType
	if contentType == "" {
		contentType = "application/json"
	}
	return &http.Response{
		StatusCode: r.status,
		Header:     http.Header{"Content-Type": []string{contentType}},
		Body:       io.NopCloser(strings.NewReader(r.body)),
		Request:    req,
	}, nil
}

func newTestClient(transport *scriptedTransport, baseDelay time.Duration) (*Client, *[]time.Duration) {
	client := NewClient(Options{
		HTTPClient: &http.Client{Transport: transport},
		Attempts:   3,
		BaseDelay:  baseDelay,
	})
	var delays []time.Duration
	client.sleep = func(_ context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}
	return client, &delays
}

func TestDoJSONBacksOffOnRateLimitThenSucceeds(t *testing.T) {
	transport := &scriptedTransport{responses: []scriptedResponse{
		{status: 429, body: `{}`},
		{status: 429, body: `{}`},
		{status: 200, body: `{"ok":true}`},
	}}
	client, delays := newTestClient(transport, 100*time.Millisecond)

	var out struct {
		OK bool `json:"ok"`
	}
	if err := client.DoJSON(context.Background(), Request{Method: "POST", URL: "http://provider/x", Body: map[string]int{}}, &out); err != nil {
		t.Fatalf("DoJSON: %v", err)
	}
	if !out.OK {
		t.Fatalf("expected decoded success body")
	}
	if transport.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", transport.calls)
	}
	if len(*delays) != 2 {
		t.Fatalf("expected 2 backoff delays, got %d", len(*delays))
	}
	for i := 1; i < len(*delays); i++ {
		if (*delays)[i] < 2*(*delays)[i-1] {
			t.Fatalf("delay %d (%s) not at least double previous (%s)", i, (*delays)[i], (*delays)[i-1])
		}
	}
}

func TestDoJSONQuotaExhaustedAfterBudget(t *testing.T) {
	transport := &scriptedTransport{responses: []scriptedResponse{
		{status: 429, body: `{}`},
		{status: 429, body: `{}`},
		{status: 429, body: `{}`},
	}}
	client, _ := newTestClient(transport, time.Millisecond)

	err := client.DoJSON(context.Background(), Request{URL: "http://provider/x"}, nil)
	if !errors.Is(err, ErrQuotaExhausted) {
		t.Fatalf("err = %v, want ErrQuotaExhausted", err)
	}
	if transport.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", transport.calls)
	}
}

func TestDoJSONFailsFastOnErrorStatusWithMessage(t *testing.T) {
	transport := &scriptedTransport{responses: []scriptedResponse{
		{status: 400, contentType: "text/plain", body: `{"error":{"message":"bad prompt"}}`},
	}}
	client, delays := newTestClient(transport, time.Millisecond)

	err := client.DoJSON(context.Background(), Request{URL: "http://provider/x"}, nil)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if statusErr.Code != 400 || statusErr.Message != "bad prompt" {
		t.Fatalf("unexpected status error: %+v", statusErr)
	}
	if transport.calls != 1 {
		t.Fatalf("expected fail-fast single attempt, got %d", transport.calls)
	}
	if len(*delays) != 0 {
		t.Fatalf("expected no backoff, got %d delays", len(*delays))
	}
}

func TestDoJSONInvalidResponseWhenErrorBodyIsNotJSON(t *testing.T) {
	transport := &scriptedTransport{responses: []scriptedResponse{
		{status: 503, contentType: "text/html", body: `<html>overloaded</html>`},
	}}
	client, _ := newTestClient(transport, time.Millisecond)

	err := client.DoJSON(context.Background(), Request{URL: "http://provider/x"}, nil)
	if !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
	if !strings.Contains(err.Error(), "503") {
		t.Fatalf("error should carry status code: %v", err)
	}
}

func TestDoJSONRetriesTransportErrorsUntilFinalAttempt(t *testing.T) {
	boom := errors.New("connection refused")
	transport := &scriptedTransport{responses: []scriptedResponse{
		{err: boom},
		{err: boom},
		{err: boom},
	}}
	client, delays := newTestClient(transport, time.Millisecond)

	err := client.DoJSON(context.Background(), Request{URL: "http://provider/x"}, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("final transport error should propagate, got %v", err)
	}
	if transport.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", transport.calls)
	}
	if len(*delays) != 2 {
		t.Fatalf("expected 2 delays before the final attempt, got %d", len(*delays))
	}
}

func TestDoJSONNonJSONSuccessExhaustsRetries(t *testing.T) {
	transport := &scriptedTransport{responses: []scriptedResponse{
		{status: 200, contentType: "text/html", body: "<html></html>"},
		{status: 200, contentType: "text/html", body: "<html></html>"},
		{status: 200, contentType: "text/html", body: "<html></html>"},
	}}
	client, _ := newTestClient(transport, time.Millisecond)

	err := client.DoJSON(context.Background(), Request{URL: "http://provider/x"}, nil)
	if !errors.Is(err, ErrRequestFailed) {
		t.Fatalf("err = %v, want ErrRequestFailed", err)
	}
}
