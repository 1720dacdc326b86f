// Package sse serializes server-sent events onto an http.ResponseWriter.
package sse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrStreamingUnsupported indicates the response writer cannot flush, so a
// long-lived event stream cannot be served on it.
var ErrStreamingUnsupported = errors.New("sse: response writer does not support streaming")

// Writer emits SSE frames and flushes after each one so events reach the
// client as they are produced.
type Writer struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewWriter prepares the response for an event stream: it verifies the writer
// can flush and sets the SSE headers, including the anti-buffering hint for
// intermediate proxies.
func NewWriter(w http.ResponseWriter) (*Writer, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, ErrStreamingUnsupported
	}
	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	return &Writer{w: w, flusher: flusher}, nil
}

// Data emits an unnamed data event with a JSON payload.
func (s *Writer) Data(v any) error {
	return s.frame("", v)
}

// Event emits a named event with a JSON payload.
func (s *Writer) Event(name string, v any) error {
	return s.frame(name, v)
}

func (s *Writer) frame(name string, v any) error {
	// Payloads carry raw HTML; the default encoder would escape the angle
	// brackets into < sequences.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("sse: marshal payload: %w", err)
	}
	payload := bytes.TrimRight(buf.Bytes(), "\n")
	if name != "" {
		if _, err := fmt.Fprintf(s.w, "event: %s\n", name); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", payload); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}
