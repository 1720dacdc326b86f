// Package httpx provides a retrying JSON transport shared by the provider
// clients. It knows nothing about any particular API: callers describe the
// request, httpx handles backoff, rate limiting, and error-body decoding.
package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"server/internal/infra"
)

var (
	// ErrQuotaExhausted indicates the provider kept answering 429 until the
	// retry budget ran out.
	ErrQuotaExhausted = errors.New("quota exhausted")
	// ErrInvalidResponse indicates a non-retryable error status whose body
	// carried no parsable message.
	ErrInvalidResponse = errors.New("invalid provider response")
	// ErrRequestFailed indicates the retry budget was spent without an
	// explicit success or terminal error.
	ErrRequestFailed = errors.New("request failed after retries")
)

// StatusError is a terminal provider error with a message parsed from the
// JSON error body.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider status %d: %s", e.Code, e.Message)
}

// Request describes one JSON call.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   any
}

// Options configures the retrying client.
type Options struct {
	HTTPClient *http.Client
	Attempts   int
	BaseDelay  time.Duration
	Logger     *infra.Logger
}

// Client retries JSON calls with exponential backoff. A 429 response is
// retryable; any other error status fails fast because it is assumed to be
// non-transient. Transport-level failures retry until the final attempt.
type Client struct {
	httpClient *http.Client
	attempts   int
	baseDelay  time.Duration
	logger     *infra.Logger
	sleep      func(ctx context.Context, d time.Duration) error
}

// NewClient constructs a client with sane defaults.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	attempts := opts.Attempts
	if attempts <= 0 {
		attempts = 3
	}
	baseDelay := opts.BaseDelay
	if baseDelay <= 0 {
		baseDelay = time.Second
	}
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Client{
		httpClient: httpClient,
		attempts:   attempts,
		baseDelay:  baseDelay,
		logger:     logger,
		sleep:      sleepContext,
	}
}

// DoJSON performs the request and decodes the JSON response body into out.
// out may be nil when the caller only cares about success.
func (c *Client) DoJSON(ctx context.Context, req Request, out any) error {
	for attempt := 0; attempt < c.attempts; attempt++ {
		last := attempt == c.attempts-1

		resp, err := c.do(ctx, req)
		if err != nil {
			if last {
				return fmt.Errorf("perform request: %w", err)
			}
			c.logger.Warn().Err(err).Int("attempt", attempt+1).Msg("httpx: transport error, retrying")
		} else {
			terminal, err := c.consume(resp, out, last, attempt)
			if terminal {
				return err
			}
		}

		if err := c.sleep(ctx, c.delay(attempt)); err != nil {
			return err
		}
	}
	return ErrRequestFailed
}

func (c *Client) do(ctx context.Context, req Request) (*http.Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	var body io.Reader
	if req.Body != nil {
		raw, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for key, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	return c.httpClient.Do(httpReq)
}

// consume inspects one response. It reports whether the outcome is terminal;
// a false return means the caller should back off and retry.
func (c *Client) consume(resp *http.Response, out any, last bool, attempt int) (bool, error) {
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && isJSON(resp.Header.Get("Content-Type")) {
		if out == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			return true, nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return true, fmt.Errorf("decode response: %w", err)
		}
		return true, nil
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		if last {
			return true, fmt.Errorf("%w: provider answered 429 on every attempt", ErrQuotaExhausted)
		}
		c.logger.Warn().
			Int("attempt", attempt+1).
			Dur("delay", c.delay(attempt)).
			Msg("httpx: rate limited (429), retrying")
		return false, nil
	}

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(resp.Body)
		if msg := errorMessage(raw); msg != "" {
			return true, &StatusError{Code: resp.StatusCode, Message: msg}
		}
		return true, fmt.Errorf("%w: status %d", ErrInvalidResponse, resp.StatusCode)
	}

	// Success status without a JSON body; treat as transient.
	_, _ = io.Copy(io.Discard, resp.Body)
	c.logger.Warn().Int("status", resp.StatusCode).Int("attempt", attempt+1).Msg("httpx: non-JSON response, retrying")
	return false, nil
}

func (c *Client) delay(attempt int) time.Duration {
	return c.baseDelay * (1 << attempt)
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// errorMessage digs a human-readable message out of a JSON error body. Both
// the nested Google shape {"error":{"message":...}} and a flat
// {"message":...} are understood.
func errorMessage(raw []byte) string {
	var nested struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &nested); err != nil {
		return ""
	}
	if nested.Error.Message != "" {
		return nested.Error.Message
	}
	return nested.Message
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
