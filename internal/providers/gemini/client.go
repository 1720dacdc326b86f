// Package gemini wraps the generateContent endpoint of the Google
// Generative Language API for text output.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"server/internal/httpx"
)

// ErrMissingAPIKey indicates the client was configured without credentials.
var ErrMissingAPIKey = errors.New("gemini: api key is required")

// ErrEmptyCandidate indicates the provider answered without the expected
// nested text field.
var ErrEmptyCandidate = errors.New("gemini: response contains no candidate text")

// Options configures the Gemini client.
type Options struct {
	APIKey    string
	BaseURL   string
	Model     string
	Transport *httpx.Client
}

// Client calls Gemini generateContent through the retrying transport.
type Client struct {
	apiKey    string
	baseURL   string
	model     string
	transport *httpx.Client
}

type generateContentRequest struct {
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
	Contents          []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// NewClient constructs a Gemini client with sane defaults.
func NewClient(opts Options) (*Client, error) {
	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = "gemini-2.5-flash-preview-09-2025"
	}
	transport := opts.Transport
	if transport == nil {
		transport = httpx.NewClient(httpx.Options{})
	}
	return &Client{
		apiKey:    apiKey,
		baseURL:   baseURL,
		model:     model,
		transport: transport,
	}, nil
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// GenerateText sends one generateContent call and returns the first candidate
// text. Rate limiting and transient failures are absorbed by the transport's
// backoff; a response without candidate text yields ErrEmptyCandidate.
func (c *Client) GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	payload := generateContentRequest{
		Contents: []content{{
			Parts: []part{{Text: userPrompt}},
		}},
	}
	if systemPrompt != "" {
		payload.SystemInstruction = &content{Parts: []part{{Text: systemPrompt}}}
	}

	var response generateContentResponse
	if err := c.transport.DoJSON(ctx, httpx.Request{
		Method: "POST",
		URL:    c.endpoint(),
		Body:   payload,
	}, &response); err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	for _, candidate := range response.Candidates {
		for _, p := range candidate.Content.Parts {
			if strings.TrimSpace(p.Text) != "" {
				return p.Text, nil
			}
		}
	}
	return "", ErrEmptyCandidate
}

func (c *Client) endpoint() string {
	return fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.baseURL, url.PathEscape(c.model), url.QueryEscape(c.apiKey))
}
