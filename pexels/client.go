package pexels

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.pexels.com/v1"

var (
	// ErrEmptyPrompt means the caller passed a blank prompt; no request
	// is made upstream in that case.
	ErrEmptyPrompt = errors.New("prompt is required and must be a valid string")
	// ErrNoResults means the search legitimately matched nothing.
	ErrNoResults = errors.New("no images found for this prompt")
)

// APIError carries an upstream failure (auth, quota, transport at the HTTP
// level) together with the status Pexels answered with.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pexels: upstream returned %d: %s", e.StatusCode, e.Body)
}

// Client searches the Pexels photo library. It stands in for an image
// generator: given a prompt it returns the single best keyword match.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func New(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type Result struct {
	Photo        string `json:"photo"`
	Alt          string `json:"alt"`
	Photographer string `json:"photographer"`
}

type searchResponse struct {
	Photos []struct {
		Src struct {
			Original string `json:"original"`
		} `json:"src"`
		Alt          string `json:"alt"`
		Photographer string `json:"photographer"`
	} `json:"photos"`
}

// FindImage returns the original-resolution URL of the first photo
// matching prompt, plus its alt text and photographer attribution.
func (c *Client) FindImage(ctx context.Context, prompt string) (*Result, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}

	endpoint := c.baseURL + "/search?query=" + url.QueryEscape(prompt) + "&per_page=1"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("pexels: build request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pexels: search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var search searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		return nil, fmt.Errorf("pexels: decode response: %w", err)
	}

	if len(search.Photos) == 0 {
		return nil, ErrNoResults
	}

	photo := search.Photos[0]
	alt := photo.Alt
	if alt == "" {
		alt = prompt
	}

	return &Result{
		Photo:        photo.Src.Original,
		Alt:          alt,
		Photographer: photo.Photographer,
	}, nil
}
