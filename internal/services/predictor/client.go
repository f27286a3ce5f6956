// Package predictor talks to the external fraud prediction service.
package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var (
	// ErrUpstream marks a response the prediction service failed to serve.
	ErrUpstream = errors.New("prediction service error")
	// ErrInvalidJSON marks a response body that is not JSON.
	ErrInvalidJSON = errors.New("prediction service returned invalid JSON")
)

// Vocabulary names one of the categorical label-to-code mappings the
// prediction service owns.
type Vocabulary string

const (
	Categories Vocabulary = "categories"
	Genders    Vocabulary = "genders"
	States     Vocabulary = "states"
	Cities     Vocabulary = "cities"
	DaysOfWeek Vocabulary = "days_of_week"
	Months     Vocabulary = "months"
	Hours      Vocabulary = "hours"
)

// Vocabularies lists every vocabulary in the order the form needs them.
var Vocabularies = []Vocabulary{Categories, Genders, States, Cities, DaysOfWeek, Months, Hours}

// Response is a raw prediction response.
type Response struct {
	StatusCode int
	Body       []byte
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Predict posts body unchanged to /api/predict. Transport failures, 5xx
// statuses and non-JSON bodies are errors; any other response is returned as is.
func (c *Client) Predict(ctx context.Context, body []byte) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/predict", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	status, respBody, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if status >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%w: predict returned %d: %s", ErrUpstream, status, truncate(respBody))
	}
	if !json.Valid(respBody) {
		return nil, fmt.Errorf("%w: predict: %s", ErrInvalidJSON, truncate(respBody))
	}

	return &Response{StatusCode: status, Body: respBody}, nil
}

// Vocabulary fetches /api/<name>.
func (c *Client) Vocabulary(ctx context.Context, v Vocabulary) (json.RawMessage, error) {
	return c.getJSON(ctx, "/api/"+url.PathEscape(string(v)))
}

// CityData fetches /get_city_data/<city> (encoded code, population, zip, lat, long).
func (c *Client) CityData(ctx context.Context, city string) (json.RawMessage, error) {
	return c.getJSON(ctx, "/get_city_data/"+url.PathEscape(city))
}

func (c *Client) getJSON(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	status, body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, fmt.Errorf("%w: GET %s returned %d: %s", ErrUpstream, path, status, truncate(body))
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: GET %s: %s", ErrInvalidJSON, path, truncate(body))
	}
	return json.RawMessage(body), nil
}

func (c *Client) do(req *http.Request) (int, []byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s failed: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read %s response: %w", req.URL.Path, err)
	}
	return resp.StatusCode, body, nil
}

func truncate(b []byte) string {
	const max = 200
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}
