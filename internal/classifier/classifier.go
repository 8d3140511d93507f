// Package classifier talks to the Hugging Face inference API to rank
// candidate labels against free text (zero-shot classification).
package classifier

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Config locates the inference API. Token is optional: public models answer
// unauthenticated requests, just with tighter rate limits.
type Config struct {
	BaseURL string
	Model   string
	Token   string
}

// Client is safe for concurrent use; the underlying resty client shares one
// http.Transport across requests.
type Client struct {
	http  *resty.Client
	model string
}

type zeroShotRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters zeroShotParameters `json:"parameters"`
	Options    *zeroShotOptions   `json:"options,omitempty"`
}

type zeroShotParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
}

type zeroShotOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

// zeroShotResponse is the single-input response shape: labels sorted by
// score, most relevant first.
type zeroShotResponse struct {
	Sequence string    `json:"sequence"`
	Labels   []string  `json:"labels"`
	Scores   []float64 `json:"scores"`
}

type apiError struct {
	Message       string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time"`
}

// New builds a client for the given model. It performs no I/O; call Warmup
// to find out whether the model is actually serveable.
func New(cfg Config) *Client {
	rc := resty.New().SetBaseURL(cfg.BaseURL)
	if cfg.Token != "" {
		rc.SetAuthToken(cfg.Token)
	}
	return &Client{http: rc, model: cfg.Model}
}

// Classify ranks the candidate labels against text and returns them most
// relevant first. There is no retry: a failed call is the caller's problem.
func (c *Client) Classify(ctx context.Context, text string, labels []string) ([]string, error) {
	return c.post(ctx, zeroShotRequest{
		Inputs:     text,
		Parameters: zeroShotParameters{CandidateLabels: labels},
	})
}

// Warmup asks the API to load the model and blocks until it is ready or ctx
// expires. It runs once at startup; a failure here means the process serves
// without classification for its whole lifetime.
func (c *Client) Warmup(ctx context.Context) error {
	_, err := c.post(ctx, zeroShotRequest{
		Inputs:     "warmup",
		Parameters: zeroShotParameters{CandidateLabels: []string{"ready"}},
		Options:    &zeroShotOptions{WaitForModel: true},
	})
	return err
}

func (c *Client) post(ctx context.Context, body zeroShotRequest) ([]string, error) {
	result := &zeroShotResponse{}
	errBody := &apiError{}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(result).
		SetError(errBody).
		Post("/models/" + c.model)
	if err != nil {
		return nil, fmt.Errorf("zero-shot request to %s failed: %w", c.model, err)
	}
	if resp.StatusCode() != http.StatusOK {
		if errBody.Message != "" {
			return nil, fmt.Errorf("zero-shot API returned status %d: %s", resp.StatusCode(), errBody.Message)
		}
		return nil, fmt.Errorf("zero-shot API returned status %d: %s", resp.StatusCode(), resp.Body())
	}
	return result.Labels, nil
}
