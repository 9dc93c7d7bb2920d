// Package hf implements llm.Client against the Hugging Face Inference API.
package hf

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"resume-vetter/internal/llm"
)

const (
	baseURL      = "https://api-inference.huggingface.co/models/"
	defaultModel = "mistralai/Mixtral-8x7B-Instruct-v0.1"

	maxResumeChars = 3000
	maxJobChars    = 1000
)

// Client calls a hosted text-generation model.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a Hugging Face inference client. Model defaults to a
// Mixtral instruct checkpoint when empty.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("HF_API_TOKEN is required")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	timeout := 120 * time.Second
	if raw := strings.TrimSpace(os.Getenv("HF_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
}

type inferenceParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float32 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

type inferenceChoice struct {
	GeneratedText string `json:"generated_text"`
}

type inferenceError struct {
	Error string `json:"error"`
}

// ReviewResume sends the review prompt and extracts the match score from the
// generated text when present.
func (c *Client) ReviewResume(ctx context.Context, input llm.ReviewInput) (llm.Review, error) {
	prompt := BuildPrompt(input.ResumeText, input.JobDescription)

	reqBody := inferenceRequest{
		Inputs: prompt,
		Parameters: inferenceParameters{
			MaxNewTokens:   600,
			Temperature:    0.5,
			ReturnFullText: false,
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return llm.Review{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return llm.Review{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return llm.Review{}, fmt.Errorf("hf request timeout: %w", err)
		}
		return llm.Review{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return llm.Review{}, err
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr inferenceError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
			return llm.Review{}, fmt.Errorf("hf error: %s", apiErr.Error)
		}
		return llm.Review{}, fmt.Errorf("hf error: status %d", resp.StatusCode)
	}

	var choices []inferenceChoice
	if err := json.Unmarshal(body, &choices); err != nil {
		return llm.Review{}, fmt.Errorf("hf response parse: %w", err)
	}
	if len(choices) == 0 {
		return llm.Review{}, fmt.Errorf("hf response missing generations")
	}

	text := strings.TrimSpace(choices[0].GeneratedText)
	if text == "" {
		return llm.Review{}, fmt.Errorf("hf response empty content")
	}

	review := llm.Review{Text: text}
	if score, ok := llm.ExtractMatchScore(text); ok {
		review.MatchScore = &score
	}
	return review, nil
}

func (c *Client) endpoint() string {
	return c.baseURL + c.model
}

var _ llm.Client = (*Client)(nil)
