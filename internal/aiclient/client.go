// Package aiclient wraps the external generation backend: JSON over HTTP,
// address-agnostic. Failures are returned to the caller for inline display
// and retry; they never touch local stores.
package aiclient

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func New(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Message is one chat turn.
type Message struct {
	Role    string `json:"role"` // user | assistant
	Content string `json:"content"`
}

// Layer is one contribution to prompt composition.
type Layer struct {
	Name string `json:"name"`
	Type string `json:"type"` // draw | text
	Data string `json:"data"`
}

type GenerateImageResult struct {
	ImageURL string `json:"imageUrl"`
}

type HintsResult struct {
	Adjectives []string `json:"adjectives"`
	Verbs      []string `json:"verbs"`
	Styles     []string `json:"styles"`
}

type KeywordsResult struct {
	Adjectives []string `json:"adjectives"`
	Verbs      []string `json:"verbs"`
	Locations  []string `json:"locations"`
}

type ComposeResult struct {
	ComposedPrompt   string `json:"composedPrompt"`
	ComposedPromptKr string `json:"composedPromptKr"`
}

type ChatResult struct {
	Reply string `json:"reply"`
}

// Post is one shared creation record.
type Post struct {
	ID        string    `json:"id"`
	Prompt    string    `json:"prompt"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// GenerateImage requests an image for the prompt. referenceImage is an
// optional PNG snapshot, sent base64-encoded.
func (c *Client) GenerateImage(ctx context.Context, prompt string, referenceImage []byte) (*GenerateImageResult, error) {
	req := map[string]any{"prompt": prompt}
	if len(referenceImage) > 0 {
		req["referenceImage"] = base64.StdEncoding.EncodeToString(referenceImage)
	}
	var out GenerateImageResult
	if err := c.post(ctx, "/generate-image", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateHints suggests adjectives, verbs and styles for an existing prompt.
func (c *Client) GenerateHints(ctx context.Context, prompt string) (*HintsResult, error) {
	var out HintsResult
	if err := c.post(ctx, "/generate-hints", map[string]any{"prompt": prompt}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SuggestKeywords suggests vocabulary for a bare subject.
func (c *Client) SuggestKeywords(ctx context.Context, subject string) (*KeywordsResult, error) {
	var out KeywordsResult
	if err := c.post(ctx, "/suggest-keywords", map[string]any{"subject": subject}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ComposePrompt merges the stage layers into a final prompt (English and
// Korean variants).
func (c *Client) ComposePrompt(ctx context.Context, layers []Layer) (*ComposeResult, error) {
	var out ComposeResult
	if err := c.post(ctx, "/compose-prompt", map[string]any{"layers": layers}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Chat sends the conversation and returns the assistant reply.
func (c *Client) Chat(ctx context.Context, messages []Message) (*ChatResult, error) {
	var out ChatResult
	if err := c.post(ctx, "/chat", map[string]any{"messages": messages}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SharePost publishes a creation to the shared feed.
func (c *Client) SharePost(ctx context.Context, prompt, imageURL string) (*Post, error) {
	var out Post
	if err := c.post(ctx, "/share-post", map[string]any{"prompt": prompt, "imageUrl": imageURL}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPosts fetches the shared feed.
func (c *Client) ListPosts(ctx context.Context) ([]Post, error) {
	var out struct {
		Posts []Post `json:"posts"`
	}
	if err := c.post(ctx, "/list-posts", map[string]any{}, &out); err != nil {
		return nil, err
	}
	return out.Posts, nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("backend %s: read response: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("backend %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("backend %s: decode response: %w", path, err)
	}

	c.log.Debug("backend call",
		zap.String("path", path),
		zap.Int("bytes", len(body)),
		zap.Duration("took", time.Since(start)))
	return nil
}
