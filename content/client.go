package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance.
var validate = validator.New()

// TextResponse is the body of a text-fetch response.
type TextResponse struct {
	Text string `json:"text" validate:"required"`
}

// Client fetches content documents from a remote resource and resolves them
// through the content contract. Transport concerns beyond plain HTTP (auth,
// retry, backoff) belong to the caller's http.Client.
type Client struct {
	base  string
	http  *http.Client
	codec Codec
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
// Default: http.DefaultClient.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) {
		c.http = h
	}
}

// WithCodec sets the codec used to decode tabbed-content documents.
// Default: JSONCodec.
func WithCodec(codec Codec) ClientOption {
	return func(c *Client) {
		c.codec = codec
	}
}

// NewClient creates a Client rooted at the given base URL.
func NewClient(base string, opts ...ClientOption) *Client {
	c := &Client{
		base:  base,
		http:  http.DefaultClient,
		codec: JSONCodec{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchText fetches a text document from the given path and validates its
// shape.
func (c *Client) FetchText(ctx context.Context, path string) (TextResponse, error) {
	raw, err := c.get(ctx, path)
	if err != nil {
		return TextResponse{}, err
	}

	var out TextResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return TextResponse{}, fmt.Errorf("decode text response: %w", err)
	}
	if err := validate.Struct(out); err != nil {
		return TextResponse{}, fmt.Errorf("invalid text response: %w", err)
	}
	return out, nil
}

// FetchTabs fetches a tabbed-content document from the given path and
// resolves every payload in it.
func (c *Client) FetchTabs(ctx context.Context, path string) (map[string]Payload, error) {
	raw, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	return ParseTabs(c.codec, raw)
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", path, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close() //nolint:errcheck // Read-only body

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", path, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
