package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Client talks to the Shopify Storefront GraphQL API. Every operation is a
// single POST of {query, variables} against one endpoint.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	log        logrus.FieldLogger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client (used by tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithEndpoint overrides the derived endpoint URL entirely.
func WithEndpoint(url string) Option {
	return func(c *Client) { c.endpoint = url }
}

// New builds a Client for the given shop domain and API version. The access
// token may be empty for shops that allow unauthenticated storefront reads.
func New(domain, apiVersion, token string, log logrus.FieldLogger, opts ...Option) *Client {
	c := &Client{
		endpoint:   fmt.Sprintf("https://%s/api/%s/graphql.json", domain, apiVersion),
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TransportError is a network-level or HTTP-level failure reaching the API.
type TransportError struct {
	Status int
	Body   string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("storefront api: %v", e.Err)
	}
	return fmt.Sprintf("storefront api: status %d: %s", e.Status, e.Body)
}

func (e *TransportError) Unwrap() error { return e.Err }

// GraphQLError is a protocol-level error envelope returned with HTTP 200.
type GraphQLError struct {
	Messages []string
}

func (e *GraphQLError) Error() string {
	return fmt.Sprintf("storefront graphql errors: %v", e.Messages)
}

// UserError is a business-rule rejection reported inside a mutation payload,
// e.g. an invalid merchandise id.
type UserError struct {
	Field   []string
	Message string
}

func (e *UserError) Error() string { return e.Message }

type request struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// do posts one GraphQL request and decodes the data payload into out.
func (c *Client) do(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(request{Query: query, Variables: variables})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("X-Shopify-Storefront-Access-Token", c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		return &TransportError{Status: resp.StatusCode, Body: string(b)}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &TransportError{Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(env.Errors) > 0 {
		msgs := make([]string, 0, len(env.Errors))
		for _, e := range env.Errors {
			msgs = append(msgs, e.Message)
		}
		return &GraphQLError{Messages: msgs}
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &TransportError{Err: fmt.Errorf("decode data: %w", err)}
		}
	}
	return nil
}

// userError converts the userErrors array of a mutation payload, surfacing
// the first error the platform reports.
func userError(errs []wireUserError) error {
	if len(errs) == 0 {
		return nil
	}
	return &UserError{Field: errs[0].Field, Message: errs[0].Message}
}

type wireUserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}
