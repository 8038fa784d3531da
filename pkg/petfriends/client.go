/*
Copyright 2025 the Unikorn Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//go:generate mockgen -source=client.go -destination=mock/interfaces.go -package=mock

package petfriends

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-logr/logr"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	// DefaultTimeout bounds a single request when no HTTP client is given.
	DefaultTimeout = 30 * time.Second

	headerAuthKey  = "auth_key"
	headerEmail    = "email"
	headerPassword = "password"

	contentTypeForm = "application/x-www-form-urlencoded"
)

// HTTPDoer sends a single HTTP request.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to a PetFriends service.
type Client struct {
	baseURL      string
	client       HTTPDoer
	endpoints    *Endpoints
	logger       logr.Logger
	logResponses bool
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport. It is handed every request as is.
func WithHTTPClient(client HTTPDoer) Option {
	return func(c *Client) {
		c.client = client
	}
}

// WithTimeout sets the per request timeout of the default transport.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.client = &http.Client{
			Timeout: timeout,
		}
	}
}

// WithLogger routes request logging to the given logger. Completed requests
// are logged at V(1), failures at V(0).
func WithLogger(logger logr.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithResponseLogging logs every response body.
func WithResponseLogging(enabled bool) Option {
	return func(c *Client) {
		c.logResponses = enabled
	}
}

// New returns a client for the service rooted at baseURL.
func New(baseURL string, options ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
		endpoints: NewEndpoints(),
		logger:    logr.Discard(),
	}

	for _, o := range options {
		o(c)
	}

	return c, nil
}

// BaseURL returns the service root the client is bound to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetAPIKey exchanges credentials for an auth key.
func (c *Client) GetAPIKey(ctx context.Context, email, password string) (*Response, error) {
	header := http.Header{}
	header.Set(headerEmail, email)
	header.Set(headerPassword, password)

	return c.doRequest(ctx, http.MethodGet, c.endpoints.APIKey(), nil, header, nil, "")
}

// ListPets lists pets visible with the given key.
func (c *Client) ListPets(ctx context.Context, authKey string, filter Filter) (*Response, error) {
	query := url.Values{}
	query.Set("filter", string(filter))

	return c.doRequest(ctx, http.MethodGet, c.endpoints.ListPets(), query, authHeader(authKey), nil, "")
}

// AddNewPet creates a pet with a photo. A nil photo sends the pet fields only.
func (c *Client) AddNewPet(ctx context.Context, authKey string, fields PetFields, photo *openapi_types.File) (*Response, error) {
	body, contentType, err := encodeMultipart(fields, photo)
	if err != nil {
		return nil, fmt.Errorf("encoding new pet: %w", err)
	}

	return c.doRequest(ctx, http.MethodPost, c.endpoints.AddNewPet(), nil, authHeader(authKey), body, contentType)
}

// CreatePetSimple creates a pet without a photo.
func (c *Client) CreatePetSimple(ctx context.Context, authKey string, fields PetFields) (*Response, error) {
	body := strings.NewReader(fields.values().Encode())

	return c.doRequest(ctx, http.MethodPost, c.endpoints.CreatePetSimple(), nil, authHeader(authKey), body, contentTypeForm)
}

// UpdatePetInfo updates a pet. Nil fields are left out of the request.
func (c *Client) UpdatePetInfo(ctx context.Context, authKey, petID string, fields PetFields) (*Response, error) {
	body := strings.NewReader(fields.values().Encode())

	return c.doRequest(ctx, http.MethodPut, c.endpoints.UpdatePet(petID), nil, authHeader(authKey), body, contentTypeForm)
}

// SetPhoto replaces a pet's photo.
func (c *Client) SetPhoto(ctx context.Context, authKey, petID string, photo *openapi_types.File) (*Response, error) {
	if photo == nil {
		return nil, ErrNoPhoto
	}

	body, contentType, err := encodeMultipart(PetFields{}, photo)
	if err != nil {
		return nil, fmt.Errorf("encoding photo: %w", err)
	}

	return c.doRequest(ctx, http.MethodPost, c.endpoints.SetPhoto(petID), nil, authHeader(authKey), body, contentType)
}

// DeletePet deletes a pet. The service answers with an empty body.
func (c *Client) DeletePet(ctx context.Context, authKey, petID string) (*Response, error) {
	return c.doRequest(ctx, http.MethodDelete, c.endpoints.DeletePet(petID), nil, authHeader(authKey), nil, "")
}

func authHeader(authKey string) http.Header {
	header := http.Header{}
	header.Set(headerAuthKey, authKey)

	return header
}

// generateTraceID creates a new W3C trace ID so a failing request can be
// found in the service logs.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// doRequest performs exactly one round trip. Any status is a result.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, header http.Header, body io.Reader, contentType string) (*Response, error) {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=petfriends")
	req.Header.Set("Accept", "application/json")

	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	log := c.logger.WithValues("method", method, "path", path, "traceID", extractTraceID(traceParent))

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		log.Error(err, "http request failed", "duration", duration)
		return nil, fmt.Errorf("http request failed (trace ID: %s): %w", extractTraceID(traceParent), err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error(err, "reading response body", "duration", duration, "status", resp.StatusCode)
		return nil, fmt.Errorf("reading response body (trace ID: %s): %w", extractTraceID(traceParent), err)
	}

	log.V(1).Info("request complete", "status", resp.StatusCode, "duration", duration)

	if c.logResponses && len(respBody) > 0 {
		log.Info("response body", "status", resp.StatusCode, "body", string(respBody))
	}

	return newResponse(req, resp, respBody), nil
}
