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

package petfriends

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// Response is what the service answered to a single request.
type Response struct {
	// StatusCode is the HTTP status, surfaced verbatim.
	StatusCode int
	// Header holds the response headers.
	Header http.Header
	// Body is the decoded JSON object. It is empty, never nil, when the
	// body was empty or was not a JSON object (e.g. an HTML error page).
	Body map[string]interface{}
	// Text is the raw response body.
	Text string
	// Request is the request that produced this response. Its body has
	// already been consumed.
	Request *http.Request
}

func newResponse(req *http.Request, resp *http.Response, raw []byte) *Response {
	r := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       map[string]interface{}{},
		Text:       string(raw),
		Request:    req,
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return r
	}

	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err == nil && body != nil {
		r.Body = body
	}

	return r
}

// Has reports whether the decoded body has the given top level key.
func (r *Response) Has(key string) bool {
	_, ok := r.Body[key]
	return ok
}

// String returns a top level string field, or "" when it is absent or
// not a string.
func (r *Response) String(key string) string {
	s, _ := r.Body[key].(string)
	return s
}

// Key returns the auth key issued by GetAPIKey.
func (r *Response) Key() string {
	return r.String("key")
}

// Name returns the pet name in a single pet response.
func (r *Response) Name() string {
	return r.String("name")
}

// PetPhoto returns the photo data URI in a single pet response.
func (r *Response) PetPhoto() string {
	return r.String("pet_photo")
}

// Pet decodes the body as a single pet.
func (r *Response) Pet() (*Pet, error) {
	var pet Pet
	if err := json.Unmarshal([]byte(r.Text), &pet); err != nil {
		return nil, fmt.Errorf("unmarshaling pet response (status %d): %w", r.StatusCode, err)
	}

	return &pet, nil
}

// Pets decodes the body as a pet listing.
func (r *Response) Pets() ([]Pet, error) {
	var list PetList
	if err := json.Unmarshal([]byte(r.Text), &list); err != nil {
		return nil, fmt.Errorf("unmarshaling pets response (status %d): %w", r.StatusCode, err)
	}

	if list.Pets == nil {
		return nil, fmt.Errorf("%w: pets response has no pets field (status %d)", ErrUnexpectedPayload, r.StatusCode)
	}

	return list.Pets, nil
}
