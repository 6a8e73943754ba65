// Copyright 2024 OpenLearning Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package goxapi implements a client for the xAPI specification: recording
// and querying learning statements and state documents against a remote
// Learning Record Store (LRS).
//
// Request descriptions are produced by the builders in the statements and
// states packages and executed by Client. The Client is stateless and safe
// for concurrent use; builders are single-owner accumulators and must not be
// shared between goroutines while being configured.
package goxapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/openlearning-io/goxapi/request"
)

// ExperienceAPIVersion is the xAPI version advertised on every request.
const ExperienceAPIVersion = "1.0.3"

const defaultTimeout = 30 * time.Second

// Client executes xAPI requests against a configured LRS endpoint. Create
// one with New and share it freely; every operation is a single independent
// unit of work with no client-side batching, caching or retries.
type Client struct {
	endpointRaw string
	endpoint    *url.URL
	httpClient  *http.Client
	userAgent   string
	logger      *slog.Logger
}

// New creates a Client from the given options. An endpoint is required.
func New(options ...ClientOptionFunc) (*Client, error) {
	c := &Client{}
	for _, option := range options {
		option(c)
	}
	if c.endpointRaw == "" {
		return nil, errors.New("no LRS endpoint specified")
	}
	endpoint, err := url.Parse(c.endpointRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid LRS endpoint: %w", err)
	}
	if endpoint.Scheme != "http" && endpoint.Scheme != "https" {
		return nil, fmt.Errorf(
			"invalid LRS endpoint: unsupported scheme %q",
			endpoint.Scheme,
		)
	}
	c.endpoint = endpoint
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c, nil
}

// Endpoint returns the configured LRS endpoint.
func (c *Client) Endpoint() *url.URL {
	return c.endpoint
}

// Do executes a request description against the LRS. When out is non-nil
// and the response carries a body, the body is decoded into out: raw for
// *[]byte and *string sinks, JSON otherwise. Non-2xx statuses surface as
// request.ClientError or request.ServerError, failures below HTTP semantics
// as request.TransportError, and undecodable bodies as
// request.DecodingError.
func (c *Client) Do(
	ctx context.Context,
	req *request.Request,
	out any,
) (*request.Response, error) {
	httpReq, err := c.buildHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	c.logger.Debug(
		"dispatching xAPI request",
		"method", req.Method,
		"url", httpReq.URL.String(),
	)
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, request.TransportError{Err: err}
	}
	defer httpResp.Body.Close()
	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, request.TransportError{Err: err}
	}
	switch {
	case httpResp.StatusCode >= 500:
		return nil, request.ServerError{
			StatusCode: httpResp.StatusCode,
			Body:       body,
		}
	case httpResp.StatusCode >= 300:
		// The transport follows redirects, so a 3xx seen here could not be
		// followed and is classified with the 4xx family.
		return nil, request.ClientError{
			StatusCode: httpResp.StatusCode,
			Body:       body,
		}
	}
	resp := &request.Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       body,
	}
	if out != nil {
		contentType := httpResp.Header.Get("Content-Type")
		if err := decodeBody(contentType, body, out); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

func (c *Client) buildHTTPRequest(
	ctx context.Context,
	req *request.Request,
) (*http.Request, error) {
	var target string
	if req.Opaque {
		// Server-issued continuation locators are dereferenced as-is,
		// resolved against the endpoint when relative.
		ref, err := url.Parse(req.Resource)
		if err != nil {
			return nil, request.ValidationError{
				Field:  "more",
				Reason: "not a valid URI: " + err.Error(),
			}
		}
		target = c.endpoint.ResolveReference(ref).String()
	} else {
		target = strings.TrimSuffix(c.endpoint.String(), "/") + req.URL()
	}
	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, request.TransportError{Err: err}
	}
	httpReq.Header.Set("X-Experience-API-Version", ExperienceAPIVersion)
	if req.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}
	return httpReq, nil
}

// decodeBody hands the raw body to *[]byte and *string sinks and otherwise
// decodes JSON. A non-JSON content type with a typed sink is a decoding
// failure rather than a guess, as is a typed sink with no body to decode.
func decodeBody(contentType string, body []byte, out any) error {
	switch sink := out.(type) {
	case *[]byte:
		*sink = body
		return nil
	case *string:
		*sink = string(body)
		return nil
	}
	if len(body) == 0 {
		return request.DecodingError{
			Err: fmt.Errorf("empty response body, expected %T", out),
		}
	}
	mediaType := ""
	if contentType != "" {
		parsed, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			return request.DecodingError{
				Err: fmt.Errorf("unparseable content type %q: %w", contentType, err),
			}
		}
		mediaType = parsed
	}
	if mediaType != "" && mediaType != "application/json" &&
		!strings.HasSuffix(mediaType, "+json") {
		return request.DecodingError{
			Err: fmt.Errorf("cannot decode %q into %T", mediaType, out),
		}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return request.DecodingError{Err: err}
	}
	return nil
}
