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

package goxapi

import (
	"log/slog"
	"net/http"
)

// ClientOptionFunc is a type that represents functions that modify the Client config
type ClientOptionFunc func(*Client)

// WithEndpoint specifies the LRS endpoint, e.g. https://lrs.example.com/xapi.
// Resource paths are appended to it. An endpoint is required
func WithEndpoint(endpoint string) ClientOptionFunc {
	return func(c *Client) {
		c.endpointRaw = endpoint
	}
}

// WithHTTPClient specifies an existing HTTP client to use, e.g. one carrying
// an authenticating transport. If none is provided, a default client with a
// 30s timeout is created
func WithHTTPClient(httpClient *http.Client) ClientOptionFunc {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithUserAgent specifies the User-Agent header sent on every request
func WithUserAgent(userAgent string) ClientOptionFunc {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger specifies the logger for request dispatch debug logging. If
// none is provided, slog.Default() is used
func WithLogger(logger *slog.Logger) ClientOptionFunc {
	return func(c *Client) {
		c.logger = logger
	}
}
