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

// Package request provides the request description consumed by the client
// dispatcher, the canonical encoding of compound query parameter values, and
// the error taxonomy shared by all xAPI operations.
package request

import (
	"net/http"
	"strings"
)

// Param is a single named query parameter. Values are stored unescaped and
// percent-encoded when the query string is rendered.
type Param struct {
	Name  string
	Value string
}

// Request describes a single xAPI call: HTTP method, resource path relative
// to the LRS endpoint, ordered query parameters, optional body and optional
// explicit content type. Builders emit parameters in a fixed order per
// operation so that rendered query strings are deterministic.
type Request struct {
	Method      string
	Resource    string
	Params      []Param
	Body        []byte
	ContentType string
	// Opaque marks Resource as a server-issued locator (a "more" reference)
	// that is dereferenced as-is against the endpoint instead of being
	// appended to the LRS resource path.
	Opaque bool
}

// AddParam appends a query parameter, preserving insertion order.
func (r *Request) AddParam(name string, value string) {
	r.Params = append(r.Params, Param{Name: name, Value: value})
}

// QueryString renders the parameters in insertion order with percent-encoded
// values. An empty string is returned when no parameters are set.
func (r *Request) QueryString() string {
	if len(r.Params) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, p := range r.Params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(p.Name)
		sb.WriteByte('=')
		sb.WriteString(QueryEscape(p.Value))
	}
	return sb.String()
}

// URL returns the resource path with the rendered query string appended.
func (r *Request) URL() string {
	qs := r.QueryString()
	if qs == "" {
		return r.Resource
	}
	return r.Resource + "?" + qs
}

// Response carries the raw result of a dispatched request: HTTP status,
// response headers and the unparsed body.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}
