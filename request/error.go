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

package request

import "fmt"

// ValidationError indicates that a required builder field is unset or
// structurally invalid. It is detected before any network activity and is
// never worth retrying.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid request: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid request: missing required field %q", e.Field)
}

// EncodingError indicates that a value could not be canonically encoded for
// the wire, e.g. an agent with zero or multiple identifiers.
type EncodingError struct {
	Reason string
}

func (e EncodingError) Error() string {
	return "encoding failed: " + e.Reason
}

// ClientError represents a non-2xx response below 500: the request was
// rejected by the LRS, the addressed resource does not exist, or a redirect
// could not be followed.
type ClientError struct {
	StatusCode int
	Body       []byte
}

func (e ClientError) Error() string {
	return fmt.Sprintf("LRS rejected request: status %d", e.StatusCode)
}

// ServerError represents a 5xx response. Retrying is a caller decision; the
// client never retries on its own.
type ServerError struct {
	StatusCode int
	Body       []byte
}

func (e ServerError) Error() string {
	return fmt.Sprintf("LRS server failure: status %d", e.StatusCode)
}

// TransportError represents a failure below HTTP semantics: connection
// refused, timeout, or a malformed response.
type TransportError struct {
	Err error
}

func (e TransportError) Error() string {
	return "transport failure: " + e.Err.Error()
}

func (e TransportError) Unwrap() error {
	return e.Err
}

// DecodingError indicates that a response body did not match the result type
// declared by the operation.
type DecodingError struct {
	Err error
}

func (e DecodingError) Error() string {
	return "response decoding failed: " + e.Err.Error()
}

func (e DecodingError) Unwrap() error {
	return e.Err
}
