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

// Package test provides helpers shared by goxapi package tests.
package test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// RecordedRequest captures a single request received by the mock LRS.
type RecordedRequest struct {
	Method string
	// Path is the request target exactly as received, path plus raw query.
	Path        string
	ContentType string
	Header      http.Header
	Body        []byte
}

// CannedResponse is a response the mock LRS replays.
type CannedResponse struct {
	Status      int
	ContentType string
	Body        string
}

// MockLRS is an httptest-backed LRS double. It replays canned responses in
// the order they were enqueued and records every request it receives.
// Requests beyond the queue get an empty 200.
type MockLRS struct {
	mu       sync.Mutex
	server   *httptest.Server
	queue    []CannedResponse
	requests []RecordedRequest
}

// NewMockLRS starts a mock LRS. Callers must Close it.
func NewMockLRS() *MockLRS {
	m := &MockLRS{}
	m.server = httptest.NewServer(http.HandlerFunc(m.handle))
	return m
}

func (m *MockLRS) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	m.mu.Lock()
	m.requests = append(m.requests, RecordedRequest{
		Method:      r.Method,
		Path:        r.RequestURI,
		ContentType: r.Header.Get("Content-Type"),
		Header:      r.Header.Clone(),
		Body:        body,
	})
	var resp CannedResponse
	if len(m.queue) > 0 {
		resp = m.queue[0]
		m.queue = m.queue[1:]
	} else {
		resp = CannedResponse{Status: http.StatusOK}
	}
	m.mu.Unlock()
	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	w.WriteHeader(resp.Status)
	if resp.Body != "" {
		_, _ = io.WriteString(w, resp.Body)
	}
}

// Enqueue appends a canned response to the replay queue.
func (m *MockLRS) Enqueue(resp CannedResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, resp)
}

// URL returns the base URL of the mock LRS.
func (m *MockLRS) URL() string {
	return m.server.URL
}

// HTTPClient returns an HTTP client wired to the mock LRS whose idle
// connections are torn down on Close, keeping leak detection quiet.
func (m *MockLRS) HTTPClient() *http.Client {
	return m.server.Client()
}

// TakeRequest pops the oldest recorded request. The second return value is
// false when no request has been received.
func (m *MockLRS) TakeRequest() (RecordedRequest, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return RecordedRequest{}, false
	}
	req := m.requests[0]
	m.requests = m.requests[1:]
	return req, true
}

// Close shuts the mock LRS down and closes its connections.
func (m *MockLRS) Close() {
	m.server.Client().CloseIdleConnections()
	m.server.CloseClientConnections()
	m.server.Close()
}
