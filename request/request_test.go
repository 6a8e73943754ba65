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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryStringPreservesInsertionOrder(t *testing.T) {
	req := &Request{Method: "GET", Resource: "/statements"}
	req.AddParam("verb", "http://adlnet.gov/expapi/verbs/answered")
	req.AddParam("limit", "10")
	req.AddParam("ascending", "true")
	assert.Equal(
		t,
		"verb=http%3A%2F%2Fadlnet.gov%2Fexpapi%2Fverbs%2Fanswered&limit=10&ascending=true",
		req.QueryString(),
	)
}

func TestQueryStringEmpty(t *testing.T) {
	req := &Request{Method: "GET", Resource: "/statements"}
	assert.Equal(t, "", req.QueryString())
	assert.Equal(t, "/statements", req.URL())
}

func TestURLAppendsQueryString(t *testing.T) {
	req := &Request{Method: "GET", Resource: "/activities/state"}
	req.AddParam("activityId", "https://example.com/activity/1")
	req.AddParam("stateId", "bookmark")
	assert.Equal(
		t,
		"/activities/state?activityId=https%3A%2F%2Fexample.com%2Factivity%2F1&stateId=bookmark",
		req.URL(),
	)
}
