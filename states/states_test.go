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

package states

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlearning-io/goxapi/request"
	"github.com/openlearning-io/goxapi/statement"
)

const (
	testActivityID   = "https://example.com/activity/1"
	testRegistration = "67828e3a-d116-4e18-8af3-2d2c59e27be6"

	encodedKey = "activityId=https%3A%2F%2Fexample.com%2Factivity%2F1" +
		"&agent=%7B%22name%22%3A%22A%20N%20Other%22%2C%22mbox%22%3A%22mailto%3Aanother%40example.com%22%7D"
)

func testAgent() *statement.Agent {
	return &statement.Agent{
		Name: "A N Other",
		Mbox: "mailto:another@example.com",
	}
}

func TestGetStateBuild(t *testing.T) {
	req, err := GetState().
		ActivityID(testActivityID).
		Agent(testAgent()).
		RegistrationString(testRegistration).
		StateID("bookmark").
		Build()
	require.NoError(t, err)
	assert.Equal(t, "GET", req.Method)
	assert.Equal(
		t,
		"/activities/state?"+encodedKey+
			"&registration="+testRegistration+
			"&stateId=bookmark",
		req.URL(),
	)
}

func TestGetStateWithoutRegistration(t *testing.T) {
	req, err := GetState().
		ActivityID(testActivityID).
		Agent(testAgent()).
		StateID("bookmark").
		Build()
	require.NoError(t, err)
	assert.Equal(
		t,
		"/activities/state?"+encodedKey+"&stateId=bookmark",
		req.URL(),
	)
}

func TestGetStateMissingFields(t *testing.T) {
	cases := []struct {
		name    string
		builder *GetStateBuilder
		field   string
	}{
		{
			name: "activityId",
			builder: GetState().
				Agent(testAgent()).
				StateID("bookmark"),
			field: "activityId",
		},
		{
			name: "agent",
			builder: GetState().
				ActivityID(testActivityID).
				StateID("bookmark"),
			field: "agent",
		},
		{
			name: "stateId",
			builder: GetState().
				ActivityID(testActivityID).
				Agent(testAgent()),
			field: "stateId",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.builder.Build()
			var valErr request.ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tc.field, valErr.Field)
		})
	}
}

func TestGetStateRejectsMalformedRegistration(t *testing.T) {
	_, err := GetState().
		ActivityID(testActivityID).
		Agent(testAgent()).
		RegistrationString("not-a-uuid").
		StateID("bookmark").
		Build()
	var valErr request.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "registration", valErr.Field)
}

func TestPutStateDefaultsContentType(t *testing.T) {
	req, err := PutState().
		ActivityID(testActivityID).
		Agent(testAgent()).
		StateID("bookmark").
		State(map[string]string{"page": "12"}).
		Build()
	require.NoError(t, err)
	assert.Equal(t, "PUT", req.Method)
	assert.Equal(t, "application/json", req.ContentType)
	assert.Equal(t, `{"page":"12"}`, string(req.Body))
}

func TestPutStateExplicitContentType(t *testing.T) {
	req, err := PutState().
		ActivityID(testActivityID).
		Agent(testAgent()).
		StateID("bookmark").
		State("chapter 3").
		ContentType("text/plain").
		Build()
	require.NoError(t, err)
	assert.Equal(t, "text/plain", req.ContentType)
	assert.Equal(t, "chapter 3", string(req.Body))
}

func TestPutStateRawBytesPassThrough(t *testing.T) {
	raw := []byte{0x01, 0x02, 0x03}
	req, err := PutState().
		ActivityID(testActivityID).
		Agent(testAgent()).
		StateID("blob").
		State(raw).
		ContentType("application/octet-stream").
		Build()
	require.NoError(t, err)
	assert.Equal(t, raw, req.Body)
}

func TestPutStateRequiresDocument(t *testing.T) {
	_, err := PutState().
		ActivityID(testActivityID).
		Agent(testAgent()).
		StateID("bookmark").
		Build()
	var valErr request.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "state", valErr.Field)
}

func TestPostStateBuild(t *testing.T) {
	req, err := PostState().
		ActivityID(testActivityID).
		Agent(testAgent()).
		StateID("bookmark").
		State(map[string]string{"page": "12"}).
		Build()
	require.NoError(t, err)
	assert.Equal(t, "POST", req.Method)
	assert.Equal(
		t,
		"/activities/state?"+encodedKey+"&stateId=bookmark",
		req.URL(),
	)
}

func TestDeleteStateBuild(t *testing.T) {
	req, err := DeleteState().
		ActivityID(testActivityID).
		Agent(testAgent()).
		StateID("bookmark").
		Build()
	require.NoError(t, err)
	assert.Equal(t, "DELETE", req.Method)
	assert.Equal(
		t,
		"/activities/state?"+encodedKey+"&stateId=bookmark",
		req.URL(),
	)
}

func TestGetStatesBuild(t *testing.T) {
	req, err := GetStates().
		ActivityID(testActivityID).
		Agent(testAgent()).
		RegistrationString(testRegistration).
		Build()
	require.NoError(t, err)
	assert.Equal(t, "GET", req.Method)
	assert.Equal(
		t,
		"/activities/state?"+encodedKey+
			"&registration="+testRegistration,
		req.URL(),
	)
}

func TestDeleteStatesBuild(t *testing.T) {
	req, err := DeleteStates().
		ActivityID(testActivityID).
		Agent(testAgent()).
		Build()
	require.NoError(t, err)
	assert.Equal(t, "DELETE", req.Method)
	assert.Equal(t, "/activities/state?"+encodedKey, req.URL())
}
