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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlearning-io/goxapi/statement"
)

func TestEncodeAgentPinsFieldOrder(t *testing.T) {
	agent := &statement.Agent{
		Name: "A N Other",
		Mbox: "mailto:another@example.com",
	}
	encoded, err := EncodeAgent(agent)
	require.NoError(t, err)
	assert.Equal(
		t,
		`{"name":"A N Other","mbox":"mailto:another@example.com"}`,
		encoded,
	)
}

func TestEncodeAgentIsDeterministic(t *testing.T) {
	first := &statement.Agent{
		Name: "A N Other",
		Mbox: "mailto:another@example.com",
	}
	// Same field values assigned in the reverse order.
	second := &statement.Agent{}
	second.Mbox = "mailto:another@example.com"
	second.Name = "A N Other"

	encodedFirst, err := EncodeAgent(first)
	require.NoError(t, err)
	encodedAgain, err := EncodeAgent(first)
	require.NoError(t, err)
	encodedSecond, err := EncodeAgent(second)
	require.NoError(t, err)

	assert.Equal(t, encodedFirst, encodedAgain)
	assert.Equal(t, encodedFirst, encodedSecond)
}

func TestEncodeAgentAccount(t *testing.T) {
	agent := &statement.Agent{
		Name: "A N Other",
		Account: &statement.Account{
			HomePage: "https://example.com",
			Name:     "another",
		},
	}
	encoded, err := EncodeAgent(agent)
	require.NoError(t, err)
	assert.Equal(
		t,
		`{"name":"A N Other","account":{"homePage":"https://example.com","name":"another"}}`,
		encoded,
	)
}

func TestEncodeAgentNoIdentifier(t *testing.T) {
	_, err := EncodeAgent(&statement.Agent{Name: "A N Other"})
	var encErr EncodingError
	require.ErrorAs(t, err, &encErr)
}

func TestEncodeAgentMultipleIdentifiers(t *testing.T) {
	_, err := EncodeAgent(&statement.Agent{
		Mbox:   "mailto:another@example.com",
		OpenID: "https://openid.example.com/another",
	})
	var encErr EncodingError
	require.ErrorAs(t, err, &encErr)
}

func TestEncodeAgentNil(t *testing.T) {
	_, err := EncodeAgent(nil)
	var encErr EncodingError
	require.ErrorAs(t, err, &encErr)
}

func TestEncodeInstant(t *testing.T) {
	assert.Equal(
		t,
		"2016-01-01T00:00:00Z",
		EncodeInstant(time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)),
	)
}

func TestEncodeInstantConvertsToUTC(t *testing.T) {
	zone := time.FixedZone("CET", 3600)
	assert.Equal(
		t,
		"2016-01-01T00:00:00Z",
		EncodeInstant(time.Date(2016, 1, 1, 1, 0, 0, 0, zone)),
	)
}

func TestEncodeInstantDropsFractionalSeconds(t *testing.T) {
	assert.Equal(
		t,
		"2018-01-01T00:00:00Z",
		EncodeInstant(time.Date(2018, 1, 1, 0, 0, 0, 123456789, time.UTC)),
	)
}

func TestQueryEscapeSpaceIsPercent20(t *testing.T) {
	assert.Equal(t, "A%20N%20Other", QueryEscape("A N Other"))
}

func TestQueryEscapeReservedCharacters(t *testing.T) {
	assert.Equal(
		t,
		"https%3A%2F%2Fexample.com%2Factivity%2F1",
		QueryEscape("https://example.com/activity/1"),
	)
	assert.Equal(
		t,
		"%7B%22name%22%3A%22A%20N%20Other%22%2C%22mbox%22%3A%22mailto%3Aanother%40example.com%22%7D",
		QueryEscape(`{"name":"A N Other","mbox":"mailto:another@example.com"}`),
	)
}
