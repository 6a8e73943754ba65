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

package statement

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentValidate(t *testing.T) {
	assert.NoError(
		t,
		(&Agent{Mbox: "mailto:another@example.com"}).Validate(),
	)
	assert.NoError(
		t,
		(&Agent{Account: &Account{HomePage: "https://example.com", Name: "another"}}).Validate(),
	)
	assert.Error(t, (&Agent{Name: "A N Other"}).Validate())
	assert.Error(
		t,
		(&Agent{
			Mbox:   "mailto:another@example.com",
			OpenID: "https://openid.example.com/another",
		}).Validate(),
	)
}

func TestMboxSHA1(t *testing.T) {
	assert.Equal(
		t,
		"61d9357ce6e8ebe3f188991cd054a6dc02e94f66",
		MboxSHA1("mailto:another@example.com"),
	)
}

func TestGroupMarshalEmitsObjectType(t *testing.T) {
	group := Group{
		Name:   "Team",
		Member: []Agent{{Mbox: "mailto:another@example.com"}},
	}
	data, err := json.Marshal(group)
	require.NoError(t, err)
	assert.Equal(
		t,
		`{"objectType":"Group","name":"Team","member":[{"mbox":"mailto:another@example.com"}]}`,
		string(data),
	)
}

func TestGroupValidate(t *testing.T) {
	identified := &Group{Mbox: "mailto:team@example.com"}
	assert.NoError(t, identified.Validate())

	anonymous := &Group{Member: []Agent{{Mbox: "mailto:another@example.com"}}}
	assert.NoError(t, anonymous.Validate())

	empty := &Group{Name: "Team"}
	assert.Error(t, empty.Validate())

	twoIdentifiers := &Group{
		Mbox:   "mailto:team@example.com",
		OpenID: "https://openid.example.com/team",
	}
	assert.Error(t, twoIdentifiers.Validate())

	badMember := &Group{Member: []Agent{{Name: "No Identifier"}}}
	assert.Error(t, badMember.Validate())
}

func TestUnmarshalActor(t *testing.T) {
	actor, err := unmarshalActor(
		[]byte(`{"mbox":"mailto:another@example.com"}`),
	)
	require.NoError(t, err)
	agent, ok := actor.(*Agent)
	require.True(t, ok)
	assert.Equal(t, "mailto:another@example.com", agent.Mbox)

	actor, err = unmarshalActor(
		[]byte(`{"objectType":"Group","member":[{"mbox":"mailto:another@example.com"}]}`),
	)
	require.NoError(t, err)
	_, ok = actor.(*Group)
	assert.True(t, ok)
}
