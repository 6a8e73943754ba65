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

// Package states builds request descriptions for the xAPI activity state
// resource: opaque per-(activity, agent, registration) documents addressed
// by a string key. Single-document operations require a state id; collection
// operations omit it.
package states

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/openlearning-io/goxapi/request"
	"github.com/openlearning-io/goxapi/statement"
)

// Resource is the activity state resource path relative to the LRS endpoint.
const Resource = "/activities/state"

// stateKey is the composite key shared by every state operation.
type stateKey struct {
	activityID   string
	agent        *statement.Agent
	registration string
	stateID      string
}

// appendParams validates the key and emits its query parameters in the fixed
// order activityId, agent, registration, stateId. The state id is only
// required (and only emitted) for single-document operations.
func (k *stateKey) appendParams(req *request.Request, withStateID bool) error {
	if k.activityID == "" {
		return request.ValidationError{Field: "activityId"}
	}
	if k.agent == nil {
		return request.ValidationError{Field: "agent"}
	}
	encoded, err := request.EncodeAgent(k.agent)
	if err != nil {
		return err
	}
	req.AddParam("activityId", k.activityID)
	req.AddParam("agent", encoded)
	if k.registration != "" {
		registration, err := uuid.Parse(k.registration)
		if err != nil {
			return request.ValidationError{
				Field:  "registration",
				Reason: "not a valid UUID: " + err.Error(),
			}
		}
		req.AddParam("registration", registration.String())
	}
	if withStateID {
		if k.stateID == "" {
			return request.ValidationError{Field: "stateId"}
		}
		req.AddParam("stateId", k.stateID)
	}
	return nil
}

// encodeDocument turns a state document into body bytes. Byte slices and
// strings pass through untouched; anything else is marshaled as JSON. The
// builder never sniffs content: callers supplying non-JSON payloads must set
// the content type explicitly.
func encodeDocument(doc any) ([]byte, error) {
	switch v := doc.(type) {
	case nil:
		return nil, request.ValidationError{Field: "state"}
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		body, err := json.Marshal(v)
		if err != nil {
			return nil, request.EncodingError{Reason: err.Error()}
		}
		return body, nil
	}
}
