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
	"fmt"

	"github.com/google/uuid"
)

// Object is implemented by every value that can appear as a statement
// object: Activity, Agent, Group, StatementRef and SubStatement.
type Object interface {
	objectType() string
}

// Activity is the thing the actor interacted with, identified by IRI.
type Activity struct {
	ID         string              `json:"id"`
	Definition *ActivityDefinition `json:"definition,omitempty"`
}

// ActivityDefinition carries the human-readable metadata of an activity.
type ActivityDefinition struct {
	Name        LanguageMap    `json:"name,omitempty"`
	Description LanguageMap    `json:"description,omitempty"`
	Type        string         `json:"type,omitempty"`
	MoreInfo    string         `json:"moreInfo,omitempty"`
	Extensions  map[string]any `json:"extensions,omitempty"`
}

func (Activity) objectType() string { return "Activity" }

// MarshalJSON always emits the objectType discriminator so that an activity
// object is unambiguous on the wire.
func (a Activity) MarshalJSON() ([]byte, error) {
	type alias Activity
	return json.Marshal(struct {
		ObjectType string `json:"objectType"`
		alias
	}{ObjectType: "Activity", alias: alias(a)})
}

// StatementRef points at another statement by id, e.g. from a voiding
// statement.
type StatementRef struct {
	ID uuid.UUID `json:"id"`
}

func (StatementRef) objectType() string { return "StatementRef" }

func (r StatementRef) MarshalJSON() ([]byte, error) {
	type alias StatementRef
	return json.Marshal(struct {
		ObjectType string `json:"objectType"`
		alias
	}{ObjectType: "StatementRef", alias: alias(r)})
}

// SubStatement is a statement nested as the object of another statement. It
// carries no id, stored time or authority of its own and cannot nest further.
type SubStatement struct {
	Actor   Actor    `json:"actor"`
	Verb    *Verb    `json:"verb"`
	Object  Object   `json:"object"`
	Result  *Result  `json:"result,omitempty"`
	Context *Context `json:"context,omitempty"`
}

func (SubStatement) objectType() string { return "SubStatement" }

func (s SubStatement) MarshalJSON() ([]byte, error) {
	type alias SubStatement
	return json.Marshal(struct {
		ObjectType string `json:"objectType"`
		alias
	}{ObjectType: "SubStatement", alias: alias(s)})
}

func (s *SubStatement) UnmarshalJSON(data []byte) error {
	type alias SubStatement
	aux := struct {
		Actor  json.RawMessage `json:"actor"`
		Object json.RawMessage `json:"object"`
		*alias
	}{alias: (*alias)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.Actor) > 0 {
		actor, err := unmarshalActor(aux.Actor)
		if err != nil {
			return err
		}
		s.Actor = actor
	}
	if len(aux.Object) > 0 {
		object, err := unmarshalObject(aux.Object)
		if err != nil {
			return err
		}
		if _, ok := object.(*SubStatement); ok {
			return fmt.Errorf("substatement cannot contain a substatement")
		}
		s.Object = object
	}
	return nil
}

// unmarshalObject decodes a statement object into the concrete type named by
// its objectType discriminator. A missing objectType means an activity.
func unmarshalObject(data []byte) (Object, error) {
	var probe struct {
		ObjectType string `json:"objectType"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	switch probe.ObjectType {
	case "", "Activity":
		var a Activity
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, err
		}
		return &a, nil
	case "Agent":
		var a Agent
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, err
		}
		return &a, nil
	case "Group":
		var g Group
		if err := json.Unmarshal(data, &g); err != nil {
			return nil, err
		}
		return &g, nil
	case "StatementRef":
		var r StatementRef
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return &r, nil
	case "SubStatement":
		var s SubStatement
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
		return &s, nil
	default:
		return nil, fmt.Errorf("unknown object type %q", probe.ObjectType)
	}
}
