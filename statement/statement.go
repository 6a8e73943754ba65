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

// Package statement defines the xAPI domain model: statements and the actor,
// verb, object, result and context values they are composed of. All values
// are plain data; validation happens through explicit Validate methods
// invoked by the request builders before anything goes on the wire.
package statement

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Statement is an actor-verb-object record of an experience, the unit the
// LRS stores and serves. Optional fields are omitted from the wire when
// unset.
type Statement struct {
	ID          *uuid.UUID   `json:"id,omitempty"`
	Actor       Actor        `json:"actor"`
	Verb        *Verb        `json:"verb"`
	Object      Object       `json:"object"`
	Result      *Result      `json:"result,omitempty"`
	Context     *Context     `json:"context,omitempty"`
	Timestamp   *time.Time   `json:"timestamp,omitempty"`
	Stored      *time.Time   `json:"stored,omitempty"`
	Authority   Actor        `json:"authority,omitempty"`
	Version     string       `json:"version,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

func (s *Statement) UnmarshalJSON(data []byte) error {
	type alias Statement
	aux := struct {
		Actor     json.RawMessage `json:"actor"`
		Object    json.RawMessage `json:"object"`
		Authority json.RawMessage `json:"authority"`
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
		s.Object = object
	}
	if len(aux.Authority) > 0 {
		authority, err := unmarshalActor(aux.Authority)
		if err != nil {
			return err
		}
		s.Authority = authority
	}
	return nil
}

// Validate checks that the statement carries the mandatory actor, verb and
// object and that the actor is structurally sound.
func (s *Statement) Validate() error {
	if s.Actor == nil {
		return errors.New("statement actor is required")
	}
	switch actor := s.Actor.(type) {
	case *Agent:
		if err := actor.Validate(); err != nil {
			return err
		}
	case *Group:
		if err := actor.Validate(); err != nil {
			return err
		}
	}
	if s.Verb == nil || s.Verb.ID == "" {
		return errors.New("statement verb is required")
	}
	if s.Object == nil {
		return errors.New("statement object is required")
	}
	if activity, ok := s.Object.(*Activity); ok && activity.ID == "" {
		return errors.New("statement activity object has no id")
	}
	return nil
}

// Clone returns a deep copy of the statement. Useful for templating: build a
// base statement once, then clone and adjust per experience.
func (s *Statement) Clone() (*Statement, error) {
	var out Statement
	if err := copier.CopyWithOption(
		&out,
		s,
		copier.Option{DeepCopy: true},
	); err != nil {
		return nil, fmt.Errorf("clone statement: %w", err)
	}
	return &out, nil
}

// StatementResult is one page of a statement query: the statements plus an
// optional opaque continuation reference for the next page.
type StatementResult struct {
	Statements []Statement `json:"statements"`
	More       string      `json:"more,omitempty"`
}
