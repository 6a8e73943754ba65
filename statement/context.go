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

	"github.com/google/uuid"
)

// ContextActivities relates a statement to other activities: parents,
// groupings, categories (e.g. profiles) and anything else.
type ContextActivities struct {
	Parent   []Activity `json:"parent,omitempty"`
	Grouping []Activity `json:"grouping,omitempty"`
	Category []Activity `json:"category,omitempty"`
	Other    []Activity `json:"other,omitempty"`
}

// Context carries circumstances of a statement: the registration it belongs
// to, the instructor, the team, related activities and platform details.
type Context struct {
	Registration      *uuid.UUID         `json:"registration,omitempty"`
	Instructor        Actor              `json:"instructor,omitempty"`
	Team              *Group             `json:"team,omitempty"`
	ContextActivities *ContextActivities `json:"contextActivities,omitempty"`
	Revision          string             `json:"revision,omitempty"`
	Platform          string             `json:"platform,omitempty"`
	Language          string             `json:"language,omitempty"`
	Statement         *StatementRef      `json:"statement,omitempty"`
	Extensions        map[string]any     `json:"extensions,omitempty"`
}

func (c *Context) UnmarshalJSON(data []byte) error {
	type alias Context
	aux := struct {
		Instructor json.RawMessage `json:"instructor"`
		*alias
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.Instructor) > 0 {
		instructor, err := unmarshalActor(aux.Instructor)
		if err != nil {
			return err
		}
		c.Instructor = instructor
	}
	return nil
}
