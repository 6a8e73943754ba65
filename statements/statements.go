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

// Package statements builds request descriptions for the xAPI statements
// resource: retrieving single or voided statements, querying with filters,
// posting one or more statements, and following "more" continuation
// references. Builders accumulate optional fields and validate required ones
// at Build time.
package statements

import (
	"github.com/google/uuid"

	"github.com/openlearning-io/goxapi/request"
)

// Resource is the statements resource path relative to the LRS endpoint.
const Resource = "/statements"

// normalizeID validates a statement id given in textual form and normalizes
// it to the canonical lowercase-hyphenated representation.
func normalizeID(field string, value string) (string, error) {
	if value == "" {
		return "", request.ValidationError{Field: field}
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return "", request.ValidationError{
			Field:  field,
			Reason: "not a valid UUID: " + err.Error(),
		}
	}
	return id.String(), nil
}
