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

// Package activities builds request descriptions for the xAPI activities
// resource: retrieving the full activity object the LRS holds for an
// activity IRI.
package activities

import (
	"net/http"

	"github.com/openlearning-io/goxapi/request"
)

// Resource is the activities resource path relative to the LRS endpoint.
const Resource = "/activities"

// GetActivityBuilder configures retrieval of a full activity object.
type GetActivityBuilder struct {
	activityID string
}

// GetActivity returns an empty builder for the get-activity operation.
func GetActivity() *GetActivityBuilder {
	return &GetActivityBuilder{}
}

// ActivityID sets the IRI of the activity to retrieve.
func (b *GetActivityBuilder) ActivityID(iri string) *GetActivityBuilder {
	b.activityID = iri
	return b
}

// Build validates the configuration and produces the request description.
func (b *GetActivityBuilder) Build() (*request.Request, error) {
	if b.activityID == "" {
		return nil, request.ValidationError{Field: "activityId"}
	}
	req := &request.Request{
		Method:   http.MethodGet,
		Resource: Resource,
	}
	req.AddParam("activityId", b.activityID)
	return req, nil
}
