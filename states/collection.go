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
	"net/http"

	"github.com/google/uuid"

	"github.com/openlearning-io/goxapi/request"
	"github.com/openlearning-io/goxapi/statement"
)

// GetStatesBuilder configures retrieval of the ids of all state documents
// stored under an (activity, agent, registration) tuple.
type GetStatesBuilder struct {
	key stateKey
}

// GetStates returns an empty builder for the get-states operation.
func GetStates() *GetStatesBuilder {
	return &GetStatesBuilder{}
}

// ActivityID sets the activity the documents belong to.
func (b *GetStatesBuilder) ActivityID(iri string) *GetStatesBuilder {
	b.key.activityID = iri
	return b
}

// Agent sets the agent the documents belong to.
func (b *GetStatesBuilder) Agent(a *statement.Agent) *GetStatesBuilder {
	b.key.agent = a
	return b
}

// Registration scopes the collection to a registration.
func (b *GetStatesBuilder) Registration(id uuid.UUID) *GetStatesBuilder {
	b.key.registration = id.String()
	return b
}

// RegistrationString scopes the collection to a registration given in
// textual form. The value is validated and normalized at Build time.
func (b *GetStatesBuilder) RegistrationString(id string) *GetStatesBuilder {
	b.key.registration = id
	return b
}

// Build validates the configuration and produces the request description.
func (b *GetStatesBuilder) Build() (*request.Request, error) {
	req := &request.Request{
		Method:   http.MethodGet,
		Resource: Resource,
	}
	if err := b.key.appendParams(req, false); err != nil {
		return nil, err
	}
	return req, nil
}

// DeleteStatesBuilder configures deletion of all state documents stored
// under an (activity, agent, registration) tuple.
type DeleteStatesBuilder struct {
	key stateKey
}

// DeleteStates returns an empty builder for the delete-states operation.
func DeleteStates() *DeleteStatesBuilder {
	return &DeleteStatesBuilder{}
}

// ActivityID sets the activity the documents belong to.
func (b *DeleteStatesBuilder) ActivityID(iri string) *DeleteStatesBuilder {
	b.key.activityID = iri
	return b
}

// Agent sets the agent the documents belong to.
func (b *DeleteStatesBuilder) Agent(a *statement.Agent) *DeleteStatesBuilder {
	b.key.agent = a
	return b
}

// Registration scopes the collection to a registration.
func (b *DeleteStatesBuilder) Registration(id uuid.UUID) *DeleteStatesBuilder {
	b.key.registration = id.String()
	return b
}

// RegistrationString scopes the collection to a registration given in
// textual form. The value is validated and normalized at Build time.
func (b *DeleteStatesBuilder) RegistrationString(id string) *DeleteStatesBuilder {
	b.key.registration = id
	return b
}

// Build validates the configuration and produces the request description.
func (b *DeleteStatesBuilder) Build() (*request.Request, error) {
	req := &request.Request{
		Method:   http.MethodDelete,
		Resource: Resource,
	}
	if err := b.key.appendParams(req, false); err != nil {
		return nil, err
	}
	return req, nil
}
