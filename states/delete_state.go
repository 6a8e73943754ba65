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

// DeleteStateBuilder configures deletion of a single state document.
type DeleteStateBuilder struct {
	key stateKey
}

// DeleteState returns an empty builder for the delete-state operation.
func DeleteState() *DeleteStateBuilder {
	return &DeleteStateBuilder{}
}

// ActivityID sets the activity the document belongs to.
func (b *DeleteStateBuilder) ActivityID(iri string) *DeleteStateBuilder {
	b.key.activityID = iri
	return b
}

// Agent sets the agent the document belongs to.
func (b *DeleteStateBuilder) Agent(a *statement.Agent) *DeleteStateBuilder {
	b.key.agent = a
	return b
}

// Registration scopes the document to a registration.
func (b *DeleteStateBuilder) Registration(id uuid.UUID) *DeleteStateBuilder {
	b.key.registration = id.String()
	return b
}

// RegistrationString scopes the document to a registration given in textual
// form. The value is validated and normalized at Build time.
func (b *DeleteStateBuilder) RegistrationString(id string) *DeleteStateBuilder {
	b.key.registration = id
	return b
}

// StateID sets the document key.
func (b *DeleteStateBuilder) StateID(id string) *DeleteStateBuilder {
	b.key.stateID = id
	return b
}

// Build validates the configuration and produces the request description.
func (b *DeleteStateBuilder) Build() (*request.Request, error) {
	req := &request.Request{
		Method:   http.MethodDelete,
		Resource: Resource,
	}
	if err := b.key.appendParams(req, true); err != nil {
		return nil, err
	}
	return req, nil
}
