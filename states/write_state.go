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

// PostStateBuilder configures storing a state document, merging it with an
// existing document when the LRS supports it.
type PostStateBuilder struct {
	key         stateKey
	state       any
	contentType string
}

// PostState returns an empty builder for the post-state operation.
func PostState() *PostStateBuilder {
	return &PostStateBuilder{}
}

// ActivityID sets the activity the document belongs to.
func (b *PostStateBuilder) ActivityID(iri string) *PostStateBuilder {
	b.key.activityID = iri
	return b
}

// Agent sets the agent the document belongs to.
func (b *PostStateBuilder) Agent(a *statement.Agent) *PostStateBuilder {
	b.key.agent = a
	return b
}

// Registration scopes the document to a registration.
func (b *PostStateBuilder) Registration(id uuid.UUID) *PostStateBuilder {
	b.key.registration = id.String()
	return b
}

// RegistrationString scopes the document to a registration given in textual
// form. The value is validated and normalized at Build time.
func (b *PostStateBuilder) RegistrationString(id string) *PostStateBuilder {
	b.key.registration = id
	return b
}

// StateID sets the document key.
func (b *PostStateBuilder) StateID(id string) *PostStateBuilder {
	b.key.stateID = id
	return b
}

// State sets the document payload. Byte slices and strings are sent as-is;
// other values are marshaled as JSON.
func (b *PostStateBuilder) State(doc any) *PostStateBuilder {
	b.state = doc
	return b
}

// ContentType sets an explicit content type for the payload. When unset the
// request defaults to application/json.
func (b *PostStateBuilder) ContentType(ct string) *PostStateBuilder {
	b.contentType = ct
	return b
}

// Build validates the configuration and produces the request description.
func (b *PostStateBuilder) Build() (*request.Request, error) {
	return buildWriteState(
		http.MethodPost,
		&b.key,
		b.state,
		b.contentType,
	)
}

// PutStateBuilder configures storing a state document, replacing any
// existing document under the same key.
type PutStateBuilder struct {
	key         stateKey
	state       any
	contentType string
}

// PutState returns an empty builder for the put-state operation.
func PutState() *PutStateBuilder {
	return &PutStateBuilder{}
}

// ActivityID sets the activity the document belongs to.
func (b *PutStateBuilder) ActivityID(iri string) *PutStateBuilder {
	b.key.activityID = iri
	return b
}

// Agent sets the agent the document belongs to.
func (b *PutStateBuilder) Agent(a *statement.Agent) *PutStateBuilder {
	b.key.agent = a
	return b
}

// Registration scopes the document to a registration.
func (b *PutStateBuilder) Registration(id uuid.UUID) *PutStateBuilder {
	b.key.registration = id.String()
	return b
}

// RegistrationString scopes the document to a registration given in textual
// form. The value is validated and normalized at Build time.
func (b *PutStateBuilder) RegistrationString(id string) *PutStateBuilder {
	b.key.registration = id
	return b
}

// StateID sets the document key.
func (b *PutStateBuilder) StateID(id string) *PutStateBuilder {
	b.key.stateID = id
	return b
}

// State sets the document payload. Byte slices and strings are sent as-is;
// other values are marshaled as JSON.
func (b *PutStateBuilder) State(doc any) *PutStateBuilder {
	b.state = doc
	return b
}

// ContentType sets an explicit content type for the payload. When unset the
// request defaults to application/json.
func (b *PutStateBuilder) ContentType(ct string) *PutStateBuilder {
	b.contentType = ct
	return b
}

// Build validates the configuration and produces the request description.
func (b *PutStateBuilder) Build() (*request.Request, error) {
	return buildWriteState(
		http.MethodPut,
		&b.key,
		b.state,
		b.contentType,
	)
}

func buildWriteState(
	method string,
	key *stateKey,
	state any,
	contentType string,
) (*request.Request, error) {
	body, err := encodeDocument(state)
	if err != nil {
		return nil, err
	}
	if contentType == "" {
		contentType = "application/json"
	}
	req := &request.Request{
		Method:      method,
		Resource:    Resource,
		Body:        body,
		ContentType: contentType,
	}
	if err := key.appendParams(req, true); err != nil {
		return nil, err
	}
	return req, nil
}
