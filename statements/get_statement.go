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

package statements

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/openlearning-io/goxapi/request"
	"github.com/openlearning-io/goxapi/statement"
)

// GetStatementBuilder configures retrieval of a single statement by id.
type GetStatementBuilder struct {
	id          string
	attachments *bool
	format      statement.Format
}

// GetStatement returns an empty builder for the get-statement operation.
func GetStatement() *GetStatementBuilder {
	return &GetStatementBuilder{}
}

// ID sets the statement id.
func (b *GetStatementBuilder) ID(id uuid.UUID) *GetStatementBuilder {
	b.id = id.String()
	return b
}

// IDString sets the statement id from its textual form. The value is
// validated and normalized at Build time.
func (b *GetStatementBuilder) IDString(id string) *GetStatementBuilder {
	b.id = id
	return b
}

// Attachments requests attachment content to be included in the response.
func (b *GetStatementBuilder) Attachments(v bool) *GetStatementBuilder {
	b.attachments = &v
	return b
}

// Format sets the rendering format of the returned statement.
func (b *GetStatementBuilder) Format(f statement.Format) *GetStatementBuilder {
	b.format = f
	return b
}

// Build validates the configuration and produces the request description.
func (b *GetStatementBuilder) Build() (*request.Request, error) {
	return buildGetStatement("statementId", b.id, b.attachments, b.format)
}

// GetVoidedStatementBuilder configures retrieval of a voided statement. It
// hits the same resource as GetStatementBuilder, distinguished only by the
// voidedStatementId parameter name.
type GetVoidedStatementBuilder struct {
	id          string
	attachments *bool
	format      statement.Format
}

// GetVoidedStatement returns an empty builder for the get-voided-statement
// operation.
func GetVoidedStatement() *GetVoidedStatementBuilder {
	return &GetVoidedStatementBuilder{}
}

// ID sets the voided statement id.
func (b *GetVoidedStatementBuilder) ID(id uuid.UUID) *GetVoidedStatementBuilder {
	b.id = id.String()
	return b
}

// IDString sets the voided statement id from its textual form. The value is
// validated and normalized at Build time.
func (b *GetVoidedStatementBuilder) IDString(id string) *GetVoidedStatementBuilder {
	b.id = id
	return b
}

// Attachments requests attachment content to be included in the response.
func (b *GetVoidedStatementBuilder) Attachments(v bool) *GetVoidedStatementBuilder {
	b.attachments = &v
	return b
}

// Format sets the rendering format of the returned statement.
func (b *GetVoidedStatementBuilder) Format(f statement.Format) *GetVoidedStatementBuilder {
	b.format = f
	return b
}

// Build validates the configuration and produces the request description.
func (b *GetVoidedStatementBuilder) Build() (*request.Request, error) {
	return buildGetStatement("voidedStatementId", b.id, b.attachments, b.format)
}

func buildGetStatement(
	idParam string,
	id string,
	attachments *bool,
	format statement.Format,
) (*request.Request, error) {
	normalized, err := normalizeID(idParam, id)
	if err != nil {
		return nil, err
	}
	req := &request.Request{
		Method:   http.MethodGet,
		Resource: Resource,
	}
	req.AddParam(idParam, normalized)
	if attachments != nil {
		req.AddParam("attachments", strconv.FormatBool(*attachments))
	}
	if format != "" {
		req.AddParam("format", string(format))
	}
	return req, nil
}
