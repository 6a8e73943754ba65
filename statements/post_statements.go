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
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/openlearning-io/goxapi/request"
	"github.com/openlearning-io/goxapi/statement"
)

// PostStatementBuilder configures storing a single statement. The LRS
// responds with a one-element array containing the assigned statement id.
type PostStatementBuilder struct {
	statement *statement.Statement
}

// PostStatement returns an empty builder for the post-statement operation.
func PostStatement() *PostStatementBuilder {
	return &PostStatementBuilder{}
}

// Statement sets the statement to store.
func (b *PostStatementBuilder) Statement(s *statement.Statement) *PostStatementBuilder {
	b.statement = s
	return b
}

// Build validates the statement and produces the request description.
func (b *PostStatementBuilder) Build() (*request.Request, error) {
	if b.statement == nil {
		return nil, request.ValidationError{Field: "statement"}
	}
	if err := b.statement.Validate(); err != nil {
		return nil, request.ValidationError{
			Field:  "statement",
			Reason: err.Error(),
		}
	}
	body, err := json.Marshal(b.statement)
	if err != nil {
		return nil, request.EncodingError{Reason: err.Error()}
	}
	return &request.Request{
		Method:      http.MethodPost,
		Resource:    Resource,
		Body:        body,
		ContentType: "application/json",
	}, nil
}

// PostStatementsBuilder configures storing an ordered batch of statements.
// The LRS responds with the assigned ids in the same order; the batch is
// atomic on the LRS side and is never split or partially retried here.
type PostStatementsBuilder struct {
	statements []*statement.Statement
}

// PostStatements returns an empty builder for the post-statements operation.
func PostStatements() *PostStatementsBuilder {
	return &PostStatementsBuilder{}
}

// Statements appends statements to the batch, preserving order.
func (b *PostStatementsBuilder) Statements(ss ...*statement.Statement) *PostStatementsBuilder {
	b.statements = append(b.statements, ss...)
	return b
}

// Build validates every statement and produces the request description. The
// body array order matches the order statements were added.
func (b *PostStatementsBuilder) Build() (*request.Request, error) {
	if len(b.statements) == 0 {
		return nil, request.ValidationError{Field: "statements"}
	}
	for i, s := range b.statements {
		if s == nil {
			return nil, request.ValidationError{
				Field:  fmt.Sprintf("statements[%d]", i),
				Reason: "statement is nil",
			}
		}
		if err := s.Validate(); err != nil {
			return nil, request.ValidationError{
				Field:  fmt.Sprintf("statements[%d]", i),
				Reason: err.Error(),
			}
		}
	}
	body, err := json.Marshal(b.statements)
	if err != nil {
		return nil, request.EncodingError{Reason: err.Error()}
	}
	return &request.Request{
		Method:      http.MethodPost,
		Resource:    Resource,
		Body:        body,
		ContentType: "application/json",
	}, nil
}
