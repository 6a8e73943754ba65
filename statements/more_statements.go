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

	"github.com/openlearning-io/goxapi/request"
)

// MoreStatementsBuilder configures retrieval of the next page of a statement
// query. The continuation reference is a server-issued locator and is
// dereferenced verbatim; no parameters from the original query are
// re-applied.
type MoreStatementsBuilder struct {
	more string
}

// MoreStatements returns an empty builder for the get-more-statements
// operation.
func MoreStatements() *MoreStatementsBuilder {
	return &MoreStatementsBuilder{}
}

// More sets the continuation reference obtained from a prior query result.
func (b *MoreStatementsBuilder) More(ref string) *MoreStatementsBuilder {
	b.more = ref
	return b
}

// Build validates the configuration and produces the request description.
func (b *MoreStatementsBuilder) Build() (*request.Request, error) {
	if b.more == "" {
		return nil, request.ValidationError{Field: "more"}
	}
	return &request.Request{
		Method:   http.MethodGet,
		Resource: b.more,
		Opaque:   true,
	}, nil
}
