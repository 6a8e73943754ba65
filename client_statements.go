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

package goxapi

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/openlearning-io/goxapi/request"
	"github.com/openlearning-io/goxapi/statement"
	"github.com/openlearning-io/goxapi/statements"
)

// GetStatement retrieves a single statement.
func (c *Client) GetStatement(
	ctx context.Context,
	b *statements.GetStatementBuilder,
) (*statement.Statement, error) {
	req, err := b.Build()
	if err != nil {
		return nil, err
	}
	var out statement.Statement
	if _, err := c.Do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetVoidedStatement retrieves a single voided statement.
func (c *Client) GetVoidedStatement(
	ctx context.Context,
	b *statements.GetVoidedStatementBuilder,
) (*statement.Statement, error) {
	req, err := b.Build()
	if err != nil {
		return nil, err
	}
	var out statement.Statement
	if _, err := c.Do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetStatements runs a filtered statement query and returns the first page.
// Follow result.More with GetMoreStatements for subsequent pages.
func (c *Client) GetStatements(
	ctx context.Context,
	b *statements.GetStatementsBuilder,
) (*statement.StatementResult, error) {
	req, err := b.Build()
	if err != nil {
		return nil, err
	}
	var out statement.StatementResult
	if _, err := c.Do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetMoreStatements dereferences a continuation reference from a prior query
// result and returns the next page. The reference is treated as opaque: no
// parameters from the original query are re-applied.
func (c *Client) GetMoreStatements(
	ctx context.Context,
	more string,
) (*statement.StatementResult, error) {
	req, err := statements.MoreStatements().More(more).Build()
	if err != nil {
		return nil, err
	}
	var out statement.StatementResult
	if _, err := c.Do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PostStatement stores a single statement and returns the id the LRS
// assigned to it.
func (c *Client) PostStatement(
	ctx context.Context,
	s *statement.Statement,
) (uuid.UUID, error) {
	req, err := statements.PostStatement().Statement(s).Build()
	if err != nil {
		return uuid.Nil, err
	}
	var ids []uuid.UUID
	if _, err := c.Do(ctx, req, &ids); err != nil {
		return uuid.Nil, err
	}
	if len(ids) != 1 {
		return uuid.Nil, request.DecodingError{
			Err: fmt.Errorf("expected 1 statement id in response, got %d", len(ids)),
		}
	}
	return ids[0], nil
}

// PostStatements stores an ordered batch of statements. The returned ids
// correspond index-for-index to the posted statements.
func (c *Client) PostStatements(
	ctx context.Context,
	ss ...*statement.Statement,
) ([]uuid.UUID, error) {
	req, err := statements.PostStatements().Statements(ss...).Build()
	if err != nil {
		return nil, err
	}
	var ids []uuid.UUID
	if _, err := c.Do(ctx, req, &ids); err != nil {
		return nil, err
	}
	if len(ids) != len(ss) {
		return nil, request.DecodingError{
			Err: fmt.Errorf(
				"expected %d statement ids in response, got %d",
				len(ss),
				len(ids),
			),
		}
	}
	return ids, nil
}
