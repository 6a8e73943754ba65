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

	"github.com/openlearning-io/goxapi/request"
	"github.com/openlearning-io/goxapi/states"
)

// GetState retrieves a single state document. State documents are opaque:
// pass a *[]byte or *string sink for raw content, or a pointer to any
// JSON-decodable value for application/json documents. The returned response
// carries the content type the LRS served.
func (c *Client) GetState(
	ctx context.Context,
	b *states.GetStateBuilder,
	out any,
) (*request.Response, error) {
	req, err := b.Build()
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, req, out)
}

// PostState stores a state document, merging with an existing document when
// the LRS supports it. A 204 response is success with no body.
func (c *Client) PostState(
	ctx context.Context,
	b *states.PostStateBuilder,
) error {
	req, err := b.Build()
	if err != nil {
		return err
	}
	_, err = c.Do(ctx, req, nil)
	return err
}

// PutState stores a state document, replacing any existing document under
// the same key. A 204 response is success with no body.
func (c *Client) PutState(
	ctx context.Context,
	b *states.PutStateBuilder,
) error {
	req, err := b.Build()
	if err != nil {
		return err
	}
	_, err = c.Do(ctx, req, nil)
	return err
}

// DeleteState deletes a single state document.
func (c *Client) DeleteState(
	ctx context.Context,
	b *states.DeleteStateBuilder,
) error {
	req, err := b.Build()
	if err != nil {
		return err
	}
	_, err = c.Do(ctx, req, nil)
	return err
}

// GetStates retrieves the ids of all state documents stored under an
// (activity, agent, registration) tuple.
func (c *Client) GetStates(
	ctx context.Context,
	b *states.GetStatesBuilder,
) ([]string, error) {
	req, err := b.Build()
	if err != nil {
		return nil, err
	}
	var ids []string
	if _, err := c.Do(ctx, req, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// DeleteStates deletes all state documents stored under an (activity, agent,
// registration) tuple.
func (c *Client) DeleteStates(
	ctx context.Context,
	b *states.DeleteStatesBuilder,
) error {
	req, err := b.Build()
	if err != nil {
		return err
	}
	_, err = c.Do(ctx, req, nil)
	return err
}
