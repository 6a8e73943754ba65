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

	"github.com/openlearning-io/goxapi/activities"
	"github.com/openlearning-io/goxapi/statement"
)

// GetActivity retrieves the full activity object the LRS holds for an
// activity IRI.
func (c *Client) GetActivity(
	ctx context.Context,
	b *activities.GetActivityBuilder,
) (*statement.Activity, error) {
	req, err := b.Build()
	if err != nil {
		return nil, err
	}
	var out statement.Activity
	if _, err := c.Do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
