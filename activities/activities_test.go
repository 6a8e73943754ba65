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

package activities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlearning-io/goxapi/request"
)

func TestGetActivityBuild(t *testing.T) {
	req, err := GetActivity().
		ActivityID("https://example.com/activity/simplestatement").
		Build()
	require.NoError(t, err)
	assert.Equal(t, "GET", req.Method)
	assert.Equal(
		t,
		"/activities?activityId=https%3A%2F%2Fexample.com%2Factivity%2Fsimplestatement",
		req.URL(),
	)
}

func TestGetActivityRequiresActivityID(t *testing.T) {
	_, err := GetActivity().Build()
	var valErr request.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "activityId", valErr.Field)
}
