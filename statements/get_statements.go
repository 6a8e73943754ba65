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
	"time"

	"github.com/google/uuid"

	"github.com/openlearning-io/goxapi/request"
	"github.com/openlearning-io/goxapi/statement"
)

// GetStatementsBuilder configures a filtered statement query. Every filter is
// optional; unset filters are omitted from the wire so the LRS applies its
// own defaults.
type GetStatementsBuilder struct {
	agent             *statement.Agent
	verb              string
	activity          string
	registration      string
	relatedActivities *bool
	relatedAgents     *bool
	since             *time.Time
	until             *time.Time
	limit             *int
	format            statement.Format
	attachments       *bool
	ascending         *bool
}

// GetStatements returns an empty builder for the get-statements operation.
func GetStatements() *GetStatementsBuilder {
	return &GetStatementsBuilder{}
}

// Agent filters statements by actor or object agent.
func (b *GetStatementsBuilder) Agent(a *statement.Agent) *GetStatementsBuilder {
	b.agent = a
	return b
}

// Verb filters statements by verb IRI.
func (b *GetStatementsBuilder) Verb(iri string) *GetStatementsBuilder {
	b.verb = iri
	return b
}

// Activity filters statements by activity IRI.
func (b *GetStatementsBuilder) Activity(iri string) *GetStatementsBuilder {
	b.activity = iri
	return b
}

// Registration filters statements by registration.
func (b *GetStatementsBuilder) Registration(id uuid.UUID) *GetStatementsBuilder {
	b.registration = id.String()
	return b
}

// RegistrationString filters statements by registration given in textual
// form. The value is validated and normalized at Build time.
func (b *GetStatementsBuilder) RegistrationString(id string) *GetStatementsBuilder {
	b.registration = id
	return b
}

// RelatedActivities widens the activity filter to related activities.
func (b *GetStatementsBuilder) RelatedActivities(v bool) *GetStatementsBuilder {
	b.relatedActivities = &v
	return b
}

// RelatedAgents widens the agent filter to related agents.
func (b *GetStatementsBuilder) RelatedAgents(v bool) *GetStatementsBuilder {
	b.relatedAgents = &v
	return b
}

// Since filters statements stored after the given instant, exclusive.
func (b *GetStatementsBuilder) Since(t time.Time) *GetStatementsBuilder {
	b.since = &t
	return b
}

// Until filters statements stored at or before the given instant.
func (b *GetStatementsBuilder) Until(t time.Time) *GetStatementsBuilder {
	b.until = &t
	return b
}

// Limit caps the number of statements per page. Zero means no cap.
func (b *GetStatementsBuilder) Limit(n int) *GetStatementsBuilder {
	b.limit = &n
	return b
}

// Format sets the rendering format of the returned statements.
func (b *GetStatementsBuilder) Format(f statement.Format) *GetStatementsBuilder {
	b.format = f
	return b
}

// Attachments requests attachment content to be included in the response.
func (b *GetStatementsBuilder) Attachments(v bool) *GetStatementsBuilder {
	b.attachments = &v
	return b
}

// Ascending requests statements in ascending stored-time order.
func (b *GetStatementsBuilder) Ascending(v bool) *GetStatementsBuilder {
	b.ascending = &v
	return b
}

// Build produces the request description. Parameters are emitted in a fixed
// order (agent, verb, activity, since, until, registration,
// related_activities, related_agents, limit, format, attachments, ascending)
// so that rendered query strings are stable across runs.
func (b *GetStatementsBuilder) Build() (*request.Request, error) {
	req := &request.Request{
		Method:   http.MethodGet,
		Resource: Resource,
	}
	if b.agent != nil {
		encoded, err := request.EncodeAgent(b.agent)
		if err != nil {
			return nil, err
		}
		req.AddParam("agent", encoded)
	}
	if b.verb != "" {
		req.AddParam("verb", b.verb)
	}
	if b.activity != "" {
		req.AddParam("activity", b.activity)
	}
	if b.since != nil {
		req.AddParam("since", request.EncodeInstant(*b.since))
	}
	if b.until != nil {
		req.AddParam("until", request.EncodeInstant(*b.until))
	}
	if b.registration != "" {
		registration, err := normalizeID("registration", b.registration)
		if err != nil {
			return nil, err
		}
		req.AddParam("registration", registration)
	}
	if b.relatedActivities != nil {
		req.AddParam(
			"related_activities",
			strconv.FormatBool(*b.relatedActivities),
		)
	}
	if b.relatedAgents != nil {
		req.AddParam("related_agents", strconv.FormatBool(*b.relatedAgents))
	}
	if b.limit != nil {
		if *b.limit < 0 {
			return nil, request.ValidationError{
				Field:  "limit",
				Reason: "must not be negative",
			}
		}
		req.AddParam("limit", strconv.Itoa(*b.limit))
	}
	if b.format != "" {
		req.AddParam("format", string(b.format))
	}
	if b.attachments != nil {
		req.AddParam("attachments", strconv.FormatBool(*b.attachments))
	}
	if b.ascending != nil {
		req.AddParam("ascending", strconv.FormatBool(*b.ascending))
	}
	return req, nil
}
