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

package request

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/openlearning-io/goxapi/statement"
)

// canonicalAgent pins the key order of the agent query parameter: name first,
// then the single inverse-functional identifier. Some LRS implementations
// compare query strings verbatim, so two equal agents must encode to
// byte-identical JSON.
type canonicalAgent struct {
	Name        string             `json:"name,omitempty"`
	Mbox        string             `json:"mbox,omitempty"`
	MboxSHA1Sum string             `json:"mbox_sha1sum,omitempty"`
	OpenID      string             `json:"openid,omitempty"`
	Account     *statement.Account `json:"account,omitempty"`
}

// EncodeAgent returns the canonical JSON form of an agent for use as a single
// query parameter value. The agent must carry exactly one inverse-functional
// identifier; anything else is an EncodingError.
func EncodeAgent(a *statement.Agent) (string, error) {
	if a == nil {
		return "", EncodingError{Reason: "agent is nil"}
	}
	if err := a.Validate(); err != nil {
		return "", EncodingError{Reason: err.Error()}
	}
	return marshalCanonical(canonicalAgent{
		Name:        a.Name,
		Mbox:        a.Mbox,
		MboxSHA1Sum: a.MboxSHA1Sum,
		OpenID:      a.OpenID,
		Account:     a.Account,
	})
}

// marshalCanonical marshals without HTML escaping so that the encoded value
// depends only on the input fields.
func marshalCanonical(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", EncodingError{Reason: err.Error()}
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// EncodeInstant renders t as ISO-8601 in UTC at second precision with a Z
// suffix, e.g. 2016-01-01T00:00:00Z. Fractional seconds are never emitted.
func EncodeInstant(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}

// QueryEscape percent-encodes s as a single query component per RFC 3986.
// Spaces are encoded as %20 rather than '+'.
func QueryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
