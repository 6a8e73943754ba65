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

package statement

// LanguageMap maps RFC 5646 language tags to display strings. The "und" tag
// marks an undetermined language.
type LanguageMap map[string]string

// Verb describes the action of a statement, identified by IRI.
type Verb struct {
	ID      string      `json:"id"`
	Display LanguageMap `json:"display,omitempty"`
}

// NewVerb returns a verb with the given IRI and an undetermined-language
// display value.
func NewVerb(id string, display string) *Verb {
	return &Verb{ID: id, Display: LanguageMap{"und": display}}
}

// Verbs from the ADL vocabulary.
var (
	VerbAnswered    = NewVerb("http://adlnet.gov/expapi/verbs/answered", "answered")
	VerbAttempted   = NewVerb("http://adlnet.gov/expapi/verbs/attempted", "attempted")
	VerbCompleted   = NewVerb("http://adlnet.gov/expapi/verbs/completed", "completed")
	VerbExperienced = NewVerb("http://adlnet.gov/expapi/verbs/experienced", "experienced")
	VerbFailed      = NewVerb("http://adlnet.gov/expapi/verbs/failed", "failed")
	VerbInitialized = NewVerb("http://adlnet.gov/expapi/verbs/initialized", "initialized")
	VerbLaunched    = NewVerb("http://adlnet.gov/expapi/verbs/launched", "launched")
	VerbPassed      = NewVerb("http://adlnet.gov/expapi/verbs/passed", "passed")
	VerbProgressed  = NewVerb("http://adlnet.gov/expapi/verbs/progressed", "progressed")
	VerbTerminated  = NewVerb("http://adlnet.gov/expapi/verbs/terminated", "terminated")
	VerbVoided      = NewVerb("http://adlnet.gov/expapi/verbs/voided", "voided")
)
