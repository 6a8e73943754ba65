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

// Format controls how the LRS renders returned statements.
type Format string

const (
	// FormatExact returns statements as they were received.
	FormatExact Format = "exact"
	// FormatCanonical returns statements with canonicalized metadata, e.g.
	// a single language picked per language map.
	FormatCanonical Format = "canonical"
	// FormatIDs returns statements with actors, verbs and objects reduced
	// to their identifiers.
	FormatIDs Format = "ids"
)
