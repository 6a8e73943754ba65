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

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/openlearning-io/goxapi/cmd/common"
	"github.com/openlearning-io/goxapi/statement"
)

type postStatementFlags struct {
	*common.GlobalFlags
	actorName string
	actorMbox string
	verb      string
	activity  string
	voidAfter bool
}

func main() {
	// Parse commandline
	f := postStatementFlags{
		GlobalFlags: common.NewGlobalFlags(),
	}
	f.Flagset.StringVar(&f.actorName, "actor-name", "", "actor display name")
	f.Flagset.StringVar(
		&f.actorMbox,
		"actor-mbox",
		"",
		"actor mailto IRI, e.g. mailto:learner@example.com",
	)
	f.Flagset.StringVar(
		&f.verb,
		"verb",
		statement.VerbExperienced.ID,
		"verb IRI",
	)
	f.Flagset.StringVar(&f.activity, "activity", "", "activity IRI")
	f.Flagset.BoolVar(
		&f.voidAfter,
		"void",
		false,
		"void the statement again after storing it",
	)
	f.Parse()
	if f.actorMbox == "" || f.activity == "" {
		fmt.Printf("both -actor-mbox and -activity are required\n")
		os.Exit(1)
	}

	client := common.CreateClient(f.GlobalFlags)

	s := &statement.Statement{
		Actor: &statement.Agent{
			Name: f.actorName,
			Mbox: f.actorMbox,
		},
		Verb:   statement.NewVerb(f.verb, verbDisplay(f.verb)),
		Object: &statement.Activity{ID: f.activity},
	}

	ctx := context.Background()
	id, err := client.PostStatement(ctx, s)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("stored statement %s\n", id)

	if !f.voidAfter {
		return
	}
	// A voiding statement reuses the original actor, so start from a copy
	// rather than mutating the statement we just sent.
	voiding, err := s.Clone()
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	voiding.Verb = statement.VerbVoided
	voiding.Object = &statement.StatementRef{ID: id}
	voidID, err := client.PostStatement(ctx, voiding)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("voided by statement %s\n", voidID)
}

// verbDisplay derives a display word from the last path segment of a verb
// IRI.
func verbDisplay(iri string) string {
	display := iri
	for i := len(iri) - 1; i >= 0; i-- {
		if iri[i] == '/' {
			display = iri[i+1:]
			break
		}
	}
	return display
}
