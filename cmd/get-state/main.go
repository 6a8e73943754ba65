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
	"github.com/openlearning-io/goxapi/states"
)

type getStateFlags struct {
	*common.GlobalFlags
	activity     string
	agentMbox    string
	registration string
	stateID      string
}

func main() {
	// Parse commandline
	f := getStateFlags{
		GlobalFlags: common.NewGlobalFlags(),
	}
	f.Flagset.StringVar(&f.activity, "activity", "", "activity IRI")
	f.Flagset.StringVar(&f.agentMbox, "agent-mbox", "", "agent mailto IRI")
	f.Flagset.StringVar(
		&f.registration,
		"registration",
		"",
		"optional registration UUID",
	)
	f.Flagset.StringVar(
		&f.stateID,
		"state-id",
		"",
		"state document id (omit to list all ids under the key)",
	)
	f.Parse()

	client := common.CreateClient(f.GlobalFlags)
	agent := &statement.Agent{Mbox: f.agentMbox}
	ctx := context.Background()

	if f.stateID == "" {
		builder := states.GetStates().
			ActivityID(f.activity).
			Agent(agent)
		if f.registration != "" {
			builder.RegistrationString(f.registration)
		}
		ids, err := client.GetStates(ctx, builder)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		for _, id := range ids {
			fmt.Printf("%s\n", id)
		}
		return
	}

	builder := states.GetState().
		ActivityID(f.activity).
		Agent(agent).
		StateID(f.stateID)
	if f.registration != "" {
		builder.RegistrationString(f.registration)
	}
	var doc []byte
	resp, err := client.GetState(ctx, builder, &doc)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf(
		"Content-Type: %s\n\n%s\n",
		resp.Header.Get("Content-Type"),
		doc,
	)
}
