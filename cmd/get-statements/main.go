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
	"encoding/json"
	"fmt"
	"os"

	"github.com/openlearning-io/goxapi/cmd/common"
	"github.com/openlearning-io/goxapi/statement"
	"github.com/openlearning-io/goxapi/statements"
)

type getStatementsFlags struct {
	*common.GlobalFlags
	verb      string
	activity  string
	agentMbox string
	limit     int
	ascending bool
	follow    bool
}

func main() {
	// Parse commandline
	f := getStatementsFlags{
		GlobalFlags: common.NewGlobalFlags(),
	}
	f.Flagset.StringVar(&f.verb, "verb", "", "filter by verb IRI")
	f.Flagset.StringVar(&f.activity, "activity", "", "filter by activity IRI")
	f.Flagset.StringVar(
		&f.agentMbox,
		"agent-mbox",
		"",
		"filter by agent mailto IRI",
	)
	f.Flagset.IntVar(&f.limit, "limit", 0, "statements per page (0 = LRS default)")
	f.Flagset.BoolVar(
		&f.ascending,
		"ascending",
		false,
		"return statements in ascending stored order",
	)
	f.Flagset.BoolVar(
		&f.follow,
		"follow",
		false,
		"follow continuation references until the result is exhausted",
	)
	f.Parse()

	client := common.CreateClient(f.GlobalFlags)

	builder := statements.GetStatements()
	if f.verb != "" {
		builder.Verb(f.verb)
	}
	if f.activity != "" {
		builder.Activity(f.activity)
	}
	if f.agentMbox != "" {
		builder.Agent(&statement.Agent{Mbox: f.agentMbox})
	}
	if f.limit > 0 {
		builder.Limit(f.limit)
	}
	if f.ascending {
		builder.Ascending(true)
	}

	ctx := context.Background()
	result, err := client.GetStatements(ctx, builder)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	for {
		for _, s := range result.Statements {
			printStatement(s)
		}
		if !f.follow || result.More == "" {
			break
		}
		result, err = client.GetMoreStatements(ctx, result.More)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
	}
}

func printStatement(s statement.Statement) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s\n", data)
}
