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
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlearning-io/goxapi/request"
	"github.com/openlearning-io/goxapi/statement"
)

const testStatementID = "4df42866-40e7-45b6-bf7c-8d5fccbdccd6"

func testAgent() *statement.Agent {
	return &statement.Agent{
		Name: "A N Other",
		Mbox: "mailto:another@example.com",
	}
}

func testStatement() *statement.Statement {
	return &statement.Statement{
		Actor: testAgent(),
		Verb:  statement.VerbAttempted,
		Object: &statement.Activity{
			ID: "https://example.com/activity/simplestatement",
		},
	}
}

func TestGetStatementBuild(t *testing.T) {
	req, err := GetStatement().
		ID(uuid.MustParse(testStatementID)).
		Build()
	require.NoError(t, err)
	assert.Equal(t, "GET", req.Method)
	assert.Equal(
		t,
		"/statements?statementId="+testStatementID,
		req.URL(),
	)
}

func TestGetStatementWithAttachments(t *testing.T) {
	req, err := GetStatement().
		IDString(testStatementID).
		Attachments(true).
		Build()
	require.NoError(t, err)
	assert.Equal(
		t,
		"/statements?statementId="+testStatementID+"&attachments=true",
		req.URL(),
	)
}

func TestGetStatementWithFormat(t *testing.T) {
	req, err := GetStatement().
		IDString(testStatementID).
		Format(statement.FormatCanonical).
		Build()
	require.NoError(t, err)
	assert.Equal(
		t,
		"/statements?statementId="+testStatementID+"&format=canonical",
		req.URL(),
	)
}

func TestGetStatementNormalizesID(t *testing.T) {
	req, err := GetStatement().
		IDString("4DF42866-40E7-45B6-BF7C-8D5FCCBDCCD6").
		Build()
	require.NoError(t, err)
	assert.Equal(
		t,
		"/statements?statementId="+testStatementID,
		req.URL(),
	)
}

func TestGetStatementRequiresID(t *testing.T) {
	_, err := GetStatement().Build()
	var valErr request.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "statementId", valErr.Field)
}

func TestGetStatementRejectsMalformedID(t *testing.T) {
	_, err := GetStatement().IDString("not-a-uuid").Build()
	var valErr request.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "statementId", valErr.Field)
}

func TestGetVoidedStatementBuild(t *testing.T) {
	req, err := GetVoidedStatement().
		ID(uuid.MustParse(testStatementID)).
		Build()
	require.NoError(t, err)
	assert.Equal(
		t,
		"/statements?voidedStatementId="+testStatementID,
		req.URL(),
	)
}

func TestGetStatementsEmptyFilter(t *testing.T) {
	req, err := GetStatements().Build()
	require.NoError(t, err)
	assert.Equal(t, "/statements", req.URL())
}

func TestGetStatementsFullFilter(t *testing.T) {
	req, err := GetStatements().
		Agent(testAgent()).
		Verb("http://adlnet.gov/expapi/verbs/attempted").
		Activity("https://example.com/activity/1").
		Since(time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)).
		Until(time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)).
		RegistrationString("67828e3a-d116-4e18-8af3-2d2c59e27be6").
		RelatedActivities(true).
		RelatedAgents(true).
		Limit(10).
		Format(statement.FormatCanonical).
		Attachments(true).
		Ascending(true).
		Build()
	require.NoError(t, err)
	assert.Equal(
		t,
		"/statements"+
			"?agent=%7B%22name%22%3A%22A%20N%20Other%22%2C%22mbox%22%3A%22mailto%3Aanother%40example.com%22%7D"+
			"&verb=http%3A%2F%2Fadlnet.gov%2Fexpapi%2Fverbs%2Fattempted"+
			"&activity=https%3A%2F%2Fexample.com%2Factivity%2F1"+
			"&since=2016-01-01T00%3A00%3A00Z"+
			"&until=2018-01-01T00%3A00%3A00Z"+
			"&registration=67828e3a-d116-4e18-8af3-2d2c59e27be6"+
			"&related_activities=true"+
			"&related_agents=true"+
			"&limit=10"+
			"&format=canonical"+
			"&attachments=true"+
			"&ascending=true",
		req.URL(),
	)
}

func TestGetStatementsFixedParamOrder(t *testing.T) {
	// Filters set in reverse still render in the fixed emission order.
	req, err := GetStatements().
		Ascending(true).
		Limit(10).
		Verb("http://adlnet.gov/expapi/verbs/attempted").
		Build()
	require.NoError(t, err)
	assert.Equal(
		t,
		"/statements"+
			"?verb=http%3A%2F%2Fadlnet.gov%2Fexpapi%2Fverbs%2Fattempted"+
			"&limit=10"+
			"&ascending=true",
		req.URL(),
	)
}

func TestGetStatementsRejectsNegativeLimit(t *testing.T) {
	_, err := GetStatements().Limit(-1).Build()
	var valErr request.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "limit", valErr.Field)
}

func TestGetStatementsRejectsInvalidAgent(t *testing.T) {
	_, err := GetStatements().
		Agent(&statement.Agent{Name: "No Identifier"}).
		Build()
	var encErr request.EncodingError
	require.ErrorAs(t, err, &encErr)
}

func TestGetStatementsRejectsMalformedRegistration(t *testing.T) {
	_, err := GetStatements().
		RegistrationString("not-a-uuid").
		Build()
	var valErr request.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "registration", valErr.Field)
}

func TestPostStatementBuild(t *testing.T) {
	req, err := PostStatement().Statement(testStatement()).Build()
	require.NoError(t, err)
	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "/statements", req.URL())
	assert.Equal(t, "application/json", req.ContentType)
	assert.Equal(
		t,
		`{"actor":{"name":"A N Other","mbox":"mailto:another@example.com"},`+
			`"verb":{"id":"http://adlnet.gov/expapi/verbs/attempted","display":{"und":"attempted"}},`+
			`"object":{"objectType":"Activity","id":"https://example.com/activity/simplestatement"}}`,
		string(req.Body),
	)
}

func TestPostStatementRequiresStatement(t *testing.T) {
	_, err := PostStatement().Build()
	var valErr request.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "statement", valErr.Field)
}

func TestPostStatementRejectsInvalidStatement(t *testing.T) {
	s := testStatement()
	s.Verb = nil
	_, err := PostStatement().Statement(s).Build()
	var valErr request.ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestPostStatementsPreservesOrder(t *testing.T) {
	first := testStatement()
	second := testStatement()
	second.Verb = statement.VerbCompleted
	req, err := PostStatements().Statements(first, second).Build()
	require.NoError(t, err)
	body := string(req.Body)
	attempted := "http://adlnet.gov/expapi/verbs/attempted"
	completed := "http://adlnet.gov/expapi/verbs/completed"
	require.Contains(t, body, attempted)
	require.Contains(t, body, completed)
	assert.Less(t, strings.Index(body, attempted), strings.Index(body, completed))
}

func TestPostStatementsRequiresStatements(t *testing.T) {
	_, err := PostStatements().Build()
	var valErr request.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "statements", valErr.Field)
}

func TestPostStatementsNamesOffendingIndex(t *testing.T) {
	bad := testStatement()
	bad.Actor = nil
	_, err := PostStatements().Statements(testStatement(), bad).Build()
	var valErr request.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "statements[1]", valErr.Field)
}

func TestMoreStatementsBuild(t *testing.T) {
	ref := "/xapi/statements/869cc589-76fa-4283-8e96-eea86f9124e1"
	req, err := MoreStatements().More(ref).Build()
	require.NoError(t, err)
	assert.Equal(t, "GET", req.Method)
	assert.True(t, req.Opaque)
	assert.Equal(t, ref, req.URL())
}

func TestMoreStatementsRequiresReference(t *testing.T) {
	_, err := MoreStatements().Build()
	var valErr request.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "more", valErr.Field)
}
