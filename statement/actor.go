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

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
)

// Actor is implemented by Agent and Group, the two value types that can
// appear as a statement actor or authority.
type Actor interface {
	actor()
}

func (*Agent) actor() {}
func (*Group) actor() {}

// Account identifies an actor by an account on some system, e.g. an LMS login.
type Account struct {
	HomePage string `json:"homePage"`
	Name     string `json:"name"`
}

// Agent identifies an individual actor. Exactly one of the
// inverse-functional identifiers (Mbox, MboxSHA1Sum, OpenID, Account) must be
// set. ObjectType is optional for agents and only required when an agent
// appears as a statement object.
type Agent struct {
	ObjectType  string   `json:"objectType,omitempty"`
	Name        string   `json:"name,omitempty"`
	Mbox        string   `json:"mbox,omitempty"`
	MboxSHA1Sum string   `json:"mbox_sha1sum,omitempty"`
	OpenID      string   `json:"openid,omitempty"`
	Account     *Account `json:"account,omitempty"`
}

func (Agent) objectType() string { return "Agent" }

func (a *Agent) ifiCount() int {
	count := 0
	if a.Mbox != "" {
		count++
	}
	if a.MboxSHA1Sum != "" {
		count++
	}
	if a.OpenID != "" {
		count++
	}
	if a.Account != nil {
		count++
	}
	return count
}

// Validate checks that exactly one inverse-functional identifier is set.
func (a *Agent) Validate() error {
	switch n := a.ifiCount(); {
	case n == 0:
		return errors.New("agent has no inverse-functional identifier")
	case n > 1:
		return fmt.Errorf(
			"agent has %d inverse-functional identifiers, want exactly 1",
			n,
		)
	}
	return nil
}

// MboxSHA1 returns the hex-encoded SHA-1 of a mailto IRI, for populating the
// mbox_sha1sum identifier without exposing the address itself.
func MboxSHA1(mbox string) string {
	sum := sha1.Sum([]byte(mbox))
	return hex.EncodeToString(sum[:])
}

// Group identifies a set of actors. An identified group carries one
// inverse-functional identifier like an agent; an anonymous group carries
// only members.
type Group struct {
	Name        string   `json:"name,omitempty"`
	Mbox        string   `json:"mbox,omitempty"`
	MboxSHA1Sum string   `json:"mbox_sha1sum,omitempty"`
	OpenID      string   `json:"openid,omitempty"`
	Account     *Account `json:"account,omitempty"`
	Member      []Agent  `json:"member,omitempty"`
}

func (Group) objectType() string { return "Group" }

// MarshalJSON always emits the objectType discriminator, which is mandatory
// for groups on the wire.
func (g Group) MarshalJSON() ([]byte, error) {
	type alias Group
	return json.Marshal(struct {
		ObjectType string `json:"objectType"`
		alias
	}{ObjectType: "Group", alias: alias(g)})
}

// Validate checks that the group is either identified by exactly one
// inverse-functional identifier or anonymous with at least one member.
func (g *Group) Validate() error {
	ifi := (&Agent{
		Mbox:        g.Mbox,
		MboxSHA1Sum: g.MboxSHA1Sum,
		OpenID:      g.OpenID,
		Account:     g.Account,
	}).ifiCount()
	switch {
	case ifi > 1:
		return fmt.Errorf(
			"group has %d inverse-functional identifiers, want at most 1",
			ifi,
		)
	case ifi == 0 && len(g.Member) == 0:
		return errors.New("anonymous group has no members")
	}
	for i := range g.Member {
		if err := g.Member[i].Validate(); err != nil {
			return fmt.Errorf("group member %d: %w", i, err)
		}
	}
	return nil
}

// unmarshalActor decodes an actor value into the concrete type named by its
// objectType discriminator. A missing objectType means an agent.
func unmarshalActor(data []byte) (Actor, error) {
	var probe struct {
		ObjectType string `json:"objectType"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	if probe.ObjectType == "Group" {
		var g Group
		if err := json.Unmarshal(data, &g); err != nil {
			return nil, err
		}
		return &g, nil
	}
	var a Agent
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
