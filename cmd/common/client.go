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

package common

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/openlearning-io/goxapi"
)

// CreateClient builds an xAPI client from the parsed global flags, exiting
// on configuration errors.
func CreateClient(f *GlobalFlags) *goxapi.Client {
	opts := []goxapi.ClientOptionFunc{
		goxapi.WithEndpoint(f.Endpoint),
	}
	if f.UserAgent != "" {
		opts = append(opts, goxapi.WithUserAgent(f.UserAgent))
	}
	if f.Timeout > 0 {
		opts = append(opts, goxapi.WithHTTPClient(&http.Client{
			Timeout: time.Duration(f.Timeout) * time.Second,
		}))
	}
	client, err := goxapi.New(opts...)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	return client
}
