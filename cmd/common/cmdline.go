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
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig holds the settings readable from a TOML config file. Flags
// given on the command line take precedence over file values.
type FileConfig struct {
	Endpoint  string `toml:"endpoint"`
	UserAgent string `toml:"user-agent"`
	Timeout   int    `toml:"timeout"`
}

type GlobalFlags struct {
	Flagset    *flag.FlagSet
	Endpoint   string
	UserAgent  string
	Timeout    int
	ConfigFile string
}

func NewGlobalFlags() *GlobalFlags {
	f := &GlobalFlags{
		Flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.Flagset.StringVar(
		&f.Endpoint,
		"endpoint",
		"",
		"base URL of the LRS xAPI endpoint",
	)
	f.Flagset.StringVar(
		&f.UserAgent,
		"user-agent",
		"",
		"User-Agent header sent with every request",
	)
	f.Flagset.IntVar(
		&f.Timeout,
		"timeout",
		0,
		"request timeout in seconds (0 uses the client default)",
	)
	f.Flagset.StringVar(
		&f.ConfigFile,
		"config",
		"",
		"path to a TOML config file",
	)
	return f
}

func (f *GlobalFlags) Parse() {
	if err := f.Flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
	if f.ConfigFile != "" {
		f.applyConfigFile()
	}
	if f.Endpoint == "" {
		fmt.Printf("no LRS endpoint specified\n")
		os.Exit(1)
	}
}

// applyConfigFile fills in settings the command line left unset.
func (f *GlobalFlags) applyConfigFile() {
	var cfg FileConfig
	if _, err := toml.DecodeFile(f.ConfigFile, &cfg); err != nil {
		fmt.Printf("failed to read config file: %s\n", err)
		os.Exit(1)
	}
	set := map[string]bool{}
	f.Flagset.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	if !set["endpoint"] && cfg.Endpoint != "" {
		f.Endpoint = cfg.Endpoint
	}
	if !set["user-agent"] && cfg.UserAgent != "" {
		f.UserAgent = cfg.UserAgent
	}
	if !set["timeout"] && cfg.Timeout > 0 {
		f.Timeout = cfg.Timeout
	}
}
