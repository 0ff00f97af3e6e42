// Copyright 2022 CoralDB
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"github.com/BurntSushi/toml"

	"github.com/coraldb/coral/pkg/logutil"
)

// Parameters holds every tunable of the typecheck tooling.
type Parameters struct {
	Log logutil.LogConfig `toml:"log"`
}

// NewParameters returns the defaults used when no configuration file
// is given.
func NewParameters() *Parameters {
	return &Parameters{
		Log: logutil.LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfigurationFromFile overrides params with the values decoded
// from the TOML file at fname.
func LoadConfigurationFromFile(fname string, params *Parameters) error {
	_, err := toml.DecodeFile(fname, params)
	return err
}
