/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package model

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// Checked is the subset of Model the helpers below need. Value types whose
// decoders have pointer receivers satisfy it without taking their address.
type Checked interface {
	Validatable
	Identifiable
}

// ValidateAll validates every model in the slice and returns a single
// combined error describing all failures, or nil if every model is valid.
//
// Each failure is wrapped with the model's index and type name, for example
// "model[2] (FullNote): ...". The whole slice is always processed, so the
// caller sees every invalid element in one pass. Errors are aggregated with
// an rxmerr.Collector.
//
// Empty and nil slices are valid.
//
// Example:
//
//	if err := model.ValidateAll(tuning.RootNotes()); err != nil {
//	    return err
//	}
func ValidateAll[T Checked](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// MustValidate validates a model and panics if validation fails.
//
// It returns the model unchanged on success so that it can be used inline.
// MustValidate is intended for package-level tables of built-in values and
// for tests, where an invalid value is a programming error. It MUST NOT be
// used on user input.
func MustValidate[T Checked](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// ToJSON validates the model and returns its JSON encoding.
//
// If validation fails, the error is wrapped with the model's type name and no
// marshaling is attempted.
func ToJSON[T Checked](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML validates the model and returns its YAML encoding.
//
// If validation fails, the error is wrapped with the model's type name and no
// marshaling is attempted.
func ToYAML[T Checked](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromJSON decodes JSON into m and validates the result.
//
// If FromJSON returns an error, the state of *m is undefined and MUST NOT be
// used.
func FromJSON[T Validatable](data []byte, m *T) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// FromYAML decodes YAML into m and validates the result.
//
// If FromYAML returns an error, the state of *m is undefined and MUST NOT be
// used.
func FromYAML[T Validatable](data []byte, m *T) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}
