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

package position

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/dxchord/dxcore/errors"
	"gopkg.in/yaml.v3"
)

// parseAs parses s with Parse and requires the result to be a T. "null" is
// rejected because a concrete type has no "no position" value.
func parseAs[T ElementPosition](typeName, s string) (T, error) {
	var zero T
	p, err := Parse(s)
	if err != nil {
		return zero, err
	}
	v, ok := p.(T)
	if !ok {
		return zero, &errors.ParseError{Type: typeName, Value: s}
	}
	return v, nil
}

func marshalJSON(p ElementPosition) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	return json.Marshal(p.String())
}

func marshalYAML(p ElementPosition) (any, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	return p.String(), nil
}

func unmarshalJSON[T ElementPosition](typeName string, data []byte) (T, error) {
	var zero T
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return zero, &errors.UnmarshalError{Type: typeName, Data: data, Reason: err.Error()}
	}
	return parseAs[T](typeName, s)
}

func unmarshalYAML[T ElementPosition](typeName string, node *yaml.Node) (T, error) {
	var zero T
	var s string
	if err := node.Decode(&s); err != nil {
		return zero, &errors.UnmarshalError{Type: typeName, Data: []byte(node.Value), Reason: err.Error()}
	}
	return parseAs[T](typeName, s)
}
