// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"sigs.k8s.io/yaml"
)

// Serialize renders a value as the mapping used in lockfiles and recipe
// metadata: {"version": "1.2.3"} when the value is concrete, otherwise
// {"versions": ["1.0:2.0", "3.0"]}.
func Serialize(v Value) map[string]interface{} {
	if c, ok := v.Concrete(); ok {
		return map[string]interface{}{
			"version": c.String(),
		}
	}
	l := toList(v)
	strs := make([]string, l.Len())
	for i := range strs {
		strs[i] = l.At(i).String()
	}
	return map[string]interface{}{
		"versions": strs,
	}
}

// Deserialize is the inverse of Serialize.  Any mapping with neither a
// "version" nor a "versions" key is an UnknownShapeError.
func Deserialize(d map[string]interface{}) (Value, error) {
	if raw, ok := d["version"]; ok {
		return Make(raw)
	}
	if raw, ok := d["versions"]; ok {
		l, err := Make(raw)
		if err != nil {
			return nil, err
		}
		return toList(l), nil
	}
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	return nil, &UnknownShapeError{Keys: keys}
}

// MarshalYAML renders Serialize's mapping as YAML.
func MarshalYAML(v Value) ([]byte, error) {
	return yaml.Marshal(Serialize(v))
}

// UnmarshalYAML parses a YAML mapping written by MarshalYAML.
func UnmarshalYAML(data []byte) (Value, error) {
	var d map[string]interface{}
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return Deserialize(d)
}
