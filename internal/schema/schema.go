// Package schema validates decoded JSON payloads against per-endpoint
// structural contracts before they are trusted. Optional fields accept both
// "absent" and "explicit null" as no value; the server is observed to send
// both forms. On mismatch the validator reports every violated field path,
// not just the first.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind is the expected JSON type of a field.
type Kind int

const (
	String Kind = iota
	Number
	Bool
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Number:
		return "number"
	case Bool:
		return "boolean"
	case Array:
		return "array"
	case Object:
		return "object"
	}
	return "unknown"
}

// Field describes one field of a structural contract.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	Enum     []string   // allowed values when Kind == String
	Elem     Kind       // element kind when Kind == Array
	Schema   *ObjectDef // nested contract when Kind == Object or Elem == Object
}

// ObjectDef is the structural contract for one payload shape.
type ObjectDef struct {
	Name   string
	Fields []Field
}

// Error enumerates every violated field path and the reason.
type Error struct {
	Endpoint   string
	Violations []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: invalid response shape: %s",
		e.Endpoint, strings.Join(e.Violations, "; "))
}

// Validate checks a raw JSON object against the contract.
func (s *ObjectDef) Validate(raw json.RawMessage) error {
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return &Error{Endpoint: s.Name, Violations: []string{"expected object"}}
	}

	var violations []string
	s.check("", obj, &violations)
	if len(violations) > 0 {
		return &Error{Endpoint: s.Name, Violations: violations}
	}
	return nil
}

// ValidateList checks a raw JSON array whose elements must each satisfy
// the contract.
func (s *ObjectDef) ValidateList(raw json.RawMessage) error {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return &Error{Endpoint: s.Name, Violations: []string{"expected array of object"}}
	}

	var violations []string
	for i, elem := range elems {
		var obj map[string]any
		if err := json.Unmarshal(elem, &obj); err != nil {
			violations = append(violations, fmt.Sprintf("[%d]: expected object", i))
			continue
		}
		s.check(fmt.Sprintf("[%d].", i), obj, &violations)
	}
	if len(violations) > 0 {
		return &Error{Endpoint: s.Name, Violations: violations}
	}
	return nil
}

func (s *ObjectDef) check(prefix string, obj map[string]any, violations *[]string) {
	for _, f := range s.Fields {
		path := prefix + f.Name
		val, present := obj[f.Name]
		if !present || val == nil {
			// Absent and explicit null are the same: no value.
			if f.Required {
				*violations = append(*violations, path+": required field missing")
			}
			continue
		}
		f.checkValue(path, val, violations)
	}
}

func (f *Field) checkValue(path string, val any, violations *[]string) {
	switch f.Kind {
	case String:
		str, ok := val.(string)
		if !ok {
			*violations = append(*violations, path+": expected string")
			return
		}
		if len(f.Enum) > 0 && !contains(f.Enum, str) {
			*violations = append(*violations,
				fmt.Sprintf("%s: expected one of [%s]", path, strings.Join(f.Enum, ", ")))
		}

	case Number:
		if _, ok := val.(float64); !ok {
			*violations = append(*violations, path+": expected number")
		}

	case Bool:
		if _, ok := val.(bool); !ok {
			*violations = append(*violations, path+": expected boolean")
		}

	case Array:
		arr, ok := val.([]any)
		if !ok {
			*violations = append(*violations,
				fmt.Sprintf("%s: expected array of %s", path, f.Elem))
			return
		}
		for i, elem := range arr {
			if f.Elem == Object && f.Schema != nil {
				obj, ok := elem.(map[string]any)
				if !ok {
					*violations = append(*violations,
						fmt.Sprintf("%s: expected array of object", path))
					return
				}
				f.Schema.check(fmt.Sprintf("%s[%d].", path, i), obj, violations)
				continue
			}
			if !matchesKind(elem, f.Elem) {
				*violations = append(*violations,
					fmt.Sprintf("%s: expected array of %s", path, f.Elem))
				return
			}
		}

	case Object:
		obj, ok := val.(map[string]any)
		if !ok {
			*violations = append(*violations, path+": expected object")
			return
		}
		if f.Schema != nil {
			f.Schema.check(path+".", obj, violations)
		}
	}
}

func matchesKind(val any, k Kind) bool {
	switch k {
	case String:
		_, ok := val.(string)
		return ok
	case Number:
		_, ok := val.(float64)
		return ok
	case Bool:
		_, ok := val.(bool)
		return ok
	case Array:
		_, ok := val.([]any)
		return ok
	case Object:
		_, ok := val.(map[string]any)
		return ok
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
