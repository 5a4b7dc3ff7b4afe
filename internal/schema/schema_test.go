package schema

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

const validRaindrop = `{
	"_id": 1,
	"title": "Go",
	"link": "https://go.dev",
	"type": "link",
	"tags": ["go", "lang"]
}`

func TestValidate_ValidPayload(t *testing.T) {
	if err := Raindrop.Validate(json.RawMessage(validRaindrop)); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_AbsentAndNullAreEquivalent(t *testing.T) {
	absent := `{"_id":1,"title":"t","count":0}`
	explicitNull := `{"_id":1,"title":"t","count":0,"parent":null,"cover":null}`

	if err := Collection.Validate(json.RawMessage(absent)); err != nil {
		t.Errorf("absent optional fields: Validate() error = %v, want nil", err)
	}
	if err := Collection.Validate(json.RawMessage(explicitNull)); err != nil {
		t.Errorf("null optional fields: Validate() error = %v, want nil", err)
	}
}

func TestValidate_RequiredFieldNull(t *testing.T) {
	payload := `{"_id":1,"title":null,"count":0}`
	err := Collection.Validate(json.RawMessage(payload))

	var schemaErr *Error
	if !errors.As(err, &schemaErr) {
		t.Fatalf("Validate() error = %v, want *Error", err)
	}
	if want := "title: required field missing"; !containsViolation(schemaErr, want) {
		t.Errorf("violations = %v, want %q", schemaErr.Violations, want)
	}
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	// Three independent problems: missing link, wrong tags element type,
	// enum miss on type.
	payload := `{"_id":1,"title":"t","type":"weblink","tags":["ok",7]}`
	err := Raindrop.Validate(json.RawMessage(payload))

	var schemaErr *Error
	if !errors.As(err, &schemaErr) {
		t.Fatalf("Validate() error = %v, want *Error", err)
	}
	if len(schemaErr.Violations) != 3 {
		t.Errorf("len(Violations) = %d, want 3: %v", len(schemaErr.Violations), schemaErr.Violations)
	}

	for _, want := range []string{
		"link: required field missing",
		"tags: expected array of string",
		"type: expected one of [link, article, image, video, document, audio]",
	} {
		if !containsViolation(schemaErr, want) {
			t.Errorf("violations = %v, missing %q", schemaErr.Violations, want)
		}
	}
}

func TestValidate_WrongScalarTypes(t *testing.T) {
	tests := []struct {
		name    string
		def     *ObjectDef
		payload string
		want    string
	}{
		{"string field", Collection, `{"_id":1,"title":7,"count":0}`, "title: expected string"},
		{"number field", Collection, `{"_id":"1","title":"t","count":0}`, "_id: expected number"},
		{"bool field", Collection, `{"_id":1,"title":"t","count":0,"public":"yes"}`, "public: expected boolean"},
		{"object field", Collection, `{"_id":1,"title":"t","count":0,"parent":7}`, "parent: expected object"},
		{"array field", Raindrop, `{"_id":1,"title":"t","link":"l","type":"link","tags":"go"}`, "tags: expected array of string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.def.Validate(json.RawMessage(tt.payload))
			var schemaErr *Error
			if !errors.As(err, &schemaErr) {
				t.Fatalf("Validate() error = %v, want *Error", err)
			}
			if !containsViolation(schemaErr, tt.want) {
				t.Errorf("violations = %v, want %q", schemaErr.Violations, tt.want)
			}
		})
	}
}

func TestValidate_NestedObjectPath(t *testing.T) {
	payload := `{"_id":1,"title":"t","count":0,"parent":{"$id":"oops"}}`
	err := Collection.Validate(json.RawMessage(payload))

	var schemaErr *Error
	if !errors.As(err, &schemaErr) {
		t.Fatalf("Validate() error = %v, want *Error", err)
	}
	if want := "parent.$id: expected number"; !containsViolation(schemaErr, want) {
		t.Errorf("violations = %v, want %q", schemaErr.Violations, want)
	}
}

func TestValidate_NestedArrayElementPath(t *testing.T) {
	payload := `{
		"_id":1,"title":"t","link":"l","type":"link","tags":[],
		"highlights":[{"_id":"h1","text":"quote"},{"_id":"h2"}]
	}`
	err := Raindrop.Validate(json.RawMessage(payload))

	var schemaErr *Error
	if !errors.As(err, &schemaErr) {
		t.Fatalf("Validate() error = %v, want *Error", err)
	}
	if want := "highlights[1].text: required field missing"; !containsViolation(schemaErr, want) {
		t.Errorf("violations = %v, want %q", schemaErr.Violations, want)
	}
}

func TestValidate_NotAnObject(t *testing.T) {
	err := Collection.Validate(json.RawMessage(`[1,2,3]`))

	var schemaErr *Error
	if !errors.As(err, &schemaErr) {
		t.Fatalf("Validate() error = %v, want *Error", err)
	}
	if want := "expected object"; !containsViolation(schemaErr, want) {
		t.Errorf("violations = %v, want %q", schemaErr.Violations, want)
	}
}

func TestValidateList_IndexedPrefixes(t *testing.T) {
	payload := `[
		{"_id":1,"title":"a","count":0},
		{"_id":2,"count":0},
		{"_id":"x","title":"c","count":0}
	]`
	err := Collection.ValidateList(json.RawMessage(payload))

	var schemaErr *Error
	if !errors.As(err, &schemaErr) {
		t.Fatalf("ValidateList() error = %v, want *Error", err)
	}
	for _, want := range []string{
		"[1].title: required field missing",
		"[2]._id: expected number",
	} {
		if !containsViolation(schemaErr, want) {
			t.Errorf("violations = %v, missing %q", schemaErr.Violations, want)
		}
	}
}

func TestValidateList_Valid(t *testing.T) {
	payload := `[{"_id":"go","count":12},{"_id":"http"}]`
	if err := Tag.ValidateList(json.RawMessage(payload)); err != nil {
		t.Errorf("ValidateList() error = %v, want nil", err)
	}
}

func TestValidateList_NotAnArray(t *testing.T) {
	err := Tag.ValidateList(json.RawMessage(`{"_id":"go"}`))

	var schemaErr *Error
	if !errors.As(err, &schemaErr) {
		t.Fatalf("ValidateList() error = %v, want *Error", err)
	}
	if want := "expected array of object"; !containsViolation(schemaErr, want) {
		t.Errorf("violations = %v, want %q", schemaErr.Violations, want)
	}
}

func TestError_MessageFormat(t *testing.T) {
	err := &Error{
		Endpoint:   "collection",
		Violations: []string{"title: expected string", "count: required field missing"},
	}
	want := "collection: invalid response shape: title: expected string; count: required field missing"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestValidate_UndeclaredFieldsIgnored(t *testing.T) {
	payload := `{"_id":"go","count":1,"somethingNew":{"deeply":["nested"]}}`
	if err := Tag.Validate(json.RawMessage(payload)); err != nil {
		t.Errorf("Validate() error = %v, want unknown fields ignored", err)
	}
}

func containsViolation(err *Error, want string) bool {
	for _, v := range err.Violations {
		if strings.Contains(v, want) {
			return true
		}
	}
	return false
}
