package api

import "encoding/json"

// Envelope is the uniform wrapper every Raindrop API response decodes into.
// Which payload field is populated depends on the operation: GET-by-id and
// mutations fill Item, list and search operations fill Items, delete-style
// operations only set Result. The payloads stay raw here; structural
// validation and typing happen at the schema boundary.
type Envelope struct {
	Result       bool            `json:"result"`
	Item         json.RawMessage `json:"item,omitempty"`
	Items        json.RawMessage `json:"items,omitempty"`
	Count        *int            `json:"count,omitempty"`
	User         json.RawMessage `json:"user,omitempty"`
	Modified     *int            `json:"modified,omitempty"`
	ErrorMessage string          `json:"errorMessage,omitempty"`
}

// errorBody is the JSON shape of non-2xx responses when the server manages
// to produce one. Anything else is treated as opaque text.
type errorBody struct {
	Result       bool   `json:"result"`
	ErrorMessage string `json:"errorMessage"`
	Error        string `json:"error"`
}

// extractErrorMessage pulls a server-supplied error message out of a raw
// error body, falling back to the raw text.
func extractErrorMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.ErrorMessage != "" {
			return eb.ErrorMessage
		}
		if eb.Error != "" {
			return eb.Error
		}
	}
	return string(body)
}
