package api

import (
	"encoding/json"
	"strings"
)

// Placeholder payloads returned by dry-run interception. They are shaped
// like real responses so downstream schema validation still passes.
var (
	placeholderCollection = json.RawMessage(
		`{"_id":0,"title":"","count":0,"view":"list","public":false,"expanded":false}`)
	placeholderRaindrop = json.RawMessage(
		`{"_id":0,"title":"","link":"","type":"link","tags":[]}`)
)

// dryRunResponse short-circuits a mutating request with a deterministic
// synthetic Envelope and emits an audit line with a token-redacted view of
// the request body. No network I/O happens on this path.
func (c *Client) dryRunResponse(method, path string, body []byte) *Envelope {
	audit := redactTokens(body)
	if len(audit) == 0 {
		audit = []byte("null")
	}
	c.logger.Info().
		Str("method", method).
		Str("path", path).
		RawJSON("body", audit).
		Msg("dry-run: request suppressed")

	env := &Envelope{Result: true}
	switch {
	case strings.HasPrefix(path, "/collection"):
		env.Item = placeholderCollection
	case strings.HasPrefix(path, "/raindrops/"):
		zero := 0
		env.Modified = &zero
	case strings.HasPrefix(path, "/raindrop"):
		env.Item = placeholderRaindrop
	}
	return env
}

// redactTokens masks any object field whose name mentions a token before the
// body is written to the audit log.
func redactTokens(body []byte) []byte {
	if len(body) == 0 {
		return nil
	}
	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err != nil {
		return []byte(`"[unparsable body]"`)
	}
	redactMap(obj)
	out, err := json.Marshal(obj)
	if err != nil {
		return []byte(`"[unparsable body]"`)
	}
	return out
}

func redactMap(obj map[string]any) {
	for k, v := range obj {
		if strings.Contains(strings.ToLower(k), "token") {
			obj[k] = "[redacted]"
			continue
		}
		if nested, ok := v.(map[string]any); ok {
			redactMap(nested)
		}
	}
}
