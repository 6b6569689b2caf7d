package webserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// FlexStrings accepts either a comma-separated string or a JSON array of
// strings/numbers, normalizing to a trimmed string slice. Submissions come
// from both the portal (arrays) and ad hoc tooling (comma strings).
type FlexStrings []string

func (f *FlexStrings) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*f = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = splitComma(s)
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var items []interface{}
	if err := dec.Decode(&items); err != nil {
		return fmt.Errorf("expected string or array")
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			if t := strings.TrimSpace(v); t != "" {
				out = append(out, t)
			}
		case json.Number:
			out = append(out, v.String())
		default:
			return fmt.Errorf("expected string or number elements")
		}
	}
	*f = out
	return nil
}

func splitComma(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
