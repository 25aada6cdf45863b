package accounts

import (
	"encoding/json"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Fields is the loosely-typed input bag for account creation. Callers
// (HTTP handlers, CLIs, scripts) map their own request format into it;
// factories read from it with per-key defaults.
type Fields map[string]any

// String returns the value under key as a string, or def when the key
// is absent or not string-shaped.
func (f Fields) String(key, def string) string {
	v, ok := f[key]
	if !ok {
		return def
	}
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	default:
		return def
	}
}

// Bool returns the value under key as a bool. String values accept the
// usual spellings plus "on"/"off" from form submissions.
func (f Fields) Bool(key string, def bool) bool {
	v, ok := f[key]
	if !ok {
		return def
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		switch strings.ToLower(b) {
		case "on", "yes":
			return true
		case "off", "no":
			return false
		}
		if parsed, err := strconv.ParseBool(b); err == nil {
			return parsed
		}
		return def
	default:
		return def
	}
}

// Float returns the value under key as a float64. JSON decoding yields
// float64 or json.Number depending on decoder settings; both work.
func (f Fields) Float(key string, def float64) float64 {
	v, ok := f[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case json.Number:
		if parsed, err := n.Float64(); err == nil {
			return parsed
		}
		return def
	case string:
		if parsed, err := strconv.ParseFloat(n, 64); err == nil {
			return parsed
		}
		return def
	default:
		return def
	}
}

// Int returns the value under key as an int.
func (f Fields) Int(key string, def int) int {
	v, ok := f[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	case json.Number:
		if parsed, err := n.Int64(); err == nil {
			return int(parsed)
		}
		return def
	case string:
		if parsed, err := strconv.Atoi(n); err == nil {
			return parsed
		}
		return def
	default:
		return def
	}
}

// Locale returns the value under key canonicalized as a BCP 47 tag.
// Unparseable or absent values fall back to def.
func (f Fields) Locale(key, def string) string {
	raw := f.String(key, "")
	if raw == "" {
		return def
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return def
	}
	return tag.String()
}

// requireFields checks the keys every factory needs before touching the
// store. The first missing key wins.
func requireFields(fields Fields) error {
	for _, key := range []string{"username", "email", "password"} {
		if strings.TrimSpace(fields.String(key, "")) == "" {
			return &MissingFieldError{Field: key}
		}
	}
	return nil
}
