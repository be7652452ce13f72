// Package query decodes the flat and nested URL-encoded key/value payloads
// returned by the video info endpoint.
package query

import (
	"net/url"
	"strings"
)

// Values is a decoded key/value payload. Duplicate keys keep the last value.
type Values map[string]string

// Get returns the value for key, or an empty string.
func (v Values) Get(key string) string {
	return v[key]
}

// Has reports whether key was present in the payload.
func (v Values) Has(key string) bool {
	_, ok := v[key]
	return ok
}

// Decode splits raw on '&' and decodes every "key=value" field.
// Fields without exactly one '=' are dropped. Keys are kept verbatim.
// Values are percent-decoded with '+' kept literally; malformed escapes stay as they were.
func Decode(raw string) Values {
	values := make(Values)
	if raw == "" {
		return values
	}

	for _, field := range strings.Split(raw, "&") {
		if strings.Count(field, "=") != 1 {
			continue
		}

		k, v, _ := strings.Cut(field, "=")
		values[k] = unescape(v)
	}

	return values
}

// Unplus replaces every '+' with a space.
func Unplus(s string) string {
	return strings.ReplaceAll(s, "+", " ")
}

func unescape(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	// PathUnescape leaves '+' alone, unlike QueryUnescape
	if decoded, err := url.PathUnescape(s); err == nil {
		return decoded
	}

	return unescapeLenient(s)
}

// unescapeLenient decodes valid %XX sequences one at a time and keeps the rest verbatim.
func unescapeLenient(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}

	return b.String()
}

func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
