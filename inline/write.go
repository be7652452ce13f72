package inline

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects how Output is written.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// Formats lists the accepted --format values.
func Formats() []string {
	return []string{string(Text), string(JSON), string(YAML)}
}

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, JSON, YAML:
		return f, nil
	case "":
		return Text, nil
	default:
		return "", fmt.Errorf("unknown format %q, expected one of %s", s, strings.Join(Formats(), ", "))
	}
}

// Write encodes out in the given format. Text prints one URL per result.
func Write(w io.Writer, out *Output, format Format) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, r := range out.Results {
			if r.URL == "" {
				continue
			}
			if _, err := fmt.Fprintln(w, r.URL); err != nil {
				return err
			}
		}
		return nil
	}
}
