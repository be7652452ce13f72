// Package locale picks the language code sent with info requests.
package locale

import (
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/tubex-cli/tubex/key"
	"golang.org/x/text/language"
)

const fallback = "en"

// Language returns extract.language when set, otherwise the base language of
// LC_ALL, LC_MESSAGES or LANG. It falls back to "en".
func Language() string {
	if configured := viper.GetString(key.ExtractLanguage); configured != "" {
		if code, ok := Parse(configured); ok {
			return code
		}
	}

	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if code, ok := Parse(os.Getenv(env)); ok {
			return code
		}
	}

	return fallback
}

// Parse extracts the base language from a POSIX locale such as "de_DE.UTF-8"
// or a BCP 47 tag such as "pt-BR".
func Parse(raw string) (string, bool) {
	raw, _, _ = strings.Cut(raw, ".")
	raw, _, _ = strings.Cut(raw, "@")
	raw = strings.ReplaceAll(strings.TrimSpace(raw), "_", "-")

	if raw == "" || raw == "C" || raw == "POSIX" {
		return "", false
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return "", false
	}

	base, confidence := tag.Base()
	if confidence == language.No {
		return "", false
	}

	return base.String(), true
}
