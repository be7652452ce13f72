// Package videoid extracts video identifiers from page URLs.
package videoid

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/viper"
	"github.com/tubex-cli/tubex/constant"
	"github.com/tubex-cli/tubex/fault"
	"github.com/tubex-cli/tubex/key"
)

const patternTemplate = `/(?:%s/\S*(?:(?:/e(?:mbed))?/|watch/?\?(?:\S*?&?v=))|%s/)([a-zA-Z0-9_-]{6,11})`

var bareID = regexp.MustCompile(`^[a-zA-Z0-9_-]{6,11}$`)

// prefixes are stripped in this order before matching.
var prefixes = []string{"http:/", "https:/", "www."}

// Resolver matches page URLs of one provider.
type Resolver struct {
	host, shortHost string
}

// New creates a resolver for the given hosts. Hosts are matched literally.
func New(host, shortHost string) *Resolver {
	return &Resolver{host: host, shortHost: shortHost}
}

// Default creates a resolver from the provider.host and provider.short_host settings.
func Default() *Resolver {
	host := viper.GetString(key.ProviderHost)
	if host == "" {
		host = constant.ProviderHost
	}

	short := viper.GetString(key.ProviderShortHost)
	if short == "" {
		short = constant.ProviderShortHost
	}

	return New(host, short)
}

func (r *Resolver) pattern() (*regexp.Regexp, error) {
	return regexp.Compile(fmt.Sprintf(patternTemplate, regexp.QuoteMeta(r.host), regexp.QuoteMeta(r.shortHost)))
}

// Resolve returns the video id embedded in url.
func (r *Resolver) Resolve(url string) (string, error) {
	if url == "" {
		return "", fault.New(fault.URL, "url is empty")
	}

	re, err := r.pattern()
	if err != nil {
		return "", fault.Wrap(fault.Regex, err)
	}

	normalized := url
	for _, p := range prefixes {
		normalized = strings.Replace(normalized, p, "", 1)
	}

	match := re.FindStringSubmatch(normalized)
	if len(match) < 2 {
		return "", fault.Newf(fault.Regex, "no video id found in %q", url)
	}

	return match[1], nil
}

// IsID reports whether s looks like a bare video id.
func IsID(s string) bool {
	return bareID.MatchString(s)
}

// Normalize accepts either a bare video id or a page URL.
func (r *Resolver) Normalize(input string) (string, error) {
	input = strings.TrimSpace(input)
	if IsID(input) {
		return input, nil
	}

	return r.Resolve(input)
}
