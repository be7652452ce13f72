package network

import (
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/viper"
	"github.com/tubex-cli/tubex/constant"
	"github.com/tubex-cli/tubex/key"
	"github.com/tubex-cli/tubex/log"
)

// Tag tells a response handler which operation a fetch belongs to.
type Tag uint8

const (
	TagExtract Tag = iota + 1
	TagThumbnail
)

func (t Tag) String() string {
	switch t {
	case TagExtract:
		return "extract"
	case TagThumbnail:
		return "thumbnail"
	default:
		return "unknown"
	}
}

// Response is the outcome of a single fetch.
// Err is set on transport failures and non-2xx statuses.
type Response struct {
	Tag    Tag
	URL    string
	Status int
	Body   []byte
	Err    error
}

// Fetcher issues exactly one request per call and delivers exactly one
// Response on the returned channel, which is then closed.
type Fetcher interface {
	Fetch(url string, tag Tag) <-chan Response
}

// HTTPFetcher is a Fetcher backed by an http.Client.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// NewHTTPFetcher creates a fetcher. An empty user agent falls back to the built-in one.
func NewHTTPFetcher(client *http.Client, userAgent string) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}

	if userAgent == "" {
		userAgent = constant.UserAgent
	}

	return &HTTPFetcher{client: client, userAgent: userAgent}
}

// Default creates a fetcher configured from the network.* settings.
func Default() *HTTPFetcher {
	return NewHTTPFetcher(NewClient(), viper.GetString(key.NetworkUserAgent))
}

// Fetch performs a GET request in the background.
func (f *HTTPFetcher) Fetch(url string, tag Tag) <-chan Response {
	out := make(chan Response, 1)

	go func() {
		defer close(out)
		out <- f.get(url, tag)
	}()

	return out
}

func (f *HTTPFetcher) get(url string, tag Tag) Response {
	res := Response{Tag: tag, URL: url}

	log.Debugf("fetching %s (%s)", url, tag)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		res.Err = err
		return res
	}

	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		log.Errorf("fetch %s: %s", url, err)
		res.Err = err
		return res
	}
	defer resp.Body.Close()

	res.Status = resp.StatusCode
	res.Body, err = io.ReadAll(resp.Body)
	if err != nil {
		res.Err = fmt.Errorf("read body: %w", err)
		return res
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		res.Err = fmt.Errorf("unexpected status: %s", resp.Status)
		log.Warnf("fetch %s: %s", url, resp.Status)
	}

	return res
}
