// Package network provides the HTTP fetch primitive used by extraction sessions.
package network

import (
	"net/http"
	"time"

	"github.com/spf13/viper"
	"github.com/tubex-cli/tubex/key"
)

const defaultTimeout = time.Minute

// NewClient builds an HTTP client from the network.* settings.
func NewClient() *http.Client {
	timeout := viper.GetDuration(key.NetworkTimeout)
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	var transport http.RoundTripper = newTransport()
	if viper.GetBool(key.NetworkTLSFingerprint) {
		transport = newFingerprintTransport(timeout)
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 20
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}
