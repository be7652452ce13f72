// Package version looks up the latest tubex release and compares versions.
package version

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tubex-cli/tubex/internal/cache"
	"github.com/tubex-cli/tubex/util"
	"github.com/tubex-cli/tubex/where"
)

const (
	repository = "tubex-cli/tubex"
	releaseAPI = "https://api.github.com/repos/" + repository + "/releases/latest"
)

// ReleaseURL is the page of a tagged release.
func ReleaseURL(version string) string {
	return fmt.Sprintf("https://github.com/%s/releases/tag/v%s", repository, version)
}

var releases = cache.New(where.Version(), time.Hour*24*2)

type release struct {
	Version string `json:"version"`
}

var client = &http.Client{Timeout: 10 * time.Second}

// Latest returns the newest released version, cached for two days.
func Latest() (string, error) {
	return latest(releaseAPI)
}

func latest(api string) (string, error) {
	k := cache.Key(api)

	var cached release
	if releases.Read(k, &cached) && cached.Version != "" {
		return cached.Version, nil
	}

	releases.CollectGarbage()

	resp, err := client.Get(api)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release lookup: %s", resp.Status)
	}

	var tagged struct {
		TagName string `json:"tag_name"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&tagged); err != nil {
		return "", err
	}

	if tagged.TagName == "" {
		return "", errors.New("empty tag name")
	}

	version := strings.TrimPrefix(tagged.TagName, "v")
	_ = releases.Write(k, release{Version: version})
	return version, nil
}
