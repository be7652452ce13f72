package network

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tubex-cli/tubex/filesystem"
	"github.com/tubex-cli/tubex/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHTTPFetcher(t *testing.T) {
	Convey("Given a test server", t, func() {
		var agent string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			agent = r.UserAgent()
			if r.URL.Path == "/missing" {
				http.NotFound(w, r)
				return
			}
			_, _ = w.Write([]byte("status=ok"))
		}))
		defer server.Close()

		fetcher := NewHTTPFetcher(server.Client(), "tubex-test")

		Convey("A successful fetch delivers the body once", func() {
			ch := fetcher.Fetch(server.URL+"/info", TagExtract)
			res := <-ch
			So(res.Err, ShouldBeNil)
			So(res.Tag, ShouldEqual, TagExtract)
			So(res.Status, ShouldEqual, http.StatusOK)
			So(string(res.Body), ShouldEqual, "status=ok")
			So(agent, ShouldEqual, "tubex-test")

			_, open := <-ch
			So(open, ShouldBeFalse)
		})

		Convey("A non-2xx status is an error", func() {
			res := <-fetcher.Fetch(server.URL+"/missing", TagThumbnail)
			So(res.Err, ShouldNotBeNil)
			So(res.Status, ShouldEqual, http.StatusNotFound)
			So(res.Tag, ShouldEqual, TagThumbnail)
		})
	})

	Convey("A malformed URL is an error", t, func() {
		res := <-NewHTTPFetcher(nil, "").Fetch("://bad", TagExtract)
		So(res.Err, ShouldNotBeNil)
	})
}

func TestNewClient(t *testing.T) {
	Convey("Given network settings", t, func() {
		defer viper.Reset()

		Convey("The timeout is taken from config", func() {
			viper.Set(key.NetworkTimeout, "5s")
			So(NewClient().Timeout.Seconds(), ShouldEqual, 5)
		})

		Convey("A missing timeout falls back to the default", func() {
			So(NewClient().Timeout, ShouldEqual, defaultTimeout)
		})

		Convey("The fingerprint transport is opt-in", func() {
			viper.Set(key.NetworkTLSFingerprint, true)
			_, ok := NewClient().Transport.(*fingerprintTransport)
			So(ok, ShouldBeTrue)
		})
	})
}
