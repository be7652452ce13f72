package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubex-cli/tubex/extractor"
	"github.com/tubex-cli/tubex/inline"
	"github.com/tubex-cli/tubex/network"
)

type fakeFetcher struct{}

func (fakeFetcher) Fetch(u string, tag network.Tag) <-chan network.Response {
	out := make(chan network.Response, 1)
	res := network.Response{Tag: tag, URL: u, Status: 200}

	switch {
	case strings.Contains(u, "video_id=dQw4w9WgXcQ"):
		stream := "itag=22&type=video%2Fmp4&url=" + url.QueryEscape("http://v/22") + "&sig=S"
		res.Body = []byte("title=Rick&iurlhq=" + url.QueryEscape("http://img/hq.jpg") +
			"&url_encoded_fmt_stream_map=" + url.QueryEscape(stream))
	case strings.Contains(u, "video_id=bbbbbbbbbbb"):
		res.Body = []byte("status=fail&reason=Video+unavailable")
	default:
		res.Err = errors.New("unexpected status: 404 Not Found")
	}

	out <- res
	close(out)
	return out
}

func newSession(input string) *extractor.Session {
	if strings.Contains(input, "/") {
		return extractor.NewFromURL(input, extractor.WithFetcher(fakeFetcher{}))
	}
	return extractor.NewFromID(input, extractor.WithFetcher(fakeFetcher{}))
}

func get(target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header.Set(k, v[0])
	}

	rec := httptest.NewRecorder()
	New(newSession).Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](rec *httptest.ResponseRecorder) T {
	var v T
	So(json.Unmarshal(rec.Body.Bytes(), &v), ShouldBeNil)
	return v
}

func TestResolve(t *testing.T) {
	Convey("Given the API", t, func() {
		Convey("A known video resolves to its stream", func() {
			rec := get("/api/resolve?input="+url.QueryEscape("https://youtu.be/dQw4w9WgXcQ")+"&quality=mp4_720", nil)

			So(rec.Code, ShouldEqual, http.StatusOK)
			result := decode[inline.Result](rec)
			So(result.VideoID, ShouldEqual, "dQw4w9WgXcQ")
			So(result.URL, ShouldEqual, "http://v/22?signature=S")
			So(result.Meta.Title, ShouldEqual, "Rick")
		})

		Convey("A quality that did not resolve is not found", func() {
			rec := get("/api/resolve?input=dQw4w9WgXcQ&quality=webm_720", nil)
			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("A missing input is a bad request", func() {
			rec := get("/api/resolve", nil)

			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			So(decode[errorResponse](rec).Kind, ShouldEqual, "url error")
		})

		Convey("An unknown quality is a bad request", func() {
			rec := get("/api/resolve?input=dQw4w9WgXcQ&quality=8k", nil)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("A foreign URL is a bad request", func() {
			rec := get("/api/resolve?input="+url.QueryEscape("https://example.com/x"), nil)

			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			So(decode[errorResponse](rec).Kind, ShouldEqual, "regex error")
		})

		Convey("A provider failure reason is unprocessable", func() {
			rec := get("/api/resolve?input=bbbbbbbbbbb", nil)

			So(rec.Code, ShouldEqual, http.StatusUnprocessableEntity)
			So(decode[errorResponse](rec).Error, ShouldEqual, "Video unavailable")
		})

		Convey("A transport failure is a bad gateway", func() {
			rec := get("/api/resolve?input=aaaaaaaaaaa", nil)
			So(rec.Code, ShouldEqual, http.StatusBadGateway)
		})
	})
}

func TestThumbnail(t *testing.T) {
	Convey("Given the API", t, func() {
		Convey("The thumbnail URL is returned", func() {
			rec := get("/api/thumbnail?input=dQw4w9WgXcQ&quality=high", nil)

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(decode[thumbnailResponse](rec).URL, ShouldEqual, "http://img/hq.jpg")
		})

		Convey("Redirect mode points at the thumbnail", func() {
			rec := get("/api/thumbnail?input=dQw4w9WgXcQ&quality=high&redirect=true", nil)

			So(rec.Code, ShouldEqual, http.StatusFound)
			So(rec.Header().Get("Location"), ShouldEqual, "http://img/hq.jpg")
		})

		Convey("A missing thumbnail tier is not found", func() {
			rec := get("/api/thumbnail?input=dQw4w9WgXcQ&quality=medium", nil)
			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestRequestID(t *testing.T) {
	Convey("Given a request", t, func() {
		Convey("Without an id one is generated", func() {
			rec := get("/api/health", nil)

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Header().Get(RequestIDHeader), ShouldHaveLength, 36)
		})

		Convey("A valid id is echoed", func() {
			id := "0d9b6f0e-7a3c-4b8e-9c1d-2f4a5b6c7d8e"
			rec := get("/api/health", http.Header{RequestIDHeader: {id}})

			So(rec.Header().Get(RequestIDHeader), ShouldEqual, id)
		})

		Convey("Error bodies carry the id", func() {
			rec := get("/api/resolve", nil)
			So(decode[errorResponse](rec).RequestID, ShouldEqual, rec.Header().Get(RequestIDHeader))
		})
	})
}
