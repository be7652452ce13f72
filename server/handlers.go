package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/tubex-cli/tubex/extractor"
	"github.com/tubex-cli/tubex/fault"
	"github.com/tubex-cli/tubex/inline"
	"github.com/tubex-cli/tubex/key"
	"github.com/tubex-cli/tubex/quality"
)

type errorResponse struct {
	Error     string `json:"error"`
	Kind      string `json:"kind,omitempty"`
	RequestID string `json:"request_id"`
}

type thumbnailResponse struct {
	VideoID string `json:"video_id"`
	Quality string `json:"quality"`
	URL     string `json:"url"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) resolve(c *gin.Context) {
	tier, ok := s.tierParam(c, viper.GetString(key.ExtractDefaultQuality))
	if !ok {
		return
	}

	input := c.Query("input")
	session, ok := s.extract(c, input)
	if !ok {
		return
	}

	result := inline.NewResult(input, tier, session, c.Query("candidates") == "true")
	if result.URL == "" {
		s.fail(c, http.StatusNotFound, fault.Newf(fault.URL, "no stream for quality %s", tier))
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) thumbnail(c *gin.Context) {
	tier, ok := s.tierParam(c, viper.GetString(key.ThumbnailQuality))
	if !ok {
		return
	}

	session, ok := s.extract(c, c.Query("input"))
	if !ok {
		return
	}

	link := session.ThumbnailURL(tier)
	if link == "" {
		s.fail(c, http.StatusNotFound, fault.Newf(fault.URL, "no thumbnail for quality %s", tier))
		return
	}

	if c.Query("redirect") == "true" {
		c.Redirect(http.StatusFound, link)
		return
	}

	c.JSON(http.StatusOK, thumbnailResponse{
		VideoID: session.VideoID(),
		Quality: tier.String(),
		URL:     link,
	})
}

func (s *Server) tierParam(c *gin.Context, fallback string) (quality.Tier, bool) {
	if fallback == "" {
		fallback = quality.Any.String()
	}

	tier, err := quality.Parse(c.DefaultQuery("quality", fallback))
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return quality.Unknown, false
	}

	return tier, true
}

func (s *Server) extract(c *gin.Context, input string) (*extractor.Session, bool) {
	if input == "" {
		s.fail(c, http.StatusBadRequest, fault.New(fault.URL, "input is required"))
		return nil, false
	}

	session := s.newSession(input)
	if err := session.Err(); err != nil {
		s.fail(c, statusOf(err), err)
		return nil, false
	}

	select {
	case done := <-session.Start():
		if done.Err != nil {
			s.fail(c, statusOf(done.Err), done.Err)
			return nil, false
		}
	case <-c.Request.Context().Done():
		s.fail(c, http.StatusGatewayTimeout, c.Request.Context().Err())
		return nil, false
	}

	return session, true
}

func (s *Server) fail(c *gin.Context, status int, err error) {
	response := errorResponse{
		Error:     err.Error(),
		RequestID: c.GetString(RequestIDHeader),
	}

	if kind := fault.KindOf(err); kind != 0 {
		response.Kind = kind.String()
	}

	c.AbortWithStatusJSON(status, response)
}

func statusOf(err error) int {
	switch fault.KindOf(err) {
	case fault.Network:
		return http.StatusBadGateway
	case fault.Parse:
		return http.StatusUnprocessableEntity
	case fault.URL, fault.ID, fault.Regex:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
