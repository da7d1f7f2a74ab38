package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// RequestIDTestSuite defines the test suite for request ID middleware
type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

// SetupTest runs before each test
func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

// TestRequestIDTestSuite runs the test suite
func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

func (s *RequestIDTestSuite) TestRequestID_GeneratesID() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		requestID := c.Get(RequestIDContextKey)
		s.NotNil(requestID)
		s.NotEmpty(requestID.(string))
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)
	s.NoError(err)
	s.NotEmpty(rec.Header().Get(RequestIDHeader))
}

func (s *RequestIDTestSuite) TestRequestID_HonorsInboundHeader() {
	existingID := "client-supplied-id-12345"

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, existingID)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		s.Equal(existingID, c.Get(RequestIDContextKey).(string))
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)
	s.NoError(err)
	s.Equal(existingID, rec.Header().Get(RequestIDHeader))
}

func (s *RequestIDTestSuite) TestRequestID_ContextAndHeaderAgree() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	var contextID string
	handler := RequestID()(func(c echo.Context) error {
		contextID = c.Get(RequestIDContextKey).(string)
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)
	s.NoError(err)
	s.Equal(contextID, rec.Header().Get(RequestIDHeader))
}

func (s *RequestIDTestSuite) TestGetRequestID_MissingReturnsEmpty() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Empty(GetRequestID(c))
}
