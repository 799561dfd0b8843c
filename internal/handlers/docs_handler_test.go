package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// DocsHandlerSuite is the test suite for documentation endpoints
type DocsHandlerSuite struct {
	suite.Suite
	handler *DocsHandler
	e       *echo.Echo
}

// SetupTest runs before each test in the suite
func (s *DocsHandlerSuite) SetupTest() {
	s.handler = NewDocsHandler()
	s.e = echo.New()
}

// TestDocsHandler runs the test suite
func TestDocsHandler(t *testing.T) {
	suite.Run(t, new(DocsHandlerSuite))
}

// TestServeScalarUI tests the Scalar UI endpoint
func (s *DocsHandlerSuite) TestServeScalarUI() {
	s.Run("successfully serves Scalar HTML page", func() {
		req := httptest.NewRequest(http.MethodGet, "/docs", nil)
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)

		err := s.handler.ServeScalarUI(c)

		s.NoError(err)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Header().Get("Content-Type"), "text/html")
		s.Contains(rec.Body.String(), "Receipt Insights API Documentation")
		s.Contains(rec.Body.String(), "/docs/oas3.json", "the page points Scalar at the endpoint catalog")
	})

	s.Run("sets correct cache headers", func() {
		req := httptest.NewRequest(http.MethodGet, "/docs", nil)
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)

		err := s.handler.ServeScalarUI(c)

		s.NoError(err)
		s.Equal("no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
		s.NotEmpty(rec.Header().Get("ETag"))
	})

	s.Run("returns 304 when the ETag matches", func() {
		req := httptest.NewRequest(http.MethodGet, "/docs", nil)
		req.Header.Set("If-None-Match", s.handler.scalarETag)
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)

		err := s.handler.ServeScalarUI(c)

		s.NoError(err)
		s.Equal(http.StatusNotModified, rec.Code)
	})
}

// TestServeOAS3JSON tests the endpoint catalog
func (s *DocsHandlerSuite) TestServeOAS3JSON() {
	s.Run("serves a decodable OpenAPI document", func() {
		req := httptest.NewRequest(http.MethodGet, "/docs/oas3.json", nil)
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)

		err := s.handler.ServeOAS3JSON(c)

		s.NoError(err)
		s.Equal(http.StatusOK, rec.Code)

		var catalog map[string]interface{}
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &catalog))
		s.Equal("3.0.3", catalog["openapi"])

		info := catalog["info"].(map[string]interface{})
		s.Equal("Receipt Insights API", info["title"])
	})

	s.Run("catalog lists every registered route group", func() {
		req := httptest.NewRequest(http.MethodGet, "/docs/oas3.json", nil)
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)

		s.NoError(s.handler.ServeOAS3JSON(c))

		var catalog map[string]interface{}
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &catalog))
		paths := catalog["paths"].(map[string]interface{})

		for _, path := range []string{
			"/api/v1/receipts",
			"/api/v1/receipts/categories",
			"/api/v1/receipts/{id}",
			"/api/v1/analytics/expenses",
			"/api/v1/analytics/categories",
			"/api/v1/analytics/monthly-trends",
			"/api/v1/analytics/summary",
			"/api/v1/analytics/dashboard",
			"/health",
		} {
			s.Contains(paths, path)
		}

		receipt := paths["/api/v1/receipts/{id}"].(map[string]interface{})
		s.Contains(receipt, "get")
		s.Contains(receipt, "put")
		s.Contains(receipt, "delete")
	})

	s.Run("sets CORS and cache headers", func() {
		req := httptest.NewRequest(http.MethodGet, "/docs/oas3.json", nil)
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)

		err := s.handler.ServeOAS3JSON(c)

		s.NoError(err)
		s.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
		s.Equal("GET, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
		s.Equal("public, max-age=300", rec.Header().Get("Cache-Control"))
	})
}
