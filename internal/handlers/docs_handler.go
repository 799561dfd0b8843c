package handlers

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// scalarPage is the documentation UI shell. Scalar loads the endpoint
// catalog from /docs/oas3.json at page load.
const scalarPage = `<!DOCTYPE html>
<html>
<head>
  <title>Receipt Insights API Documentation</title>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
</head>
<body>
  <script id="api-reference" data-url="/docs/oas3.json"></script>
  <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`

// DocsHandler handles API documentation endpoints. The endpoint catalog is
// built in code at startup so the docs never drift behind a generated file.
type DocsHandler struct {
	scalarHTML []byte
	scalarETag string
	catalog    []byte
}

// NewDocsHandler creates a new documentation handler
func NewDocsHandler() *DocsHandler {
	html := []byte(scalarPage)
	catalog, err := json.Marshal(buildEndpointCatalog())
	if err != nil {
		// The catalog is a static literal; a marshal failure is a bug
		panic(fmt.Sprintf("failed to build endpoint catalog: %v", err))
	}

	return &DocsHandler{
		scalarHTML: html,
		scalarETag: generateETag(html),
		catalog:    catalog,
	}
}

// ServeScalarUI serves the Scalar HTML page
// @Summary API Documentation UI
// @Description Serves the interactive Scalar documentation interface
// @Tags Documentation
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /docs [get]
func (h *DocsHandler) ServeScalarUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Response().Header().Set("Pragma", "no-cache")
	c.Response().Header().Set("Expires", "0")

	if h.scalarETag != "" {
		c.Response().Header().Set("ETag", h.scalarETag)
		if match := c.Request().Header.Get("If-None-Match"); match != "" && match == h.scalarETag {
			return c.NoContent(http.StatusNotModified)
		}
	}

	return c.HTMLBlob(http.StatusOK, h.scalarHTML)
}

// ServeOAS3JSON serves the OpenAPI endpoint catalog.
// This endpoint is called by Scalar to load the API specification
func (h *DocsHandler) ServeOAS3JSON(c echo.Context) error {
	c.Response().Header().Set("Access-Control-Allow-Origin", "*")
	c.Response().Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	c.Response().Header().Set("Access-Control-Allow-Headers", "Content-Type")
	c.Response().Header().Set("Cache-Control", "public, max-age=300") // Cache for 5 minutes
	return c.JSONBlob(http.StatusOK, h.catalog)
}

// buildEndpointCatalog assembles the OpenAPI 3 document describing every
// route the server registers
func buildEndpointCatalog() map[string]interface{} {
	idParam := map[string]interface{}{
		"name": "id", "in": "path", "required": true,
		"description": "Numeric receipt ID",
		"schema":      map[string]interface{}{"type": "integer"},
	}
	monthsParam := map[string]interface{}{
		"name": "months", "in": "query",
		"description": "Trailing window in whole calendar months including the current one (default 6, max 60)",
		"schema":      map[string]interface{}{"type": "integer"},
	}
	recentParam := map[string]interface{}{
		"name": "recent", "in": "query",
		"description": "Number of most recently uploaded receipts to include (default 10, max 100)",
		"schema":      map[string]interface{}{"type": "integer"},
	}

	return map[string]interface{}{
		"openapi": "3.0.3",
		"info": map[string]interface{}{
			"title":       "Receipt Insights API",
			"description": "Search, browse and aggregate uploaded purchase receipts.",
			"version":     "1.0.0",
		},
		"paths": map[string]interface{}{
			"/api/v1/receipts": map[string]interface{}{
				"get": operation("Receipts", "List receipts",
					"Filtered, sorted receipt list. search matches merchant name, filename and raw text; category filters on item categories; sort is one of newest, oldest, amount_high, amount_low, merchant.",
					map[string]interface{}{
						"name": "search", "in": "query",
						"description": "Case-insensitive substring filter",
						"schema":      map[string]interface{}{"type": "string"},
					},
					map[string]interface{}{
						"name": "category", "in": "query",
						"description": "Exact item category filter",
						"schema":      map[string]interface{}{"type": "string"},
					},
					map[string]interface{}{
						"name": "sort", "in": "query",
						"schema": map[string]interface{}{
							"type": "string",
							"enum": []string{"newest", "oldest", "amount_high", "amount_low", "merchant"},
						},
					},
					map[string]interface{}{
						"name": "offset", "in": "query",
						"schema": map[string]interface{}{"type": "integer"},
					},
					map[string]interface{}{
						"name": "limit", "in": "query",
						"description": "Page size (default 50, max 500)",
						"schema":      map[string]interface{}{"type": "integer"},
					},
				),
			},
			"/api/v1/receipts/categories": map[string]interface{}{
				"get": operation("Receipts", "List categories",
					"Distinct item categories across the full collection, alphabetically sorted."),
			},
			"/api/v1/receipts/{id}": map[string]interface{}{
				"get": operation("Receipts", "Get receipt",
					"Single receipt with its line items.", idParam),
				"put": operation("Receipts", "Update receipt",
					"Partial edit of merchant_name, total_amount or purchase_date. At least one field is required.", idParam),
				"delete": operation("Receipts", "Delete receipt",
					"Removes a receipt and its line items.", idParam),
			},
			"/api/v1/analytics/expenses": map[string]interface{}{
				"get": operation("Analytics", "Expense analytics",
					"Windowed totals, sparse monthly buckets, category breakdown and recent receipts.",
					monthsParam, recentParam),
			},
			"/api/v1/analytics/categories": map[string]interface{}{
				"get": operation("Analytics", "Category statistics",
					"Per-category item counts, totals and averages over the window.", monthsParam),
			},
			"/api/v1/analytics/monthly-trends": map[string]interface{}{
				"get": operation("Analytics", "Monthly trends",
					"Month-by-category spend matrix keyed by YYYY-MM.", monthsParam),
			},
			"/api/v1/analytics/summary": map[string]interface{}{
				"get": operation("Analytics", "Window summary",
					"Dashboard tile figures computed from the full windowed set.", monthsParam),
			},
			"/api/v1/analytics/dashboard": map[string]interface{}{
				"get": operation("Analytics", "Dashboard",
					"Every dashboard aggregate in one response; the computations run concurrently.",
					monthsParam, recentParam),
			},
			"/health": map[string]interface{}{
				"get": operation("System", "Health check",
					"Database reachability and snapshot freshness."),
			},
		},
	}
}

// operation builds one OpenAPI operation object
func operation(tag, summary, description string, parameters ...map[string]interface{}) map[string]interface{} {
	op := map[string]interface{}{
		"tags":        []string{tag},
		"summary":     summary,
		"description": description,
		"responses": map[string]interface{}{
			"200": map[string]interface{}{"description": "Success"},
		},
	}
	if len(parameters) > 0 {
		op["parameters"] = parameters
	}
	return op
}

// generateETag creates an ETag hash for cache control
func generateETag(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	hash := md5.Sum(data)
	return fmt.Sprintf("\"%x\"", hash)
}
