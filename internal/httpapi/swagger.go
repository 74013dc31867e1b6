package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger serves a Swagger UI page and the OpenAPI document.
//   - GET /swagger/index.html
//   - GET /swagger/doc.json
func RegisterSwagger(r gin.IRouter) {
	r.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	r.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>community-resource-navigator - Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "community-resource-navigator", "version": "v0.1.0" },
  "paths": {
    "/api/search": {
      "post": {
        "summary": "Natural-language search",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["query"],"properties":{"query":{"type":"string"},"sessionId":{"type":"string"},"location":{"type":"object","properties":{"latitude":{"type":"number"},"longitude":{"type":"number"}}}}}}}},
        "responses": { "200": { "description": "resources, explanation, searchLogId, interpretation" }, "400": { "description": "empty query" }, "429": { "description": "rate limited" } }
      }
    },
    "/api/search/keyword/{keyword}": {
      "get": { "summary": "Keyword search", "parameters": [{"name":"keyword","in":"path","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "count and resources" } } }
    },
    "/api/resources": {
      "get": { "summary": "List resources", "responses": { "200": { "description": "resources" } } },
      "post": { "summary": "Submit a resource for verification", "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["name","address"],"properties":{"name":{"type":"string"},"address":{"type":"string"},"category":{"type":"string"},"description":{"type":"string"}}}}}}, "responses": { "201": { "description": "submitted, pending verification" }, "400": { "description": "name and address required" } } }
    },
    "/api/resources/{id}": {
      "get": { "summary": "Get resource", "responses": { "200": { "description": "resource" }, "404": { "description": "not found" } } },
      "patch": { "summary": "Update resource", "responses": { "200": { "description": "updated resource" }, "400": { "description": "invalid" }, "404": { "description": "not found" } } },
      "delete": { "summary": "Delete resource", "responses": { "204": { "description": "deleted" }, "404": { "description": "not found" } } }
    },
    "/api/resources/{id}/similar": {
      "get": { "summary": "Related resources", "parameters": [{"name":"limit","in":"query","schema":{"type":"integer","default":3,"maximum":20}}], "responses": { "200": { "description": "resources, possibly empty" } } }
    },
    "/api/resources/category/{category}": { "get": { "summary": "Resources by category", "responses": { "200": { "description": "resources" } } } },
    "/api/resources/subcategory/{subcategory}": { "get": { "summary": "Resources by subcategory", "responses": { "200": { "description": "resources" } } } },
    "/api/resources/nearby/{lon}/{lat}/{maxDistance}": {
      "get": { "summary": "Resources near a point, nearest first (maxDistance optional, default 5000 m)", "responses": { "200": { "description": "resources" }, "400": { "description": "non-numeric coordinates" } } }
    },
    "/api/categories": { "get": { "summary": "List categories", "responses": { "200": { "description": "categories" } } } },
    "/api/categories/{name}": { "get": { "summary": "Get category", "responses": { "200": { "description": "category" }, "404": { "description": "not found" } } } },
    "/api/feedback": {
      "get": { "summary": "List feedback", "responses": { "200": { "description": "feedback events" } } },
      "post": { "summary": "Record a rating or view", "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["resource_id"],"properties":{"resource_id":{"type":"string"},"rating":{"type":"integer","minimum":0,"maximum":5},"helpful":{"type":"boolean"},"comment":{"type":"string","maxLength":500},"session_id":{"type":"string"}}}}}}, "responses": { "201": { "description": "recorded" }, "202": { "description": "accepted but not recorded" }, "400": { "description": "invalid" } } }
    },
    "/api/feedback/resource/{id}": { "get": { "summary": "Feedback for a resource", "responses": { "200": { "description": "feedback events" } } } },
    "/api/feedback/stats/resource/{id}": { "get": { "summary": "Aggregate feedback stats", "responses": { "200": { "description": "stats" } } } },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "text exposition" } } } }
  }
}`
