package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/loofsan/SF-Hacks2025/internal/app"
	"github.com/loofsan/SF-Hacks2025/internal/search"
	"github.com/loofsan/SF-Hacks2025/pkg/metrics"
	"github.com/loofsan/SF-Hacks2025/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, opts Options) (*gin.Engine, *app.App) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	stores, err := app.MemoryStores(context.Background(), true)
	require.NoError(t, err)
	a := app.New(stores, nil, nil)
	return NewRouter(a, opts), a
}

func serve(g *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	g.ServeHTTP(w, req)
	return w
}

func TestHealthReadyAndMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.RegisterCollectors(reg)
	g, a := newTestRouter(t, Options{Gatherer: reg})

	w := serve(g, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "healthy", w.Body.String())

	w = serve(g, http.MethodGet, "/ready", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"ready"`)

	a.Stores.Ping = func(context.Context) error { return errors.New("down") }
	w = serve(g, http.MethodGet, "/ready", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Contains(t, w.Body.String(), `"store":false`)

	metrics.Searches.WithLabelValues("fallback").Inc()
	w = serve(g, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "navigator_searches_total")
}

func TestReadyReportsExtraDeps(t *testing.T) {
	g, _ := newTestRouter(t, Options{Deps: map[string]func(context.Context) error{
		"redis": func(context.Context) error { return errors.New("refused") },
	}})
	w := serve(g, http.MethodGet, "/ready", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Contains(t, w.Body.String(), `"redis":false`)
}

func TestSwaggerEndpoints(t *testing.T) {
	g, _ := newTestRouter(t, Options{})

	w := serve(g, http.MethodGet, "/swagger/index.html", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "swagger-ui")

	w = serve(g, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, w.Code)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	paths := doc["paths"].(map[string]any)
	require.Contains(t, paths, "/api/search")
	require.Contains(t, paths, "/api/resources/{id}/similar")
	require.Contains(t, paths, "/api/feedback/stats/resource/{id}")
}

func TestCORSPreflight(t *testing.T) {
	g, _ := newTestRouter(t, Options{})
	w := serve(g, http.MethodOptions, "/api/search", "")
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSearchEndToEnd(t *testing.T) {
	g, a := newTestRouter(t, Options{})

	require.Equal(t, http.StatusBadRequest, serve(g, http.MethodPost, "/api/search", `{"query":"   "}`).Code)

	w := serve(g, http.MethodPost, "/api/search", `{"query":"shelter tonight","sessionId":"s-1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resp search.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Resources, 1)
	require.Equal(t, "Sunset Community Shelter", resp.Resources[0].Name)
	require.Equal(t, search.SourceFallback, resp.Interpretation.Source)
	require.NotEmpty(t, resp.Explanation)
	require.NotEmpty(t, resp.SearchLogID)

	logs, err := a.Stores.SearchLogs.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.Equal(t, "s-1", logs[0].SessionID)

	similar := serve(g, http.MethodGet, "/api/resources/"+resp.Resources[0].ID+"/similar", "")
	require.Equal(t, http.StatusOK, similar.Code)
	require.NotContains(t, similar.Body.String(), resp.Resources[0].ID)

	w = serve(g, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Healthcare Services")
}

func TestSearchLimiterOnlyGuardsSearch(t *testing.T) {
	g, _ := newTestRouter(t, Options{SearchLimiter: middleware.RateLimitMiddleware(0.001, 1)})

	require.Equal(t, http.StatusOK, serve(g, http.MethodPost, "/api/search", `{"query":"food"}`).Code)
	require.Equal(t, http.StatusTooManyRequests, serve(g, http.MethodPost, "/api/search", `{"query":"food"}`).Code)
	require.Equal(t, http.StatusOK, serve(g, http.MethodGet, "/api/search/keyword/food", "").Code)
	require.Equal(t, http.StatusOK, serve(g, http.MethodGet, "/api/resources", "").Code)
}
