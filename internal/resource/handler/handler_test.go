package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/loofsan/SF-Hacks2025/internal/resource"
	"github.com/loofsan/SF-Hacks2025/internal/resource/service"
	"github.com/stretchr/testify/require"
)

type stubSimilar struct {
	gotID    string
	gotLimit int
}

func (s *stubSimilar) FindSimilar(_ context.Context, id string, limit int) []*resource.Resource {
	s.gotID, s.gotLimit = id, limit
	return []*resource.Resource{}
}

func setup(t *testing.T) (*gin.Engine, *service.Service, *stubSimilar) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	g := gin.New()
	svc := service.NewMemoryService()
	sim := &stubSimilar{}
	RegisterResourceRoutes(g.Group("/api"), svc, sim)
	return g, svc, sim
}

func do(g *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
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

func TestResourceHandler_Submission(t *testing.T) {
	g, svc, _ := setup(t)

	w := do(g, http.MethodPost, "/api/resources", `{"name":"X"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(g, http.MethodPost, "/api/resources", `{"name":"X","address":"Y","verificationStatus":"verified"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var cr struct {
		Success  bool `json:"success"`
		Resource struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"resource"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cr))
	require.True(t, cr.Success)
	require.Equal(t, "X", cr.Resource.Name)

	stored, err := svc.Get(context.Background(), cr.Resource.ID)
	require.NoError(t, err)
	require.Equal(t, resource.StatusPending, stored.VerificationStatus)

	w = do(g, http.MethodGet, "/api/resources/"+cr.Resource.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got resource.Resource
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "Y", got.Address)
}

func TestResourceHandler_NotFound(t *testing.T) {
	g, _, _ := setup(t)

	require.Equal(t, http.StatusNotFound, do(g, http.MethodGet, "/api/resources/nope", "").Code)
	require.Equal(t, http.StatusNotFound, do(g, http.MethodPatch, "/api/resources/nope", `{"name":"n"}`).Code)
	require.Equal(t, http.StatusNotFound, do(g, http.MethodDelete, "/api/resources/nope", "").Code)
}

func TestResourceHandler_PatchAndDelete(t *testing.T) {
	g, svc, _ := setup(t)
	id, err := svc.Create(context.Background(), &resource.Resource{Name: "Old", Address: "A"})
	require.NoError(t, err)

	w := do(g, http.MethodPatch, "/api/resources/"+id, `{"name":"New","verificationStatus":"verified"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var got resource.Resource
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "New", got.Name)
	require.Equal(t, resource.StatusVerified, got.VerificationStatus)

	w = do(g, http.MethodPatch, "/api/resources/"+id, `{"verificationStatus":"approved"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	require.Equal(t, http.StatusNoContent, do(g, http.MethodDelete, "/api/resources/"+id, "").Code)
	require.Equal(t, http.StatusNotFound, do(g, http.MethodGet, "/api/resources/"+id, "").Code)
}

func TestResourceHandler_Nearby(t *testing.T) {
	g, svc, _ := setup(t)
	ctx := context.Background()
	_, err := svc.Create(ctx, &resource.Resource{Name: "close", Location: resource.NewPoint(-122.42, 37.77)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &resource.Resource{Name: "far", Location: resource.NewPoint(-122.27, 37.80)})
	require.NoError(t, err)

	w := do(g, http.MethodGet, "/api/resources/nearby/abc/def", "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(g, http.MethodGet, "/api/resources/nearby/-122.42/37.77/abc", "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(g, http.MethodGet, "/api/resources/nearby/-122.42/37.77", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []resource.Resource
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	require.Equal(t, "close", list[0].Name)

	w = do(g, http.MethodGet, "/api/resources/nearby/-122.42/37.77/50000", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	require.Equal(t, "close", list[0].Name)
}

func TestResourceHandler_ListingsAndSimilar(t *testing.T) {
	g, svc, sim := setup(t)
	ctx := context.Background()
	_, err := svc.Create(ctx, &resource.Resource{Name: "p", Address: "a", Category: "food", Subcategories: []string{"Meal Programs"}})
	require.NoError(t, err)

	w := do(g, http.MethodGet, "/api/resources", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []resource.Resource
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)

	w = do(g, http.MethodGet, "/api/resources/category/housing", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())

	w = do(g, http.MethodGet, "/api/resources/subcategory/Meal%20Programs", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)

	w = do(g, http.MethodGet, "/api/resources/abc/similar?limit=5", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())
	require.Equal(t, "abc", sim.gotID)
	require.Equal(t, 5, sim.gotLimit)
}
