package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/loofsan/SF-Hacks2025/internal/category"
	"github.com/loofsan/SF-Hacks2025/internal/category/repository"
	"github.com/stretchr/testify/require"
)

func TestCategoryHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	repo := repository.NewMemoryRepo(
		category.Category{Name: "food", DisplayName: "Food Assistance", Keywords: []string{"meal"}},
		category.Category{Name: "housing", DisplayName: "Housing & Shelter"},
	)
	RegisterCategoryRoutes(g.Group("/api"), repo)

	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/categories", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var list []category.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	require.Equal(t, "food", list[0].Name)

	w = httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/categories/housing", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var one category.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &one))
	require.Equal(t, "Housing & Shelter", one.DisplayName)

	w = httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/categories/legal", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}
