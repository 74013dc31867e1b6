package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/loofsan/SF-Hacks2025/internal/feedback"
	"github.com/loofsan/SF-Hacks2025/internal/feedback/repository"
	"github.com/loofsan/SF-Hacks2025/internal/feedback/service"
	"github.com/stretchr/testify/require"
)

type brokenRepo struct{ *repository.MemoryRepo }

func (brokenRepo) Create(context.Context, *feedback.Feedback) (string, error) {
	return "", errors.New("connection reset")
}

func router(repo repository.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	RegisterFeedbackRoutes(g.Group("/api"), service.New(repo, nil))
	return g
}

func post(g *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/feedback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	return w
}

func get(g *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestFeedbackHandler_CreateAndStats(t *testing.T) {
	g := router(repository.NewMemoryRepo())

	require.Equal(t, http.StatusBadRequest, post(g, `{"rating":3}`).Code)
	require.Equal(t, http.StatusBadRequest, post(g, `{"resource_id":"r1","rating":9}`).Code)
	require.Equal(t, http.StatusBadRequest, post(g, `{"resource_id":"r1","comment":"`+strings.Repeat("x", 501)+`"}`).Code)

	w := post(g, `{"resource_id":"r1","rating":4}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var f feedback.Feedback
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &f))
	require.True(t, f.Helpful)
	require.NotEmpty(t, f.SessionID)

	require.Equal(t, http.StatusCreated, post(g, `{"resource_id":"r1","rating":2,"helpful":false}`).Code)
	require.Equal(t, http.StatusCreated, post(g, `{"resource_id":"r1"}`).Code)

	w = get(g, "/api/feedback/stats/resource/r1")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"averageRating":3,"totalFeedback":3,"ratingCount":2,"viewCount":1,"helpfulCount":1}`, w.Body.String())

	w = get(g, "/api/feedback/stats/resource/none")
	require.JSONEq(t, `{"averageRating":0,"totalFeedback":0,"ratingCount":0,"viewCount":0,"helpfulCount":0}`, w.Body.String())

	w = get(g, "/api/feedback/resource/r1")
	require.Equal(t, http.StatusOK, w.Code)
	var list []feedback.Feedback
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 3)

	w = get(g, "/api/feedback")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 3)
}

func TestFeedbackHandler_WriteFailureAccepted(t *testing.T) {
	g := router(brokenRepo{repository.NewMemoryRepo()})
	w := post(g, `{"resource_id":"r1","rating":5}`)
	require.Equal(t, http.StatusAccepted, w.Code)
	require.JSONEq(t, `{"recorded":false}`, w.Body.String())
}
