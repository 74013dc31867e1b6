package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/loofsan/SF-Hacks2025/internal/search"
	"github.com/loofsan/SF-Hacks2025/pkg/logger"
)

// RegisterSearchRoutes mounts the search endpoints. Extra middleware (rate
// limiting) applies to the natural-language search only.
func RegisterSearchRoutes(r gin.IRouter, svc *search.Service, mw ...gin.HandlerFunc) {
	g := r.Group("/search")

	post := append(append([]gin.HandlerFunc{}, mw...), func(c *gin.Context) {
		var req search.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		req.UserAgent = c.Request.UserAgent()
		resp, err := svc.Search(c.Request.Context(), req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	})
	g.POST("", post...)

	g.GET("/keyword/:keyword", func(c *gin.Context) {
		list, err := svc.Keyword(c.Request.Context(), c.Param("keyword"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": len(list), "resources": list})
	})
}

func writeError(c *gin.Context, err error) {
	if errors.Is(err, search.ErrEmptyQuery) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	logger.Errorf("search: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
