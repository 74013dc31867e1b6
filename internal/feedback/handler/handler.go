package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/loofsan/SF-Hacks2025/internal/feedback"
	"github.com/loofsan/SF-Hacks2025/internal/feedback/service"
	"github.com/loofsan/SF-Hacks2025/pkg/logger"
)

// RegisterFeedbackRoutes mounts the feedback endpoints under r.
func RegisterFeedbackRoutes(r gin.IRouter, svc *service.Service) {
	g := r.Group("/feedback")

	g.POST("", func(c *gin.Context) {
		var sub feedback.Submission
		if err := c.ShouldBindJSON(&sub); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		f, recorded, err := svc.Submit(c.Request.Context(), sub)
		if err != nil {
			writeError(c, err)
			return
		}
		if !recorded {
			c.JSON(http.StatusAccepted, gin.H{"recorded": false})
			return
		}
		c.JSON(http.StatusCreated, f)
	})

	g.GET("", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	})

	g.GET("/resource/:id", func(c *gin.Context) {
		list, err := svc.ByResource(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	})

	g.GET("/stats/resource/:id", func(c *gin.Context) {
		stats, err := svc.Stats(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	})
}

func writeError(c *gin.Context, err error) {
	if errors.Is(err, feedback.ErrInvalidFeedback) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	logger.Errorf("feedback %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
