package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/loofsan/SF-Hacks2025/internal/resource"
	"github.com/loofsan/SF-Hacks2025/internal/resource/service"
	"github.com/loofsan/SF-Hacks2025/pkg/logger"
)

// SimilarFinder looks up resources related to a source resource. It never
// fails; an unknown source yields an empty list.
type SimilarFinder interface {
	FindSimilar(ctx context.Context, id string, limit int) []*resource.Resource
}

// RegisterResourceRoutes mounts the resource endpoints under r (normally the /api group).
func RegisterResourceRoutes(r gin.IRouter, svc *service.Service, similar SimilarFinder) {
	g := r.Group("/resources")

	g.GET("", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	})

	g.GET("/category/:category", func(c *gin.Context) {
		list, err := svc.ByCategory(c.Request.Context(), c.Param("category"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	})

	g.GET("/subcategory/:subcategory", func(c *gin.Context) {
		list, err := svc.BySubcategory(c.Request.Context(), c.Param("subcategory"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	})

	nearby := func(c *gin.Context) {
		lon, errLon := strconv.ParseFloat(c.Param("lon"), 64)
		lat, errLat := strconv.ParseFloat(c.Param("lat"), 64)
		if errLon != nil || errLat != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "longitude and latitude must be numbers"})
			return
		}
		maxDistance := float64(service.DefaultNearbyMeters)
		if raw := c.Param("maxDistance"); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil || v <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "maxDistance must be a positive number of meters"})
				return
			}
			maxDistance = v
		}
		list, err := svc.Nearby(c.Request.Context(), lon, lat, maxDistance)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
	g.GET("/nearby/:lon/:lat", nearby)
	g.GET("/nearby/:lon/:lat/:maxDistance", nearby)

	g.GET("/:id", func(c *gin.Context) {
		res, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	})

	g.GET("/:id/similar", func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.Query("limit"))
		c.JSON(http.StatusOK, similar.FindSimilar(c.Request.Context(), c.Param("id"), limit))
	})

	g.POST("", func(c *gin.Context) {
		var in resource.Incoming
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		res, err := svc.Submit(c.Request.Context(), &in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"success":  true,
			"message":  "Resource submitted successfully and pending verification",
			"resource": gin.H{"id": res.ID, "name": res.Name},
		})
	})

	g.PATCH("/:id", func(c *gin.Context) {
		var p resource.Patch
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		res, err := svc.Update(c.Request.Context(), c.Param("id"), p)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	})

	g.DELETE("/:id", func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, resource.ErrInvalidResource), errors.Is(err, resource.ErrInvalidCoordinates):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case service.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	default:
		logger.Errorf("resource %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
