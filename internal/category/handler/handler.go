package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/loofsan/SF-Hacks2025/internal/category/repository"
)

func RegisterCategoryRoutes(r gin.IRouter, repo repository.Repository) {
	r.GET("/categories", func(c *gin.Context) {
		list, err := repo.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	})

	r.GET("/categories/:name", func(c *gin.Context) {
		cat, err := repo.Get(c.Request.Context(), c.Param("name"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, cat)
	})
}
