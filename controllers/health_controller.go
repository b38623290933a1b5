package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports liveness for monitors and load balancers.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "API is running successfully",
	})
}
