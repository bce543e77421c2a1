package controllers

import (
	"github.com/Karthikeya51/DreamSync-Backend/domain"
	"github.com/gin-gonic/gin"
)

func abortWithRequestError(c *gin.Context, err error) {
	reqErr := domain.AsRequestError(err)
	c.AbortWithStatusJSON(reqErr.Status, gin.H{"error": reqErr.Message})
}
