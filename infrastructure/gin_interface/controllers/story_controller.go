package controllers

import (
	"net/http"

	"github.com/Karthikeya51/DreamSync-Backend/application/ports/inbound"
	"github.com/Karthikeya51/DreamSync-Backend/application/ports/outbound"
	"github.com/Karthikeya51/DreamSync-Backend/infrastructure/gin_interface/dto"
	"github.com/gin-gonic/gin"
)

type StoryController interface {
	GenerateStory(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type storyController struct {
	logger      outbound.LoggerPort
	storyTeller inbound.StoryTellerPort
}

func NewStoryController(logger outbound.LoggerPort, storyTeller inbound.StoryTellerPort) StoryController {
	return &storyController{
		logger:      logger,
		storyTeller: storyTeller,
	}
}

func (s *storyController) GenerateStory(c *gin.Context) {
	var generateStoryRequest dto.GenerateStoryRequest
	if err := c.ShouldBindJSON(&generateStoryRequest); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
		return
	}

	story, err := s.storyTeller.Generate(c.Request.Context(), generateStoryRequest.Prompt)
	if err != nil {
		abortWithRequestError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GenerateStoryResponse{Story: story.Text})
}

func (s *storyController) RegisterRoutes(g *gin.Engine) {
	g.POST("/generate", s.GenerateStory)
}
