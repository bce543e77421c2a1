package controllers

import (
	"errors"
	"net/http"
	"os"

	"github.com/Karthikeya51/DreamSync-Backend/application/ports/inbound"
	"github.com/Karthikeya51/DreamSync-Backend/application/ports/outbound"
	"github.com/Karthikeya51/DreamSync-Backend/domain"
	"github.com/Karthikeya51/DreamSync-Backend/infrastructure/gin_interface/dto"
	"github.com/gin-gonic/gin"
)

const (
	narrationContentType = "audio/wav"
	narrationFilename    = "narration.wav"
)

type NarrationController interface {
	NarrateStory(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type narrationController struct {
	logger   outbound.LoggerPort
	narrator inbound.NarratorPort
}

func NewNarrationController(logger outbound.LoggerPort, narrator inbound.NarratorPort) NarrationController {
	return &narrationController{
		logger:   logger,
		narrator: narrator,
	}
}

func (n *narrationController) NarrateStory(c *gin.Context) {
	var narrateRequest dto.NarrateRequest
	if err := c.ShouldBindJSON(&narrateRequest); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Text is required for narration"})
		return
	}

	artifact, err := n.narrator.Narrate(c.Request.Context(), narrateRequest.Text)
	if err != nil {
		// Upstream failures from the speech API ride a 200 carrying an
		// error descriptor, so existing frontends can always expect JSON
		// unless the body is audio.
		var reqErr *domain.RequestError
		if errors.As(err, &reqErr) && reqErr.Kind == domain.UpstreamError {
			c.JSON(http.StatusOK, gin.H{"error": reqErr.Label, "details": reqErr.UpstreamBody})
			return
		}
		abortWithRequestError(c, err)
		return
	}
	defer artifact.Release()

	audio := artifact.Data
	if !artifact.Buffered() {
		audio, err = os.ReadFile(artifact.Path)
		if err != nil {
			n.logger.Error(err, "Failed to read narration audio back from storage")
			abortWithRequestError(c, err)
			return
		}
	}

	c.Header("Content-Disposition", `attachment; filename="`+narrationFilename+`"`)
	c.Data(http.StatusOK, narrationContentType, audio)
}

func (n *narrationController) RegisterRoutes(g *gin.Engine) {
	g.POST("/narrate", n.NarrateStory)
}
