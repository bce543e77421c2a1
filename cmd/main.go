package main

import (
	"fmt"
	"time"

	"github.com/Karthikeya51/DreamSync-Backend/application/ports/outbound"
	"github.com/Karthikeya51/DreamSync-Backend/application/services"
	"github.com/Karthikeya51/DreamSync-Backend/config"
	"github.com/Karthikeya51/DreamSync-Backend/infrastructure/adapters"
	"github.com/Karthikeya51/DreamSync-Backend/infrastructure/gin_interface/controllers"
	"github.com/Karthikeya51/DreamSync-Backend/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
	ginprometheus "github.com/zsais/go-gin-prometheus"
)

func main() {
	_ = godotenv.Load()

	geminiConfig, err := config.GetGeminiConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get gemini config")
	}

	deepgramConfig, err := config.GetDeepgramConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get deepgram config")
	}

	serverConfig, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get server config")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(32, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	contentFetcher := adapters.NewContentFetcher(time.Duration(serverConfig.HTTPClientTimeoutSec)*time.Second, zeroLogger)

	geminiGenerator := adapters.NewGeminiGenerator(contentFetcher, geminiConfig, zeroLogger)
	deepgramSynthesizer := adapters.NewDeepgramSynthesizer(contentFetcher, deepgramConfig, zeroLogger)

	var audioSink outbound.AudioSinkPort
	switch serverConfig.NarrationStorage {
	case config.NarrationStorageTempFile:
		audioSink = adapters.NewTempFileAudioSink(workerPool, zeroLogger)
	case config.NarrationStorageLegacyFile:
		audioSink = adapters.NewLegacyFileAudioSink(serverConfig.NarrationFilePath, zeroLogger)
	default:
		audioSink = adapters.NewMemoryAudioSink()
	}

	storyTeller := services.NewStoryTeller(zeroLogger, geminiGenerator)
	narrator := services.NewNarrator(zeroLogger, deepgramSynthesizer, audioSink)

	storyController := controllers.NewStoryController(zeroLogger, storyTeller)
	narrationController := controllers.NewNarrationController(zeroLogger, narrator)

	router := gin.Default()

	err = router.SetTrustedProxies(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.MaxAge = 12 * time.Hour
	if len(serverConfig.CORSAllowedOrigins) == 1 && serverConfig.CORSAllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = serverConfig.CORSAllowedOrigins
		corsConfig.AllowCredentials = true
	}
	router.Use(cors.New(corsConfig))

	router.Use(middleware.RequestLogger(zeroLogger))

	prometheus := ginprometheus.NewPrometheus("gin")
	prometheus.Use(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	storyController.RegisterRoutes(router)
	narrationController.RegisterRoutes(router)

	err = router.Run(":" + serverConfig.Port)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
