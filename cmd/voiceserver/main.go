package main

import (
	"fmt"
	"os"
	"story-voice-service/application/ports/outbound"
	"story-voice-service/application/services"
	"story-voice-service/config"
	"story-voice-service/infrastructure/adapters"
	"story-voice-service/infrastructure/gin_interface/controllers"
	"story-voice-service/middleware"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
)

func main() {
	voiceConfig, err := config.GetVoiceConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get voice config")
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

	var voiceModel outbound.VoiceModelPort
	if os.Getenv("VOICE_MODEL") == "fake" {
		zeroLogger.Warn("VOICE_MODEL=fake: synthesizing silence instead of speech")
		voiceModel = adapters.NewSilenceVoiceModel(zeroLogger)
	} else {
		contentFetcher := adapters.NewContentFetcher(zeroLogger)
		voiceModel = adapters.NewCoquiVoiceModel(contentFetcher, voiceConfig)
	}

	uploadStore := adapters.NewUploadStore(voiceConfig.UploadDir)
	normalizer := adapters.NewAudioNormalizer(zeroLogger)
	referenceStore := adapters.NewFileReferenceStore(voiceConfig.UploadDir)

	voicePipeline := services.NewVoicePipeline(zeroLogger, workerPool, uploadStore, normalizer,
		referenceStore, voiceModel, voiceConfig.OutputDir, time.Duration(voiceConfig.TimeoutSeconds)*time.Second)

	voiceController := controllers.NewVoiceController(zeroLogger, voicePipeline, voiceConfig.OutputDir, voiceConfig.WebDir)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	voiceController.RegisterRoutes(router)

	if err := router.Run(":" + serverConfig.Port); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
