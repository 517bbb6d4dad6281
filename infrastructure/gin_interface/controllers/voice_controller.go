package controllers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"story-voice-service/application/ports/inbound"
	"story-voice-service/application/ports/outbound"
	"story-voice-service/domain"
	"story-voice-service/infrastructure/gin_interface/dto"
	"strings"

	"github.com/gin-gonic/gin"
)

// defaultCloneText is spoken when an upload carries no text of its own.
const defaultCloneText = "Hello! This is your cloned voice."

type VoiceController interface {
	UploadAudio(c *gin.Context)
	GenerateText(c *gin.Context)
	ServeOutput(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type voiceController struct {
	logger        outbound.LoggerPort
	voicePipeline inbound.VoicePipelinePort
	outputDir     string
	webDir        string
}

func NewVoiceController(logger outbound.LoggerPort, voicePipeline inbound.VoicePipelinePort,
	outputDir string, webDir string) VoiceController {
	return &voiceController{
		logger:        logger,
		voicePipeline: voicePipeline,
		outputDir:     outputDir,
		webDir:        webDir,
	}
}

func (v *voiceController) RegisterRoutes(g *gin.Engine) {
	g.GET("/", v.Index)
	g.POST("/upload_audio", v.UploadAudio)
	g.POST("/generate_text", v.GenerateText)
	g.GET("/outputs/:filename", v.ServeOutput)
}

func (v *voiceController) Index(c *gin.Context) {
	c.File(filepath.Join(v.webDir, "index.html"))
}

// UploadAudio accepts a recorded blob plus optional text and style fields,
// stores the recording as the latest reference voice, and answers with the
// URL of the cloned synthesis.
func (v *voiceController) UploadAudio(c *gin.Context) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.SynthesisResponse{Ok: false, Error: "Missing 'audio' file field"})
		return
	}

	text := c.PostForm("text")
	if text == "" {
		text = defaultCloneText
	}

	src, err := fileHeader.Open()
	if err != nil {
		v.logger.Error(err, "failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, dto.SynthesisResponse{Ok: false, Error: err.Error()})
		return
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			v.logger.Error(closeErr, "failed to close uploaded file")
		}
	}()

	outName, err := v.voicePipeline.CloneUpload(c.Request.Context(), inbound.CloneUploadParams{
		Filename: fileHeader.Filename,
		Audio:    src,
		Text:     text,
		Emotion:  c.PostForm("emotion"),
		Task:     c.PostForm("task"),
		Language: c.PostForm("language"),
	})
	if err != nil {
		v.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SynthesisResponse{Ok: true, AudioUrl: "/outputs/" + outName})
}

// GenerateText synthesizes JSON-supplied text with the stored reference voice.
func (v *voiceController) GenerateText(c *gin.Context) {
	var req dto.GenerateTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.SynthesisResponse{Ok: false, Error: "Field 'text' is required"})
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, dto.SynthesisResponse{Ok: false, Error: "Field 'text' is required"})
		return
	}

	outName, err := v.voicePipeline.SynthesizeFromReference(c.Request.Context(), inbound.SynthesizeParams{
		Text:     req.Text,
		Emotion:  req.Emotion,
		Task:     req.Task,
		Language: req.Language,
	})
	if err != nil {
		v.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SynthesisResponse{Ok: true, AudioUrl: "/outputs/" + outName})
}

// ServeOutput streams a previously generated WAV by bare filename. Anything
// that would resolve outside the output directory is treated as absent.
func (v *voiceController) ServeOutput(c *gin.Context) {
	filename := c.Param("filename")
	if filename != filepath.Base(filename) || strings.Contains(filename, "..") {
		c.JSON(http.StatusNotFound, dto.SynthesisResponse{Ok: false, Error: "Not found"})
		return
	}

	path := filepath.Join(v.outputDir, filename)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, dto.SynthesisResponse{Ok: false, Error: "Not found"})
		return
	}

	c.Header("Content-Type", "audio/wav")
	c.File(path)
}

func (v *voiceController) respondError(c *gin.Context, err error) {
	v.logger.Error(err, "request failed")

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, dto.SynthesisResponse{Ok: false, Error: "Field 'text' is required"})
	case errors.Is(err, domain.ErrNoReferenceRecorded):
		c.JSON(http.StatusBadRequest, dto.SynthesisResponse{Ok: false, Error: "Please record your voice first."})
	case errors.Is(err, domain.ErrMissingFile):
		c.JSON(http.StatusBadRequest, dto.SynthesisResponse{Ok: false, Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.SynthesisResponse{Ok: false, Error: "Not found"})
	default:
		c.JSON(http.StatusInternalServerError, dto.SynthesisResponse{Ok: false, Error: err.Error()})
	}
}
