package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"story-voice-service/application/ports/inbound"
	"story-voice-service/application/ports/outbound"
	"story-voice-service/domain"
	"strings"
	"time"

	"github.com/google/uuid"
)

type voicePipeline struct {
	logger         outbound.LoggerPort
	workerPool     outbound.TaskDispatcher
	uploadStore    outbound.UploadStorePort
	converter      outbound.AudioConverterPort
	referenceStore outbound.ReferenceStorePort
	voiceModel     outbound.VoiceModelPort
	outputDir      string
	timeout        time.Duration
}

func NewVoicePipeline(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	uploadStore outbound.UploadStorePort, converter outbound.AudioConverterPort,
	referenceStore outbound.ReferenceStorePort, voiceModel outbound.VoiceModelPort,
	outputDir string, timeout time.Duration) inbound.VoicePipelinePort {
	return &voicePipeline{
		logger:         logger,
		workerPool:     workerPool,
		uploadStore:    uploadStore,
		converter:      converter,
		referenceStore: referenceStore,
		voiceModel:     voiceModel,
		outputDir:      outputDir,
		timeout:        timeout,
	}
}

// CloneUpload saves the recording, normalizes it to WAV, stores it as the
// latest reference voice, and synthesizes the given text with it.
func (v *voicePipeline) CloneUpload(ctx context.Context, params inbound.CloneUploadParams) (string, error) {
	savedPath, err := v.uploadStore.Save(params.Filename, params.Audio)
	if err != nil {
		v.logger.Error(err, "Failed to save upload")
		return "", err
	}

	wavPath, err := v.converter.EnsureWav(savedPath)
	if err != nil {
		return "", err
	}

	if err := v.referenceStore.Set(wavPath); err != nil {
		v.logger.Error(err, "Failed to store reference voice")
		return "", err
	}

	return v.synthesize(ctx, domain.SynthesisRequest{
		Text:          params.Text,
		Emotion:       params.Emotion,
		Task:          params.Task,
		Language:      params.Language,
		ReferencePath: wavPath,
	}, "cloned")
}

// SynthesizeFromReference speaks the text with the stored reference voice.
func (v *voicePipeline) SynthesizeFromReference(ctx context.Context, params inbound.SynthesizeParams) (string, error) {
	referencePath, err := v.referenceStore.Get()
	if err != nil {
		return "", err
	}

	return v.synthesize(ctx, domain.SynthesisRequest{
		Text:          params.Text,
		Emotion:       params.Emotion,
		Task:          params.Task,
		Language:      params.Language,
		ReferencePath: referencePath,
	}, "tts")
}

func (v *voicePipeline) synthesize(ctx context.Context, req domain.SynthesisRequest, prefix string) (string, error) {
	if strings.TrimSpace(req.Text) == "" {
		return "", fmt.Errorf("%w: field 'text' is required", domain.ErrInvalidInput)
	}
	if req.ReferencePath != "" {
		if _, err := os.Stat(req.ReferencePath); err != nil {
			return "", fmt.Errorf("%w: %s", domain.ErrReferenceNotFound, req.ReferencePath)
		}
	}

	if err := os.MkdirAll(v.outputDir, 0o755); err != nil {
		return "", err
	}

	outName := fmt.Sprintf("%s_%s.wav", prefix, strings.ReplaceAll(uuid.NewString(), "-", ""))
	outPath := filepath.Join(v.outputDir, outName)

	modelParams := outbound.SynthesizeParams{
		Text:         req.StyledText(),
		ReferenceWav: req.ReferencePath,
		Language:     domain.NormalizeLanguage(req.Language),
		OutputPath:   outPath,
	}
	if modelParams.ReferenceWav == "" {
		modelParams.Speaker = domain.DefaultSpeaker
	}

	if err := v.invokeModel(ctx, modelParams); err != nil {
		return "", err
	}

	v.logger.InfoWithFields("Synthesis complete", map[string]interface{}{
		"output":   outName,
		"language": modelParams.Language,
	})
	return outName, nil
}

// invokeModel runs the blocking model call on the worker pool so the wait can
// be bounded by the configured timeout.
func (v *voicePipeline) invokeModel(ctx context.Context, params outbound.SynthesizeParams) error {
	synthCtx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	resultCh := make(chan error, 1)
	err := v.workerPool.Submit(func() {
		resultCh <- v.voiceModel.Synthesize(synthCtx, params)
	})
	if err != nil {
		v.logger.Error(err, "Failed to submit synthesis task to worker pool")
		return fmt.Errorf("%w: %v", domain.ErrSynthesis, err)
	}

	select {
	case err := <-resultCh:
		return err
	case <-synthCtx.Done():
		return fmt.Errorf("%w: %v", domain.ErrSynthesis, synthCtx.Err())
	}
}
