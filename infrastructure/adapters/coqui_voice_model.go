package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"story-voice-service/application/ports/outbound"
	"story-voice-service/config"
	"story-voice-service/domain"

	"github.com/rs/zerolog/log"
)

type coquiSynthesisRequest struct {
	Text       string `json:"text"`
	SpeakerWav string `json:"speaker_wav,omitempty"`
	SpeakerId  string `json:"speaker_id,omitempty"`
	Language   string `json:"language"`
}

type coquiVoiceModel struct {
	ContentFetcher
	voiceConfig *config.VoiceConfig
}

// NewCoquiVoiceModel builds a client for the local synthesis sidecar that
// hosts the pretrained multilingual cloning model. The sidecar answers a JSON
// POST with raw WAV bytes.
func NewCoquiVoiceModel(contentFetcher ContentFetcher, voiceConfig *config.VoiceConfig) outbound.VoiceModelPort {
	return &coquiVoiceModel{
		ContentFetcher: contentFetcher,
		voiceConfig:    voiceConfig,
	}
}

func (c *coquiVoiceModel) Synthesize(ctx context.Context, params outbound.SynthesizeParams) error {
	req, err := c.getRequest(ctx, params)
	if err != nil {
		log.Error().Err(err).Str("text", params.Text).Msg("Failed to construct the synthesis request")
		return fmt.Errorf("%w: %v", domain.ErrSynthesis, err)
	}

	audioBytes, err := c.FetchContent(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSynthesis, err)
	}

	if err := os.WriteFile(params.OutputPath, audioBytes, 0o644); err != nil {
		log.Error().Err(err).Str("path", params.OutputPath).Msg("Failed to write synthesized audio")
		return fmt.Errorf("%w: %v", domain.ErrSynthesis, err)
	}

	log.Debug().Str("path", params.OutputPath).Int("bytes", len(audioBytes)).Msg("Synthesized audio written")
	return nil
}

func (c *coquiVoiceModel) getRequest(ctx context.Context, params outbound.SynthesizeParams) (*http.Request, error) {
	reqBody := coquiSynthesisRequest{
		Text:     params.Text,
		Language: params.Language,
	}
	// Cloning source and built-in speaker are mutually exclusive.
	if params.ReferenceWav != "" {
		reqBody.SpeakerWav = params.ReferenceWav
	} else {
		reqBody.SpeakerId = params.Speaker
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.voiceConfig.ModelUrl, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "audio/wav")
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
