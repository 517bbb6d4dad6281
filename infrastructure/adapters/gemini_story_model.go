package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"story-voice-service/application/ports/outbound"
	"story-voice-service/config"
	"story-voice-service/domain"
	"strings"

	"github.com/donovanhide/eventsource"
)

// GeminiModel is fixed; the story contract pins both the model identifier and
// the sampling temperature.
const (
	GeminiModel       = "gemini-1.5-flash"
	GeminiTemperature = 0.8
)

type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature"`
	ResponseMimeType string  `json:"responseMimeType"`
}

type geminiChunkBody struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type geminiStoryModel struct {
	logger       outbound.LoggerPort
	geminiConfig *config.GeminiConfig
}

func NewGeminiStoryModel(geminiConfig *config.GeminiConfig, logger outbound.LoggerPort) outbound.StoryModelPort {
	return &geminiStoryModel{
		logger:       logger,
		geminiConfig: geminiConfig,
	}
}

// GenerateStory streams the model response over SSE, accumulates the text
// parts until the stream closes, and parses the whole payload as a story
// document. One attempt per call; failures are terminal.
func (g *geminiStoryModel) GenerateStory(ctx context.Context, prompt string) (domain.StoryDocument, error) {
	req, err := g.createRequest(ctx, prompt)
	if err != nil {
		g.logger.Error(err, "Failed to create HTTP request for story stream")
		return domain.StoryDocument{}, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	stream, err := eventsource.SubscribeWithRequest("", req)
	if err != nil {
		g.logger.Error(err, "Failed to subscribe to story stream")
		return domain.StoryDocument{}, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer stream.Close()

	var builder strings.Builder
	for {
		select {
		case <-ctx.Done():
			return domain.StoryDocument{}, fmt.Errorf("%w: %v", domain.ErrUpstream, ctx.Err())
		case ev := <-stream.Events:
			payload, err := g.extractPayload(ev)
			if err != nil {
				return domain.StoryDocument{}, err
			}
			builder.WriteString(payload)
		case err := <-stream.Errors:
			if err == io.EOF {
				g.logger.Info("Story stream closed")
				return g.parseStory(builder.String())
			}
			g.logger.Error(err, "Error occurred during story streaming")
			return domain.StoryDocument{}, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
		}
	}
}

func (g *geminiStoryModel) parseStory(raw string) (domain.StoryDocument, error) {
	var story domain.StoryDocument
	if err := json.Unmarshal([]byte(raw), &story); err != nil {
		g.logger.Error(err, "Model returned text that is not valid JSON")
		return domain.StoryDocument{}, fmt.Errorf("%w: %v", domain.ErrInvalidResponse, err)
	}
	return story, nil
}

func (g *geminiStoryModel) extractPayload(event eventsource.Event) (string, error) {
	var chunkBody geminiChunkBody
	if err := json.Unmarshal([]byte(event.Data()), &chunkBody); err != nil {
		g.logger.Error(err, "Failed to unmarshal stream chunk")
		return "", fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	var builder strings.Builder
	for _, candidate := range chunkBody.Candidates {
		for _, part := range candidate.Content.Parts {
			builder.WriteString(part.Text)
		}
	}
	return builder.String(), nil
}

func (g *geminiStoryModel) createRequest(ctx context.Context, prompt string) (*http.Request, error) {
	promptReq := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			Temperature:      GeminiTemperature,
			ResponseMimeType: "application/json",
		},
	}

	payloadBytes, err := json.Marshal(promptReq)
	if err != nil {
		g.logger.Error(err, "Failed to marshal the request body")
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:streamGenerateContent?alt=sse", g.geminiConfig.ApiUrl, GeminiModel)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		g.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}

	req.Header.Set("x-goog-api-key", g.geminiConfig.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
