package inbound

import (
	"context"
	"story-voice-service/domain"
)

type StoryResult struct {
	Story domain.StoryDocument
	Path  string
}

type StoryPipelinePort interface {
	Run(ctx context.Context, req domain.StoryRequest) (StoryResult, error)
}
