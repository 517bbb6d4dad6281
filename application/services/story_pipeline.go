package services

import (
	"context"
	"story-voice-service/application/ports/inbound"
	"story-voice-service/application/ports/outbound"
	"story-voice-service/domain"
)

type storyPipeline struct {
	logger        outbound.LoggerPort
	promptBuilder outbound.PromptBuilderPort
	storyModel    outbound.StoryModelPort
	storyStore    outbound.StoryStorePort
}

func NewStoryPipeline(logger outbound.LoggerPort, promptBuilder outbound.PromptBuilderPort,
	storyModel outbound.StoryModelPort, storyStore outbound.StoryStorePort) inbound.StoryPipelinePort {
	return &storyPipeline{
		logger:        logger,
		promptBuilder: promptBuilder,
		storyModel:    storyModel,
		storyStore:    storyStore,
	}
}

// Run builds the prompt, asks the model for a story, and persists it. One
// attempt end to end; any failure is terminal for this invocation.
func (s *storyPipeline) Run(ctx context.Context, req domain.StoryRequest) (inbound.StoryResult, error) {
	prompt, err := s.promptBuilder.Build(req)
	if err != nil {
		s.logger.Error(err, "Failed to build story prompt")
		return inbound.StoryResult{}, err
	}

	s.logger.InfoWithFields("Generating story", map[string]interface{}{
		"grade":      req.Grade,
		"difficulty": req.Difficulty,
		"theme":      req.Theme,
	})

	story, err := s.storyModel.GenerateStory(ctx, prompt)
	if err != nil {
		return inbound.StoryResult{}, err
	}

	path, err := s.storyStore.Save(story, req.Theme)
	if err != nil {
		s.logger.Error(err, "Failed to save story")
		return inbound.StoryResult{}, err
	}

	return inbound.StoryResult{Story: story, Path: path}, nil
}
