package config

import "os"

type StoryConfig struct {
	PromptPath string
	OutputDir  string
}

func GetStoryConfig() (*StoryConfig, error) {
	promptPath := os.Getenv("STORY_PROMPT_PATH")
	if promptPath == "" {
		promptPath = "prompts/prompt.txt"
	}
	outputDir := os.Getenv("STORY_OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "output"
	}
	return &StoryConfig{
		PromptPath: promptPath,
		OutputDir:  outputDir,
	}, nil
}
