package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"story-voice-service/application/services"
	"story-voice-service/config"
	"story-voice-service/domain"
	"story-voice-service/infrastructure/adapters"
	"strings"

	"github.com/rs/zerolog/log"
)

func main() {
	geminiConfig, err := config.GetGeminiConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get gemini config")
	}

	storyConfig, err := config.GetStoryConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get story config")
	}

	zeroLogger := adapters.NewZerologWrapper()

	promptBuilder := adapters.NewPromptBuilder(storyConfig.PromptPath)
	storyModel := adapters.NewGeminiStoryModel(geminiConfig, zeroLogger)
	storyStore := adapters.NewJsonStoryStore(storyConfig.OutputDir)

	pipeline := services.NewStoryPipeline(zeroLogger, promptBuilder, storyModel, storyStore)

	fmt.Println("--- AI Story Generator ---")
	reader := bufio.NewReader(os.Stdin)

	req := domain.StoryRequest{
		Grade:      readLine(reader, "Enter grade level: "),
		Difficulty: readLine(reader, "Enter difficulty: "),
		Theme:      readLine(reader, "Enter theme: "),
	}

	fmt.Println("\nGenerating story...")

	result, err := pipeline.Run(context.Background(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidResponse) {
			fmt.Println("Error: Invalid JSON response from model.")
		} else {
			fmt.Println("Error:", err)
		}
		return
	}

	fmt.Printf("Story saved to: %s\n", result.Path)
	fmt.Println("\n--- Your Story ---")
	fmt.Printf("Title: %s\n", result.Story.Title)
	fmt.Println("\nContent:\n" + strings.ReplaceAll(result.Story.Content, `\n\n`, "\n\n"))
}

func readLine(reader *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
