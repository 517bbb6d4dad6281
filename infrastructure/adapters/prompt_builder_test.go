package adapters

import (
	"errors"
	"os"
	"path/filepath"
	"story-voice-service/domain"
	"testing"
)

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prompt.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal("Failed to write template:", err)
	}
	return path
}

func TestPromptBuilder_Build(t *testing.T) {
	path := writeTemplate(t, "Write a grade {grade} story, {difficulty} difficulty, theme: {theme}.")

	builder := NewPromptBuilder(path)

	prompt, err := builder.Build(domain.StoryRequest{
		Grade:      "3",
		Difficulty: "easy",
		Theme:      "dragons",
	})
	if err != nil {
		t.Fatal("Build failed:", err)
	}

	expected := "Write a grade 3 story, easy difficulty, theme: dragons."
	if prompt != expected {
		t.Errorf("Build() = %q, expected %q", prompt, expected)
	}
}

func TestPromptBuilder_MissingTemplate(t *testing.T) {
	builder := NewPromptBuilder(filepath.Join(t.TempDir(), "absent.txt"))

	_, err := builder.Build(domain.StoryRequest{Grade: "3", Difficulty: "easy", Theme: "dragons"})
	if !errors.Is(err, domain.ErrMissingTemplate) {
		t.Errorf("expected ErrMissingTemplate, got %v", err)
	}
}

func TestPromptBuilder_UnknownPlaceholder(t *testing.T) {
	path := writeTemplate(t, "A story about {theme} for {audience}.")

	builder := NewPromptBuilder(path)

	_, err := builder.Build(domain.StoryRequest{Grade: "3", Difficulty: "easy", Theme: "dragons"})
	if !errors.Is(err, domain.ErrTemplateSubstitution) {
		t.Errorf("expected ErrTemplateSubstitution, got %v", err)
	}
}
