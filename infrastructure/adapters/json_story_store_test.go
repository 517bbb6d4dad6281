package adapters

import (
	"encoding/json"
	"os"
	"path/filepath"
	"story-voice-service/domain"
	"strings"
	"testing"
)

func TestJsonStoryStore_RepeatedSavesNeverOverwrite(t *testing.T) {
	dir := t.TempDir()
	store := NewJsonStoryStore(dir)

	story := domain.StoryDocument{Title: "The Space Cats", Content: "Once upon a time.\n\nThe end."}

	var paths []string
	for i := 0; i < 3; i++ {
		path, err := store.Save(story, "Space Cats")
		if err != nil {
			t.Fatal("Save failed:", err)
		}
		paths = append(paths, path)
	}

	expected := []string{
		filepath.Join(dir, "space_cats_story.json"),
		filepath.Join(dir, "space_cats_story_1.json"),
		filepath.Join(dir, "space_cats_story_2.json"),
	}
	for i, path := range paths {
		if path != expected[i] {
			t.Errorf("save %d wrote %q, expected %q", i, path, expected[i])
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			t.Fatal("Failed to read saved story:", err)
		}
		var loaded domain.StoryDocument
		if err := json.Unmarshal(raw, &loaded); err != nil {
			t.Fatal("Saved story is not valid JSON:", err)
		}
		if loaded.Title != story.Title {
			t.Errorf("loaded title %q, expected %q", loaded.Title, story.Title)
		}
	}
}

func TestJsonStoryStore_SanitizesTheme(t *testing.T) {
	dir := t.TempDir()
	store := NewJsonStoryStore(dir)

	path, err := store.Save(domain.StoryDocument{Title: "x", Content: "y"}, "Wizards/And: Witches!")
	if err != nil {
		t.Fatal("Save failed:", err)
	}

	base := filepath.Base(path)
	if base != "wizards_and_witches_story.json" {
		t.Errorf("sanitized filename = %q", base)
	}
}

func TestJsonStoryStore_PreservesNonASCII(t *testing.T) {
	dir := t.TempDir()
	store := NewJsonStoryStore(dir)

	path, err := store.Save(domain.StoryDocument{Title: "Léo & the Dragão", Content: "héros"}, "dragons")
	if err != nil {
		t.Fatal("Save failed:", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal("Failed to read saved story:", err)
	}
	content := string(raw)
	if !strings.Contains(content, "Dragão") || !strings.Contains(content, "héros") {
		t.Errorf("non-ASCII characters were escaped: %s", content)
	}
}
