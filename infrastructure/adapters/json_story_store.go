package adapters

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"story-voice-service/application/ports/outbound"
	"story-voice-service/domain"
	"strings"

	"github.com/rs/zerolog/log"
)

type jsonStoryStore struct {
	outputDir    string
	unsafeRegexp *regexp.Regexp
}

func NewJsonStoryStore(outputDir string) outbound.StoryStorePort {
	return &jsonStoryStore{
		outputDir:    outputDir,
		unsafeRegexp: regexp.MustCompile(`[^\w\-.]`),
	}
}

// Save writes the story as indented JSON under the output directory. The
// filename derives from the theme; when it already exists an incrementing
// numeric suffix keeps every save on its own file.
func (s *jsonStoryStore) Save(story domain.StoryDocument, theme string) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		log.Error().Err(err).Str("dir", s.outputDir).Msg("Failed to create story output directory")
		return "", err
	}

	filename := s.uniqueFilename(s.sanitizeFilename(theme))
	path := filepath.Join(s.outputDir, filename)

	file, err := os.Create(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to create story file")
		return "", err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("Failed to close story file")
		}
	}()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "    ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(story); err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to encode story")
		return "", err
	}

	log.Debug().Str("path", path).Msg("Story saved")
	return path, nil
}

func (s *jsonStoryStore) sanitizeFilename(theme string) string {
	name := strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(theme, " ", "_"), "/", "_"))
	filename := fmt.Sprintf("%s_story.json", name)
	return s.unsafeRegexp.ReplaceAllString(filename, "")
}

func (s *jsonStoryStore) uniqueFilename(base string) string {
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	filename := base
	for counter := 1; ; counter++ {
		if _, err := os.Stat(filepath.Join(s.outputDir, filename)); os.IsNotExist(err) {
			return filename
		}
		filename = fmt.Sprintf("%s_%d%s", name, counter, ext)
	}
}
