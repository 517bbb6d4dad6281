package outbound

import "story-voice-service/domain"

// StoryStorePort persists a generated story and returns the path written.
// Implementations must never overwrite an existing story file.
type StoryStorePort interface {
	Save(story domain.StoryDocument, theme string) (string, error)
}
