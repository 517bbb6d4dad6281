package adapters

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"story-voice-service/application/ports/outbound"
	"story-voice-service/domain"
	"sync"

	"github.com/rs/zerolog/log"
)

// ReferenceFileName is the single well-known slot for the latest recorded
// voice inside the upload directory.
const ReferenceFileName = "latest_reference.wav"

type fileReferenceStore struct {
	mu            sync.Mutex
	referencePath string
}

// NewFileReferenceStore builds a reference store backed by a single file
// under uploadDir. Concurrent upload and synthesis requests still race on
// which reference a synthesis observes; the mutex only makes each individual
// set or get atomic.
func NewFileReferenceStore(uploadDir string) outbound.ReferenceStorePort {
	return &fileReferenceStore{
		referencePath: filepath.Join(uploadDir, ReferenceFileName),
	}
}

// Set copies the given WAV over the reference slot via a temp file and
// rename, so a failed copy leaves the prior reference intact.
func (f *fileReferenceStore) Set(wavPath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.referencePath), 0o755); err != nil {
		return err
	}

	src, err := os.Open(wavPath)
	if err != nil {
		log.Error().Err(err).Str("path", wavPath).Msg("Failed to open reference source")
		return err
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("Failed to close reference source")
		}
	}()

	tmpPath := f.referencePath + ".tmp"
	tmp, err := os.Create(tmpPath)
	if err != nil {
		return err
	}

	if _, err := io.Copy(tmp, src); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	return os.Rename(tmpPath, f.referencePath)
}

// Get returns the slot path, or domain.ErrNoReferenceRecorded while no voice
// has been stored yet.
func (f *fileReferenceStore) Get() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := os.Stat(f.referencePath); err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrNoReferenceRecorded, f.referencePath)
	}
	return f.referencePath, nil
}
