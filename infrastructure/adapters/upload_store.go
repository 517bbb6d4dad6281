package adapters

import (
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"story-voice-service/application/ports/outbound"

	"github.com/rs/zerolog/log"
)

// defaultUploadExt covers browser MediaRecorder blobs, which usually arrive
// without an extension.
const defaultUploadExt = ".webm"

type uploadStore struct {
	uploadDir    string
	unsafeRegexp *regexp.Regexp
}

func NewUploadStore(uploadDir string) outbound.UploadStorePort {
	return &uploadStore{
		uploadDir:    uploadDir,
		unsafeRegexp: regexp.MustCompile(`[^\w\-.]`),
	}
}

// Save persists the upload under a sanitized name with a pid + short-hash
// suffix so concurrent uploads of identically named files never collide.
func (u *uploadStore) Save(filename string, src io.Reader) (string, error) {
	if err := os.MkdirAll(u.uploadDir, 0o755); err != nil {
		log.Error().Err(err).Str("dir", u.uploadDir).Msg("Failed to create upload directory")
		return "", err
	}

	base := u.sanitizeFilename(filename)
	ext := filepath.Ext(base)
	name := base[:len(base)-len(ext)]
	if ext == "" {
		ext = defaultUploadExt
	}

	unique := fmt.Sprintf("%s_%d_%s%s", name, os.Getpid(), shortHash(base), ext)
	path := filepath.Join(u.uploadDir, unique)

	dst, err := os.Create(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to create upload file")
		return "", err
	}
	defer func() {
		if closeErr := dst.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("Failed to close upload file")
		}
	}()

	if _, err := io.Copy(dst, src); err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to write upload file")
		return "", err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return absPath, nil
}

func (u *uploadStore) sanitizeFilename(filename string) string {
	base := filepath.Base(filename)
	base = u.unsafeRegexp.ReplaceAllString(base, "")
	if base == "" || base == "." {
		base = "recording"
	}
	return base
}

func shortHash(s string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return fmt.Sprintf("%06x", h.Sum32())[:6]
}
