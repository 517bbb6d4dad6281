package domain

import "errors"

// Sentinel errors shared across both pipelines. Adapters wrap these with
// fmt.Errorf("...: %w", ...) so callers can classify failures with errors.Is.
var (
	ErrMissingTemplate      = errors.New("prompt template not found")
	ErrTemplateSubstitution = errors.New("prompt template substitution failed")
	ErrInvalidResponse      = errors.New("invalid JSON response from model")
	ErrUpstream             = errors.New("upstream model request failed")

	ErrMissingFile         = errors.New("missing file field")
	ErrInvalidInput        = errors.New("invalid input")
	ErrNoReferenceRecorded = errors.New("no reference voice recorded")
	ErrReferenceNotFound   = errors.New("reference voice not found")

	ErrUnsupportedAudioFormat = errors.New("unsupported audio format")
	ErrMissingCodecTooling    = errors.New("audio conversion requires ffmpeg on PATH")

	ErrSynthesis = errors.New("voice synthesis failed")
	ErrNotFound  = errors.New("not found")
)
