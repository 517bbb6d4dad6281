package inbound

import (
	"context"
	"io"
)

type CloneUploadParams struct {
	Filename string
	Audio    io.Reader
	Text     string
	Emotion  string
	Task     string
	Language string
}

type SynthesizeParams struct {
	Text     string
	Emotion  string
	Task     string
	Language string
}

// VoicePipelinePort drives the two synthesis flows: cloning straight from a
// fresh upload, and synthesizing against the stored reference voice. Both
// return the bare output filename (not a path).
type VoicePipelinePort interface {
	CloneUpload(ctx context.Context, params CloneUploadParams) (string, error)
	SynthesizeFromReference(ctx context.Context, params SynthesizeParams) (string, error)
}
