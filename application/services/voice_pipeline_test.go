package services

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"story-voice-service/application/ports/inbound"
	"story-voice-service/application/ports/outbound"
	"story-voice-service/domain"
	"strings"
	"testing"
	"time"
)

type fakeUploadStore struct {
	dir string
}

func (f *fakeUploadStore) Save(filename string, src io.Reader) (string, error) {
	path := filepath.Join(f.dir, filename)
	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}
	return path, os.WriteFile(path, data, 0o644)
}

type passthroughConverter struct{}

func (passthroughConverter) EnsureWav(inputPath string) (string, error) {
	return inputPath, nil
}

type memReferenceStore struct {
	path string
}

func (m *memReferenceStore) Set(wavPath string) error {
	m.path = wavPath
	return nil
}

func (m *memReferenceStore) Get() (string, error) {
	if m.path == "" {
		return "", domain.ErrNoReferenceRecorded
	}
	return m.path, nil
}

type capturingVoiceModel struct {
	gotParams outbound.SynthesizeParams
	err       error
}

func (c *capturingVoiceModel) Synthesize(_ context.Context, params outbound.SynthesizeParams) error {
	c.gotParams = params
	if c.err != nil {
		return c.err
	}
	return os.WriteFile(params.OutputPath, []byte("RIFF-ish"), 0o644)
}

func newTestVoicePipeline(t *testing.T, model outbound.VoiceModelPort, refs outbound.ReferenceStorePort) (inbound.VoicePipelinePort, string) {
	t.Helper()
	dir := t.TempDir()
	pipeline := NewVoicePipeline(newTestLogger(), inlineDispatcher{}, &fakeUploadStore{dir: dir},
		passthroughConverter{}, refs, model, filepath.Join(dir, "outputs"), 5*time.Second)
	return pipeline, dir
}

func TestVoicePipeline_CloneUpload(t *testing.T) {
	model := &capturingVoiceModel{}
	refs := &memReferenceStore{}
	pipeline, _ := newTestVoicePipeline(t, model, refs)

	outName, err := pipeline.CloneUpload(context.Background(), inbound.CloneUploadParams{
		Filename: "recording.wav",
		Audio:    strings.NewReader("pcm"),
		Text:     "Hello there",
		Emotion:  "happy",
		Language: "fr_FR",
	})
	if err != nil {
		t.Fatal("CloneUpload failed:", err)
	}

	if !strings.HasPrefix(outName, "cloned_") || !strings.HasSuffix(outName, ".wav") {
		t.Errorf("output name %q, expected cloned_<hex>.wav", outName)
	}
	if model.gotParams.Text != "[happy] Hello there" {
		t.Errorf("model received text %q", model.gotParams.Text)
	}
	if model.gotParams.Language != "fr-fr" {
		t.Errorf("model received language %q", model.gotParams.Language)
	}
	if model.gotParams.ReferenceWav == "" {
		t.Error("model must clone from the fresh upload")
	}
	if model.gotParams.Speaker != "" {
		t.Error("built-in speaker must not be set when cloning")
	}
	if refs.path != model.gotParams.ReferenceWav {
		t.Errorf("reference slot %q, expected the synthesis source %q", refs.path, model.gotParams.ReferenceWav)
	}
}

func TestVoicePipeline_TwoUploadsGetDistinctOutputs(t *testing.T) {
	model := &capturingVoiceModel{}
	pipeline, _ := newTestVoicePipeline(t, model, &memReferenceStore{})

	names := map[string]bool{}
	for i := 0; i < 2; i++ {
		outName, err := pipeline.CloneUpload(context.Background(), inbound.CloneUploadParams{
			Filename: "recording.wav",
			Audio:    strings.NewReader("pcm"),
			Text:     "Hi",
		})
		if err != nil {
			t.Fatal("CloneUpload failed:", err)
		}
		names[outName] = true
	}
	if len(names) != 2 {
		t.Errorf("expected distinct output names, got %v", names)
	}
}

func TestVoicePipeline_SynthesizeWithoutReference(t *testing.T) {
	pipeline, _ := newTestVoicePipeline(t, &capturingVoiceModel{}, &memReferenceStore{})

	_, err := pipeline.SynthesizeFromReference(context.Background(), inbound.SynthesizeParams{Text: "Hi"})
	if !errors.Is(err, domain.ErrNoReferenceRecorded) {
		t.Errorf("expected ErrNoReferenceRecorded, got %v", err)
	}
}

func TestVoicePipeline_SynthesizeFromReference(t *testing.T) {
	model := &capturingVoiceModel{}
	refs := &memReferenceStore{}
	pipeline, dir := newTestVoicePipeline(t, model, refs)

	refPath := filepath.Join(dir, "latest_reference.wav")
	if err := os.WriteFile(refPath, []byte("pcm"), 0o644); err != nil {
		t.Fatal(err)
	}
	refs.path = refPath

	outName, err := pipeline.SynthesizeFromReference(context.Background(), inbound.SynthesizeParams{
		Text: "Read this back",
		Task: "assistant",
	})
	if err != nil {
		t.Fatal("SynthesizeFromReference failed:", err)
	}

	if !strings.HasPrefix(outName, "tts_") {
		t.Errorf("output name %q, expected tts_<hex>.wav", outName)
	}
	if model.gotParams.Text != "[assistant] Read this back" {
		t.Errorf("model received text %q", model.gotParams.Text)
	}
	if model.gotParams.ReferenceWav != refPath {
		t.Errorf("model received reference %q", model.gotParams.ReferenceWav)
	}
}

func TestVoicePipeline_EmptyTextRejected(t *testing.T) {
	refs := &memReferenceStore{}
	pipeline, dir := newTestVoicePipeline(t, &capturingVoiceModel{}, refs)

	refPath := filepath.Join(dir, "latest_reference.wav")
	if err := os.WriteFile(refPath, []byte("pcm"), 0o644); err != nil {
		t.Fatal(err)
	}
	refs.path = refPath

	_, err := pipeline.SynthesizeFromReference(context.Background(), inbound.SynthesizeParams{Text: "   "})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestVoicePipeline_StaleReferencePath(t *testing.T) {
	refs := &memReferenceStore{path: "/nonexistent/latest_reference.wav"}
	pipeline, _ := newTestVoicePipeline(t, &capturingVoiceModel{}, refs)

	_, err := pipeline.SynthesizeFromReference(context.Background(), inbound.SynthesizeParams{Text: "Hi"})
	if !errors.Is(err, domain.ErrReferenceNotFound) {
		t.Errorf("expected ErrReferenceNotFound, got %v", err)
	}
}

func TestVoicePipeline_ModelFailurePropagates(t *testing.T) {
	model := &capturingVoiceModel{err: domain.ErrSynthesis}
	pipeline, _ := newTestVoicePipeline(t, model, &memReferenceStore{})

	_, err := pipeline.CloneUpload(context.Background(), inbound.CloneUploadParams{
		Filename: "recording.wav",
		Audio:    strings.NewReader("pcm"),
		Text:     "Hi",
	})
	if !errors.Is(err, domain.ErrSynthesis) {
		t.Errorf("expected ErrSynthesis, got %v", err)
	}
}
