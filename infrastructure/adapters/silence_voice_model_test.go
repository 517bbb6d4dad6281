package adapters

import (
	"context"
	"os"
	"path/filepath"
	"story-voice-service/application/ports/outbound"
	"testing"
)

func TestSilenceVoiceModel_WritesPlayableWav(t *testing.T) {
	model := NewSilenceVoiceModel(NewZerologWrapper())

	outPath := filepath.Join(t.TempDir(), "out.wav")
	err := model.Synthesize(context.Background(), outbound.SynthesizeParams{
		Text:       "[happy] hello",
		Speaker:    "p273",
		Language:   "en",
		OutputPath: outPath,
	})
	if err != nil {
		t.Fatal("Synthesize failed:", err)
	}

	raw, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal("Failed to read output:", err)
	}
	if len(raw) <= 44 {
		t.Fatalf("output is only %d bytes", len(raw))
	}
	if string(raw[:4]) != "RIFF" || string(raw[8:12]) != "WAVE" {
		t.Errorf("output is not a RIFF/WAVE file")
	}
}
