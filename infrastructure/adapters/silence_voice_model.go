package adapters

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"story-voice-service/application/ports/outbound"
	"story-voice-service/domain"
)

const (
	silenceSampleRate = 16000
	silenceSeconds    = 1
)

type silenceVoiceModel struct {
	logger outbound.LoggerPort
}

// NewSilenceVoiceModel returns a stand-in model that writes one second of
// silent 16kHz mono PCM. It keeps the whole HTTP surface usable on machines
// without the synthesis sidecar.
func NewSilenceVoiceModel(logger outbound.LoggerPort) outbound.VoiceModelPort {
	return &silenceVoiceModel{logger: logger}
}

func (s *silenceVoiceModel) Synthesize(_ context.Context, params outbound.SynthesizeParams) error {
	s.logger.InfoWithFields("Silence model invoked", map[string]interface{}{
		"text":     params.Text,
		"language": params.Language,
	})

	dataSize := silenceSampleRate * silenceSeconds * 2
	var buf bytes.Buffer
	if err := writeWavHeader(&buf, dataSize); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSynthesis, err)
	}
	buf.Write(make([]byte, dataSize))

	if err := os.WriteFile(params.OutputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSynthesis, err)
	}
	return nil
}

// writeWavHeader emits a minimal 44-byte RIFF header for 16kHz 16-bit mono.
func writeWavHeader(buf *bytes.Buffer, dataSize int) error {
	buf.WriteString("RIFF")
	if err := binary.Write(buf, binary.LittleEndian, uint32(36+dataSize)); err != nil {
		return err
	}
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	for _, v := range []interface{}{
		uint32(16),                    // sub-chunk size
		uint16(1),                     // PCM
		uint16(1),                     // mono
		uint32(silenceSampleRate),     // sample rate
		uint32(silenceSampleRate * 2), // byte rate
		uint16(2),                     // block align
		uint16(16),                    // bits per sample
	} {
		if err := binary.Write(buf, binary.LittleEndian, v); err != nil {
			return err
		}
	}

	buf.WriteString("data")
	return binary.Write(buf, binary.LittleEndian, uint32(dataSize))
}
