package adapters

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"story-voice-service/application/ports/outbound"
	"story-voice-service/domain"
	"strings"

	"github.com/go-audio/audio"
	wavenc "github.com/go-audio/wav"
	mp3 "github.com/hajimehoshi/go-mp3"
)

type audioNormalizer struct {
	logger outbound.LoggerPort
}

func NewAudioNormalizer(logger outbound.LoggerPort) outbound.AudioConverterPort {
	return &audioNormalizer{logger: logger}
}

// EnsureWav returns a WAV path for the given audio file. A ".wav" extension
// passes through untouched; anything else goes through the native decoder
// first and falls back to transcoding with ffmpeg when that fails.
func (a *audioNormalizer) EnsureWav(inputPath string) (string, error) {
	ext := strings.ToLower(filepath.Ext(inputPath))
	if ext == ".wav" {
		return inputPath, nil
	}

	wavPath := strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".wav"

	if err := a.nativeConvert(inputPath, wavPath, ext); err != nil {
		a.logger.WarnWithFields("Native audio decode failed, falling back to ffmpeg", map[string]interface{}{
			"input": inputPath,
			"error": err.Error(),
		})
		if err := a.ffmpegConvert(inputPath, wavPath); err != nil {
			return "", err
		}
	}

	return wavPath, nil
}

// nativeConvert handles the containers the in-process decoders understand.
func (a *audioNormalizer) nativeConvert(inputPath, wavPath, ext string) error {
	switch ext {
	case ".mp3":
		return a.convertMp3(inputPath, wavPath)
	default:
		return fmt.Errorf("no native decoder for %q", ext)
	}
}

func (a *audioNormalizer) convertMp3(inputPath, wavPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := in.Close(); closeErr != nil {
			a.logger.Error(closeErr, "Failed to close input audio file")
		}
	}()

	decoder, err := mp3.NewDecoder(in)
	if err != nil {
		return err
	}

	// go-mp3 always yields 16-bit little-endian stereo PCM.
	pcm, err := io.ReadAll(decoder)
	if err != nil {
		return err
	}

	samples := make([]int, len(pcm)/2)
	for i := range samples {
		samples[i] = int(int16(binary.LittleEndian.Uint16(pcm[2*i:])))
	}

	out, err := os.Create(wavPath)
	if err != nil {
		return err
	}

	encoder := wavenc.NewEncoder(out, decoder.SampleRate(), 16, 2, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: decoder.SampleRate()},
		Data:           samples,
		SourceBitDepth: 16,
	}
	if err := encoder.Write(buf); err != nil {
		_ = encoder.Close()
		_ = out.Close()
		return err
	}
	if err := encoder.Close(); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// ffmpegConvert demuxes and re-encodes through the external ffmpeg binary.
func (a *audioNormalizer) ffmpegConvert(inputPath, wavPath string) error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMissingCodecTooling, err)
	}

	var stderr bytes.Buffer
	cmd := exec.Command("ffmpeg", "-y", "-i", inputPath, wavPath)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		a.logger.ErrorWithFields(err, "ffmpeg transcode failed", map[string]interface{}{
			"input":  inputPath,
			"stderr": stderr.String(),
		})
		return fmt.Errorf("%w: %s: %v", domain.ErrUnsupportedAudioFormat, inputPath, err)
	}
	return nil
}
