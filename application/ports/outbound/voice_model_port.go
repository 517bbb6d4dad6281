package outbound

import "context"

type SynthesizeParams struct {
	// Text is the style-annotated text to speak.
	Text string
	// ReferenceWav is the cloning source; empty means use Speaker instead.
	ReferenceWav string
	// Speaker is the built-in speaker identity used when no reference is set.
	Speaker string
	// Language is a code from the model's supported set.
	Language string
	// OutputPath is where the model writes the WAV result.
	OutputPath string
}

// VoiceModelPort is the narrow contract over the pretrained voice-cloning
// synthesis model.
type VoiceModelPort interface {
	Synthesize(ctx context.Context, params SynthesizeParams) error
}
