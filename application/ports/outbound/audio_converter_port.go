package outbound

// AudioConverterPort turns an arbitrary-container audio file into WAV and
// returns the WAV path. Inputs that are already WAV pass through unchanged.
type AudioConverterPort interface {
	EnsureWav(inputPath string) (string, error)
}
