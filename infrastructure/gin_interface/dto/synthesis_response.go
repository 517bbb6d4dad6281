package dto

type SynthesisResponse struct {
	Ok       bool   `json:"ok"`
	AudioUrl string `json:"audioUrl,omitempty"`
	Error    string `json:"error,omitempty"`
}
