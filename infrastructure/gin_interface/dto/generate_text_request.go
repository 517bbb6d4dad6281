package dto

type GenerateTextRequest struct {
	Text     string `json:"text"`
	Emotion  string `json:"emotion"`
	Task     string `json:"task"`
	Language string `json:"language"`
}
