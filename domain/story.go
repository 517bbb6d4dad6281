package domain

type StoryRequest struct {
	Grade      string
	Difficulty string
	Theme      string
}

type StoryDocument struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
