package dto

type GenerateStoryRequest struct {
	Prompt string `json:"prompt"`
}

type GenerateStoryResponse struct {
	Story string `json:"story"`
}
