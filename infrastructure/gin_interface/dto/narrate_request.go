package dto

type NarrateRequest struct {
	Text string `json:"text"`
}
