package models

// MessageSource identifies which path produced an outreach message.
type MessageSource string

const (
	MessageSourceGemini   MessageSource = "gemini"
	MessageSourceTemplate MessageSource = "template"
)

// GeneratedMessage is the modeled outcome of message generation. The
// template fallback is a first-class result, not a caught failure.
type GeneratedMessage struct {
	Text   string        `json:"text"`
	Source MessageSource `json:"source"`
}

// GenerateMessageRequest carries the profile fields used to personalize an
// outreach message. Field names follow the scraper's snake_case output.
type GenerateMessageRequest struct {
	Name     string `json:"name" example:"Ana Silva"`
	JobTitle string `json:"job_title" example:"CTO"`
	Company  string `json:"company" example:"Acme"`
	Location string `json:"location" example:"Berlin"`
	Summary  string `json:"summary" example:"Scaling B2B outbound teams across Europe"`
}
