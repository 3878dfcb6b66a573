package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/outreachlab/campaign-manager-backend/internal/models"
	"github.com/outreachlab/campaign-manager-backend/internal/utils"

	"github.com/sirupsen/logrus"
)

// summaryPreviewLength caps the profile summary excerpt in the template.
const summaryPreviewLength = 50

// TextGenerator produces free text from a prompt. The Gemini client
// implements it in production; tests inject fakes.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type MessageService struct {
	generator TextGenerator
}

// NewMessageService creates a message service. A nil generator means the
// deterministic template is the only path.
func NewMessageService(generator TextGenerator) *MessageService {
	return &MessageService{generator: generator}
}

// GenerateMessage produces a personalized outreach message for a profile.
// When a generator is configured it is tried first; any failure falls back
// to the template, and the chosen path is reported in the result rather
// than hidden behind an error.
func (s *MessageService) GenerateMessage(ctx context.Context, req *models.GenerateMessageRequest) (*models.GeneratedMessage, error) {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.JobTitle) == "" ||
		strings.TrimSpace(req.Company) == "" {
		return nil, NewValidationError("Name, job title, and company fields are required")
	}

	if s.generator != nil {
		text, err := s.generator.Generate(ctx, buildPrompt(req))
		if err == nil && strings.TrimSpace(text) != "" {
			return &models.GeneratedMessage{
				Text:   strings.TrimSpace(text),
				Source: models.MessageSourceGemini,
			}, nil
		}
		if err != nil {
			logrus.Warnf("Message generator failed, falling back to template: %v", err)
		}
	}

	return &models.GeneratedMessage{
		Text:   templateMessage(req),
		Source: models.MessageSourceTemplate,
	}, nil
}

// templateMessage renders the fixed outreach template. Output wording and
// spacing are part of the API contract; clients snapshot these messages.
func templateMessage(req *models.GenerateMessageRequest) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Hi %s, I noticed you're working as a %s at %s", req.Name, req.JobTitle, req.Company))
	if req.Location != "" {
		b.WriteString(" in " + req.Location)
	}
	b.WriteString(". ")

	if req.Summary != "" {
		b.WriteString(fmt.Sprintf("I was impressed by your experience in %s.",
			utils.TruncateWithEllipsis(req.Summary, summaryPreviewLength)))
	}

	b.WriteString(" I'd love to connect and share how our platform could help increase your team's outreach efficiency. Would you be open to a quick chat?")

	return b.String()
}

// buildPrompt frames the profile for the generative path. The template
// output is included as a style anchor so AI replies stay on-message.
func buildPrompt(req *models.GenerateMessageRequest) string {
	var b strings.Builder

	b.WriteString("Write a short, friendly LinkedIn outreach message (2-4 sentences) to the person below. ")
	b.WriteString("End with a call to action asking for a quick chat about improving their team's outreach efficiency. ")
	b.WriteString("Return only the message text.\n\n")
	b.WriteString("Name: " + req.Name + "\n")
	b.WriteString("Job title: " + req.JobTitle + "\n")
	b.WriteString("Company: " + req.Company + "\n")
	if req.Location != "" {
		b.WriteString("Location: " + req.Location + "\n")
	}
	if req.Summary != "" {
		b.WriteString("Profile summary: " + req.Summary + "\n")
	}
	b.WriteString("\nExample tone: " + templateMessage(req))

	return b.String()
}
