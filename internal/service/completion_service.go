package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/talentdesk/recruitment-service/internal/config"
)

// CompletionService wraps an OpenAI-compatible chat-completions API for
// drafting recruitment emails. Without an API key it falls back to
// intent-classified templates so the endpoint keeps working in
// development.
type CompletionService struct {
	cfg    config.CompletionConfig
	client *http.Client
	logger *zap.Logger
}

// NewCompletionService builds the service.
func NewCompletionService(cfg config.CompletionConfig, logger *zap.Logger) *CompletionService {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &CompletionService{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// EmailDraft is the generated result.
type EmailDraft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Source  string `json:"source"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// GenerateEmail drafts an email for the given recipient context and
// free-form instruction.
func (s *CompletionService) GenerateEmail(ctx context.Context, recipientName, prompt string) (*EmailDraft, error) {
	intent := classifyIntent(prompt)

	if s.cfg.APIKey == "" {
		return s.templateDraft(recipientName, prompt, intent), nil
	}

	draft, err := s.complete(ctx, recipientName, prompt, intent)
	if err != nil {
		s.logger.Warn("completion API failed, using template fallback", zap.Error(err))
		return s.templateDraft(recipientName, prompt, intent), nil
	}
	return draft, nil
}

func (s *CompletionService) complete(ctx context.Context, recipientName, prompt string, intent emailIntent) (*EmailDraft, error) {
	system := fmt.Sprintf(
		"You are a recruitment consultant writing a %s email. Tone: %s. Reply with the subject on the first line prefixed 'Subject: ', then the body.",
		intent.context, intent.tone)
	user := fmt.Sprintf("Recipient: %s. Instruction: %s", recipientName, prompt)

	payload, err := json.Marshal(chatRequest{
		Model: s.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(s.cfg.BaseURL, "/")+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("completion API status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("completion API returned no choices")
	}

	subject, emailBody := splitDraft(parsed.Choices[0].Message.Content)
	return &EmailDraft{Subject: subject, Body: emailBody, Source: "completion"}, nil
}

func splitDraft(content string) (string, string) {
	lines := strings.SplitN(strings.TrimSpace(content), "\n", 2)
	subject := strings.TrimSpace(strings.TrimPrefix(lines[0], "Subject:"))
	body := ""
	if len(lines) > 1 {
		body = strings.TrimSpace(lines[1])
	}
	return subject, body
}

type emailIntent struct {
	name    string
	tone    string
	context string
}

// classifyIntent picks a tone and context from keywords in the
// instruction, mirroring the drafting categories consultants use.
func classifyIntent(prompt string) emailIntent {
	lower := strings.ToLower(prompt)
	switch {
	case containsAny(lower, "dismissed", "fired", "terminated", "let go"):
		return emailIntent{"dismissal", "professional, respectful, clear", "employment termination"}
	case containsAny(lower, "meeting", "interview", "schedule"):
		return emailIntent{"meeting_invitation", "professional, friendly", "meeting coordination"}
	case containsAny(lower, "offer", "accept", "hired"):
		return emailIntent{"job_offer", "enthusiastic, professional, welcoming", "job offer extension"}
	case containsAny(lower, "reject", "not selected", "declined"):
		return emailIntent{"rejection", "respectful, encouraging, professional", "application rejection"}
	case containsAny(lower, "follow up", "update", "status"):
		return emailIntent{"follow_up", "professional, informative", "application status update"}
	default:
		return emailIntent{"general", "professional, helpful", "general communication"}
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func (s *CompletionService) templateDraft(recipientName, prompt string, intent emailIntent) *EmailDraft {
	greeting := "Hello"
	if recipientName != "" {
		greeting = "Dear " + recipientName
	}

	var subject, body string
	switch intent.name {
	case "meeting_invitation":
		subject = "Meeting invitation"
		body = fmt.Sprintf("%s,\n\nWe would like to arrange a meeting with you. %s\n\nPlease let us know your availability.\n\nBest regards", greeting, prompt)
	case "job_offer":
		subject = "Your job offer"
		body = fmt.Sprintf("%s,\n\nWe are delighted to move forward with your offer. %s\n\nWe look forward to welcoming you.\n\nBest regards", greeting, prompt)
	case "rejection":
		subject = "Update on your application"
		body = fmt.Sprintf("%s,\n\nThank you for your interest. After careful consideration we will not be moving forward at this time.\n\nWe encourage you to apply for future openings.\n\nBest regards", greeting)
	case "follow_up":
		subject = "Application status update"
		body = fmt.Sprintf("%s,\n\nHere is an update regarding your application. %s\n\nBest regards", greeting, prompt)
	default:
		subject = "Message from your recruitment team"
		body = fmt.Sprintf("%s,\n\n%s\n\nBest regards", greeting, prompt)
	}

	return &EmailDraft{Subject: subject, Body: body, Source: "template"}
}
