package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/AnshRaj112/life-reset-backend/internal/apperrors"
	"github.com/AnshRaj112/life-reset-backend/internal/models"
)

const (
	DefaultCoachModel   = "gpt-4"
	defaultCoachTimeout = 60 * time.Second

	suggestionMaxTokens = 500
	insightsMaxTokens   = 800
	coachTemperature    = 0.7

	suggestionSystemPrompt = "You are a life coach AI assistant. Provide personalized, actionable advice based on the user's daily activities and reflections."

	insightsSystemPrompt = `You are a life coach AI assistant. Analyze the user's daily activities, goals, and mind reframe data to provide personalized insights and recommendations. Focus on:
1. Pattern recognition in daily activities
2. Alignment with stated goals
3. Emotional well-being insights
4. Actionable next steps
5. Motivation and encouragement`
)

// ChatCompleter is the subset of *openai.Client the coach needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// CoachConfig holds the language-model settings.
type CoachConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Coach forwards user context to a chat-completion model and returns the
// completion text unmodified.
type Coach struct {
	client  ChatCompleter
	model   string
	timeout time.Duration
}

// NewCoach builds a coach backed by the OpenAI API. Without an API key the
// coach is created unconfigured and every call returns a configuration error.
func NewCoach(cfg CoachConfig) *Coach {
	if cfg.APIKey == "" {
		return NewCoachWithClient(nil, cfg.Model, cfg.Timeout)
	}
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	return NewCoachWithClient(openai.NewClientWithConfig(clientConfig), cfg.Model, cfg.Timeout)
}

func NewCoachWithClient(client ChatCompleter, model string, timeout time.Duration) *Coach {
	if model == "" {
		model = DefaultCoachModel
	}
	if timeout <= 0 {
		timeout = defaultCoachTimeout
	}
	return &Coach{client: client, model: model, timeout: timeout}
}

// Configured reports whether an API client is available.
func (c *Coach) Configured() bool {
	return c != nil && c.client != nil
}

// Suggest answers a free-text context. userID is only added to the prompt.
func (c *Coach) Suggest(ctx context.Context, contextText, userID string) (string, error) {
	if strings.TrimSpace(contextText) == "" {
		return "", apperrors.Validation("Context is required")
	}

	userPrompt := "Context: " + contextText
	if userID != "" {
		userPrompt += "\n\nUser ID: " + userID
	}

	text, err := c.complete(ctx, suggestionSystemPrompt, userPrompt, suggestionMaxTokens)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "No suggestion available", nil
	}
	return text, nil
}

// Insights analyses a daily log against the optional goal and mind-reframe
// snapshots.
func (c *Coach) Insights(ctx context.Context, req models.InsightsRequest) (string, error) {
	if req.DailyLog == nil {
		return "", apperrors.Validation("Daily log is required")
	}

	text, err := c.complete(ctx, insightsSystemPrompt, BuildInsightsPrompt(req), insightsMaxTokens)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "No insights available", nil
	}
	return text, nil
}

// BuildInsightsPrompt renders the structured coaching prompt. List fields are
// written as JSON arrays.
func BuildInsightsPrompt(req models.InsightsRequest) string {
	log := req.DailyLog
	if log == nil {
		log = &models.DailyLog{}
	}
	goals := req.Goals
	if goals == nil {
		goals = &models.Goal{}
	}
	reframe := req.MindReframe
	if reframe == nil {
		reframe = &models.MindReframe{}
	}

	var b strings.Builder
	b.WriteString("\nDaily Log:\n")
	fmt.Fprintf(&b, "- Morning Activities: %s\n", log.MorningActivities)
	fmt.Fprintf(&b, "- Afternoon Activities: %s\n", log.AfternoonActivities)
	fmt.Fprintf(&b, "- Evening Activities: %s\n", log.NightActivities)
	fmt.Fprintf(&b, "- Feelings: %s\n", orDefault(log.Feelings, "Not specified"))
	b.WriteString("\nGoals:\n")
	fmt.Fprintf(&b, "- 10-Year Goal: %s\n", orDefault(goals.TenYearGoal, "Not set"))
	fmt.Fprintf(&b, "- 1-Year Goal: %s\n", orDefault(goals.OneYearGoal, "Not set"))
	fmt.Fprintf(&b, "- 3-Month Goal: %s\n", orDefault(goals.ThreeMonthGoal, "Not set"))
	b.WriteString("\nMind Reframe:\n")
	fmt.Fprintf(&b, "- Don't Want: %s\n", reframe.DontWant)
	fmt.Fprintf(&b, "- Want: %s\n", reframe.Want)
	b.WriteString("\nPlease provide 3-5 personalized insights and recommendations based on this data.\n")
	return b.String()
}

func (c *Coach) complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	if !c.Configured() {
		return "", apperrors.Configuration("AI coach not configured. Please set the OPENAI_API_KEY environment variable.")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		MaxTokens:   maxTokens,
		Temperature: coachTemperature,
	})
	if err != nil {
		return "", apperrors.Upstream("Internal server error", fmt.Errorf("chat completion: %w", err))
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
