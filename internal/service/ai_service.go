package service

import (
	"career_path_backend/internal/config"
	"context"
	"errors"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Advisor 回答对话中的自由提问
type Advisor interface {
	Reply(ctx context.Context, question string, topic string) (string, error)
}

const advisorSystemPrompt = "You are a friendly career guide for students. " +
	"Answer questions about careers, salaries, education requirements and skills in at most three short sentences. " +
	"Politely decline anything unrelated to career guidance."

// AIService OpenAI 兼容接口
type AIService struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewAIService(cfg config.AIConfig) (*AIService, error) {
	if !cfg.Enabled() {
		return nil, errors.New("ai api key is required")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &AIService{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		timeout: 15 * time.Second,
	}, nil
}

func (s *AIService) Reply(ctx context.Context, question string, topic string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	system := advisorSystemPrompt
	if topic != "" {
		system += " The student is currently exploring: " + topic + "."
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
		MaxCompletionTokens: 200,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", errors.New("empty completion")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// KeywordAdvisor 未配置 AI 或 AI 调用失败时使用的固定回复
type KeywordAdvisor struct{}

func (KeywordAdvisor) Reply(_ context.Context, question string, _ string) (string, error) {
	return keywordReply(question), nil
}

func keywordReply(question string) string {
	reply := "I understand you're interested in learning more. "
	q := strings.ToLower(question)
	switch {
	case strings.Contains(q, "salary"):
		reply += "Salary ranges vary by experience and location. Would you like to explore specific career paths and their potential earnings?"
	case strings.Contains(q, "education"):
		reply += "Educational requirements differ for each career. Shall we look at the qualifications needed for specific roles?"
	case strings.Contains(q, "skills"):
		reply += "Different careers require different skill sets. Would you like to know what skills are most valuable in your field of interest?"
	default:
		reply += "Would you like to explore specific career paths or learn more about certain aspects of these professions?"
	}
	return reply
}
