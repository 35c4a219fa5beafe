package openai

import (
	"context"
	"errors"
	"os"
	"strings"

	"BluewudSupport/pkg/gemini"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

const defaultModelName = openai.GPT4oMini

// ChatClient is a drop-in alternate completion provider. It reports
// failures through the same sentinels as the primary provider so the
// pipeline's degradation mapping does not care which backend answered.
type ChatClient struct {
	client    *openai.Client
	modelName string
	log       *logrus.Logger
}

func NewChatClient(log *logrus.Logger) (*ChatClient, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("openai API key is required")
	}

	modelName := os.Getenv("OPENAI_MODEL_NAME")
	if modelName == "" {
		modelName = defaultModelName
	}

	return &ChatClient{
		client:    openai.NewClient(apiKey),
		modelName: modelName,
		log:       log,
	}, nil
}

func (c *ChatClient) GenerateReply(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	attempt := func(attemptCtx context.Context) (string, error) {
		res, err := c.client.CreateChatCompletion(attemptCtx, openai.ChatCompletionRequest{
			Model:       c.modelName,
			Temperature: 0.7,
			TopP:        0.9,
			MaxTokens:   500,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userMessage},
			},
		})
		if err != nil {
			return "", err
		}
		return extractText(res)
	}

	return gemini.GenerateWithRetry(ctx, c.log, attempt)
}

func extractText(res openai.ChatCompletionResponse) (string, error) {
	if len(res.Choices) == 0 {
		return "", gemini.ErrBlocked
	}

	if res.Choices[0].FinishReason == openai.FinishReasonContentFilter {
		return "", gemini.ErrBlocked
	}

	reply := strings.TrimSpace(res.Choices[0].Message.Content)
	if reply == "" {
		return "", gemini.ErrBlocked
	}

	return reply, nil
}
