package gemini

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// Completion failures surface as one of two sentinels: ErrUnavailable after
// the retry budget is spent on transient faults, ErrBlocked when the service
// answered but produced no usable text (safety block, empty candidate).
// ErrBlocked is never retried.
var (
	ErrUnavailable = errors.New("completion service unavailable")
	ErrBlocked     = errors.New("completion empty or safety blocked")
)

const (
	maxAttempts    = 3
	attemptTimeout = 10 * time.Second
	backoffBase    = 500 * time.Millisecond

	defaultModelName = "gemini-2.0-flash"
)

type IGemini interface {
	GenerateReply(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

type geminiClient struct {
	client    *genai.Client
	modelName string
	log       *logrus.Logger
}

func NewGeminiClient(log *logrus.Logger) (IGemini, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	modelName := os.Getenv("GEMINI_MODEL_NAME")
	if modelName == "" {
		modelName = defaultModelName
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &geminiClient{
		client:    client,
		modelName: modelName,
		log:       log,
	}, nil
}

// GenerateReply sends one system-prompt + user-message pair and returns the
// completion text verbatim. Transient faults are retried with exponential
// backoff; content failures are not.
func (g *geminiClient) GenerateReply(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	model := g.client.GenerativeModel(g.modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}
	model.SetTemperature(0.7)
	model.SetTopP(0.9)
	model.SetMaxOutputTokens(500)

	attempt := func(attemptCtx context.Context) (string, error) {
		res, err := model.GenerateContent(attemptCtx, genai.Text(userMessage))
		if err != nil {
			return "", err
		}
		return extractText(res)
	}

	return GenerateWithRetry(ctx, g.log, attempt)
}

// GenerateWithRetry owns the bounded retry loop so the pipeline never sees
// it. attempt errors other than ErrBlocked count as transient. Alternate
// completion providers share this loop and the sentinel mapping.
func GenerateWithRetry(ctx context.Context, log *logrus.Logger, attempt func(context.Context) (string, error)) (string, error) {
	var lastErr error

	for i := 1; i <= maxAttempts; i++ {
		attemptCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
		text, err := attempt(attemptCtx)
		cancel()

		if err == nil {
			return text, nil
		}
		if errors.Is(err, ErrBlocked) {
			return "", ErrBlocked
		}

		lastErr = err
		if log != nil {
			log.WithFields(logrus.Fields{
				"attempt": i,
				"error":   err.Error(),
			}).Warn("Completion attempt failed")
		}

		if i == maxAttempts {
			break
		}

		backoff := backoffBase << (i - 1)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return "", ErrUnavailable
		}
	}

	if lastErr != nil && log != nil {
		log.WithFields(logrus.Fields{
			"error": lastErr.Error(),
		}).Error("Completion retry budget exhausted")
	}

	return "", ErrUnavailable
}

func extractText(res *genai.GenerateContentResponse) (string, error) {
	if res == nil || len(res.Candidates) == 0 {
		return "", ErrBlocked
	}

	candidate := res.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", ErrBlocked
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	reply := strings.TrimSpace(sb.String())
	if reply == "" {
		return "", ErrBlocked
	}

	return reply, nil
}
