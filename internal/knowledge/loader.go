package knowledge

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"BluewudSupport/internal/entity"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/net/context"
)

//go:embed data/database.json
var embeddedDatabase []byte

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrInvalidDataset = errors.New("knowledge base dataset is not valid JSON")
	ErrEmptyDataset   = errors.New("knowledge base dataset holds no categories and no products")
)

type database struct {
	Categories []entity.FaqCategory   `json:"categories"`
	Products   []entity.ProductRecord `json:"products"`
	Aliases    []entity.NameAlias     `json:"aliases"`
	Config     entity.BotConfig       `json:"config"`
	Messages   entity.Messages        `json:"messages"`
}

// load resolves the knowledge source in priority order: S3 object, local
// file, embedded default.
func (s *store) load(ctx context.Context) (*Snapshot, error) {
	if key := os.Getenv("KB_S3_KEY"); key != "" && s.s3Client != nil {
		data, err := s.s3Client.FetchObject(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("knowledge base fetch from s3 failed: %w", err)
		}
		return parseSnapshot(data, "s3:"+key)
	}

	if path := os.Getenv("KNOWLEDGE_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("knowledge base read from %s failed: %w", path, err)
		}
		return parseSnapshot(data, "file:"+path)
	}

	return loadEmbedded()
}

func loadEmbedded() (*Snapshot, error) {
	return parseSnapshot(embeddedDatabase, "embedded")
}

func parseSnapshot(data []byte, source string) (*Snapshot, error) {
	var db database
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}

	if len(db.Categories) == 0 && len(db.Products) == 0 {
		return nil, fmt.Errorf("%w (source %s)", ErrEmptyDataset, source)
	}

	applyMessageDefaults(&db.Messages)

	return &Snapshot{
		Categories: db.Categories,
		Products:   db.Products,
		Aliases:    db.Aliases,
		Config:     db.Config,
		Messages:   db.Messages,
		Source:     source,
		LoadedAt:   time.Now(),
	}, nil
}

// applyMessageDefaults guarantees every canned reply template is non-empty
// even when an externally maintained dataset omits one.
func applyMessageDefaults(m *entity.Messages) {
	if m.Welcome == "" {
		m.Welcome = "Hi! How can I help you with your furniture today?"
	}
	if m.Greeting == "" {
		m.Greeting = "Hi there! How can I help you with your furniture needs today?"
	}
	if m.Goodbye == "" {
		m.Goodbye = "Thanks for chatting with us! Have a great day."
	}
	if m.Gratitude == "" {
		m.Gratitude = "You're welcome! Is there anything else I can help you with?"
	}
	if m.Handoff == "" {
		m.Handoff = "Sure, connecting you to our support team right away."
	}
	if m.Rephrase == "" {
		m.Rephrase = "I didn't catch that. Could you please rephrase?"
	}
	if m.Apology == "" {
		m.Apology = "I'm having trouble answering right now. Please contact our support team and we'll help you personally."
	}
	if m.Declined == "" {
		m.Declined = "I couldn't come up with a good answer for that one. Our support team will be happy to help."
	}
	if m.Offline == "" {
		m.Offline = "Our assistant is briefly offline. Please contact our support team directly."
	}
	if m.SystemError == "" {
		m.SystemError = "I'm having trouble right now. Please contact our support team."
	}
}
