package chatService

import (
	"io"
	"time"

	"BluewudSupport/internal/entity"
	"BluewudSupport/internal/knowledge"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testSnapshot() *knowledge.Snapshot {
	return &knowledge.Snapshot{
		Categories: []entity.FaqCategory{
			{
				Name: "Orders & Delivery",
				Icon: "📦",
				Faqs: []entity.FaqEntry{
					{
						ID:       "track-order",
						Question: "How do I track my order?",
						Answer:   "Use the tracking link sent to your email.",
						Keywords: []string{"track", "where is my order", "shipping status"},
					},
					{
						ID:       "delivery-time",
						Question: "How long does delivery take?",
						Answer:   "Delivery takes 5-7 business days.",
						Keywords: []string{"delivery time", "how long"},
					},
				},
			},
			{
				Name: "Warranty & Returns",
				Icon: "🛡️",
				Faqs: []entity.FaqEntry{
					{
						ID:       "warranty-policy",
						Question: "What is the warranty policy?",
						Answer:   "All products carry a 1-year warranty.",
						Keywords: []string{"warranty", "guarantee"},
					},
				},
			},
		},
		Products: []entity.ProductRecord{
			{
				SKU:        "BW-TVU-ALX-L",
				Category:   "TV Unit",
				Dimensions: entity.Dimensions{Length: 150, Breadth: 35, Height: 45},
				Weight:     28.5,
				Price:      7999,
			},
			{
				SKU:        "BW-SR-OSN",
				Category:   "Shoe Rack",
				Dimensions: entity.Dimensions{Length: 65, Breadth: 25, Height: 110},
				Weight:     18,
				Price:      3499,
			},
		},
		Aliases: []entity.NameAlias{
			{SKU: "BW-TVU-ALX", Name: "Alex TV Unit", Keywords: []string{"alex", "tv stand"}},
			{SKU: "BW-SR-OSN", Name: "Oslon Shoe Rack", Keywords: []string{"oslon"}},
		},
		Config: entity.BotConfig{
			BotName: "Bluewud Furniture Expert",
			Contact: entity.Contact{
				WhatsApp: "+918800609609",
				Email:    "care@bluewud.com",
				Hours:    "Mon-Sat, 10 AM - 7 PM IST",
			},
			CurrentOffer: entity.Offer{Name: "Monsoon Sale", Discount: "15%", Code: "RAINY15"},
			KeyFacts:     []string{"Free delivery on all orders"},
		},
		Messages: entity.Messages{
			Welcome:     "Welcome to Bluewud!",
			Greeting:    "Hello! How can I help you today?",
			Goodbye:     "Goodbye, happy furnishing!",
			Gratitude:   "You're most welcome!",
			Handoff:     "Connecting you with our support team.",
			Rephrase:    "Could you rephrase that?",
			Apology:     "Sorry, I'm having trouble right now.",
			Declined:    "I can't help with that one.",
			Offline:     "Our assistant is offline, please contact support.",
			SystemError: "Something went wrong on our side.",
		},
		Source:   "test",
		LoadedAt: time.Now(),
	}
}

// fakeGemini records every invocation and plays back a scripted result.
type fakeGemini struct {
	reply   string
	err     error
	panicOn bool
	calls   int
	prompts []string
}

func (f *fakeGemini) GenerateReply(_ context.Context, systemPrompt, _ string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, systemPrompt)
	if f.panicOn {
		panic("scripted failure")
	}
	return f.reply, f.err
}

type fakeCache struct {
	entries map[string]string
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]string{}}
}

func (f *fakeCache) GetReply(_ context.Context, key string) (string, bool) {
	reply, ok := f.entries[key]
	return reply, ok
}

func (f *fakeCache) SetReply(_ context.Context, key, reply string, _ time.Duration) error {
	f.sets++
	f.entries[key] = reply
	return nil
}

// fakeWhatsapp signals on a channel so tests can wait for the async alert.
type fakeWhatsapp struct {
	sent chan string
}

func newFakeWhatsapp() *fakeWhatsapp {
	return &fakeWhatsapp{sent: make(chan string, 1)}
}

func (f *fakeWhatsapp) SendHandoffAlert(_ context.Context, visitorMessage string) error {
	f.sent <- visitorMessage
	return nil
}

func (f *fakeWhatsapp) Disconnect() error { return nil }
func (f *fakeWhatsapp) IsConnected() bool { return true }

type fakeMailer struct {
	sent chan string
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sent: make(chan string, 1)}
}

func (f *fakeMailer) SendHandoffAlert(visitorMessage string) error {
	f.sent <- visitorMessage
	return nil
}

func newTestService(gemini *fakeGemini, cache *fakeCache, wa *fakeWhatsapp, mailer *fakeMailer) IChatService {
	store := knowledge.NewFromSnapshot(testSnapshot())
	svc := &chatService{
		log:     testLogger(),
		store:   store,
		intents: defaultIntentRules(),
	}
	if gemini != nil {
		svc.gemini = gemini
	}
	if cache != nil {
		svc.replyCache = cache
	}
	if wa != nil {
		svc.whatsapp = wa
	}
	if mailer != nil {
		svc.mailer = mailer
	}
	return svc
}
