package entity

// FaqEntry is a static question/answer record. Immutable after load.
type FaqEntry struct {
	ID       string   `json:"id"`
	Question string   `json:"q"`
	Answer   string   `json:"a"`
	Keywords []string `json:"keywords"`
}

type FaqCategory struct {
	Name string     `json:"name"`
	Icon string     `json:"icon"`
	Faqs []FaqEntry `json:"faqs"`
}

type Dimensions struct {
	Length  float64 `json:"l"`
	Breadth float64 `json:"b"`
	Height  float64 `json:"h"`
}

// ProductRecord is one catalog row. The SKU is unique and may carry a
// size/variant suffix behind the alias prefix.
type ProductRecord struct {
	SKU        string     `json:"sku"`
	Category   string     `json:"category"`
	Dimensions Dimensions `json:"dimensions"`
	Weight     float64    `json:"weight"`
	Price      float64    `json:"price"`
}

// NameAlias maps a human-friendly product name and its synonyms to a SKU
// prefix shared by all variants of that product.
type NameAlias struct {
	SKU      string   `json:"sku"`
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// FaqMatch is produced per query and discarded after the pipeline step.
type FaqMatch struct {
	Entry       FaqEntry
	Category    string
	Icon        string
	Score       int
	WordMatches int
}

// ProductMatch carries the alias display name resolved during the search,
// never persisted back into the catalog.
type ProductMatch struct {
	Product      ProductRecord
	ResolvedName string
	Score        int
}

type Contact struct {
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
	Hours    string `json:"hours"`
}

type Offer struct {
	Name     string `json:"name"`
	Discount string `json:"discount"`
	Code     string `json:"code"`
}

type BotConfig struct {
	BotName      string   `json:"botName"`
	Contact      Contact  `json:"contact"`
	CurrentOffer Offer    `json:"currentOffer"`
	KeyFacts     []string `json:"keyFacts"`
	ShopLink     string   `json:"shopLink"`
}

// Messages holds the canned reply templates keyed by situation.
type Messages struct {
	Welcome     string `json:"welcome"`
	Greeting    string `json:"greeting"`
	Goodbye     string `json:"goodbye"`
	Gratitude   string `json:"gratitude"`
	Handoff     string `json:"handoff"`
	Rephrase    string `json:"rephrase"`
	Apology     string `json:"apology"`
	Declined    string `json:"declined"`
	Offline     string `json:"offline"`
	SystemError string `json:"systemError"`
}
