package chatService

import (
	"testing"

	"BluewudSupport/internal/entity"
	"BluewudSupport/internal/knowledge"
)

func TestSearchProductsExactSkuDominates(t *testing.T) {
	svc := &chatService{log: testLogger()}

	matches := svc.searchProducts(testSnapshot(), "BW-TVU-ALX-L")

	if len(matches) == 0 {
		t.Fatal("no matches for an exact SKU")
	}
	if matches[0].Product.SKU != "BW-TVU-ALX-L" {
		t.Fatalf("top match = %q, want the exact SKU", matches[0].Product.SKU)
	}
	// Exact SKU plus its own token and fuzzy bonuses must outrank every
	// other product.
	if len(matches) > 1 && matches[1].Score >= matches[0].Score {
		t.Errorf("runner-up score %d >= exact-match score %d", matches[1].Score, matches[0].Score)
	}
	if matches[0].ResolvedName != "Alex TV Unit" {
		t.Errorf("ResolvedName = %q, want alias display name", matches[0].ResolvedName)
	}
}

func TestSearchProductsAliasName(t *testing.T) {
	svc := &chatService{log: testLogger()}

	matches := svc.searchProducts(testSnapshot(), "how big is the oslon shoe rack")

	if len(matches) == 0 {
		t.Fatal("no matches for an alias name query")
	}
	if matches[0].Product.SKU != "BW-SR-OSN" {
		t.Errorf("top match = %q, want BW-SR-OSN", matches[0].Product.SKU)
	}
}

func TestSearchProductsCaseInsensitiveSku(t *testing.T) {
	svc := &chatService{log: testLogger()}

	upper := svc.searchProducts(testSnapshot(), "bw-sr-osn")
	if len(upper) == 0 || upper[0].Product.SKU != "BW-SR-OSN" {
		t.Errorf("lowercase SKU query missed the product: %v", upper)
	}
}

func TestSearchProductsScoreLayers(t *testing.T) {
	snap := &knowledge.Snapshot{
		Products: []entity.ProductRecord{
			{SKU: "BW-BKS-WLN", Category: "Bookshelf"},
		},
		Aliases: []entity.NameAlias{
			{SKU: "BW-BKS", Name: "Walden Bookshelf", Keywords: []string{"walden", "book rack"}},
		},
	}
	svc := &chatService{log: testLogger()}

	tests := []struct {
		name     string
		query    string
		wantHit  bool
		minScore int
	}{
		{name: "alias name plus keyword", query: "price of walden bookshelf", wantHit: true, minScore: productAliasNameWeight + productAliasKeywordWeight},
		{name: "keyword only", query: "show me a book rack", wantHit: true, minScore: productAliasKeywordWeight},
		{name: "category token only", query: "any bookshelf under 5000", wantHit: true, minScore: productCategoryWeight},
		{name: "unrelated query", query: "office chair", wantHit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := svc.searchProducts(snap, tt.query)

			if !tt.wantHit {
				if len(matches) != 0 {
					t.Fatalf("searchProducts(%q) = %v, want none", tt.query, matches)
				}
				return
			}

			if len(matches) != 1 {
				t.Fatalf("searchProducts(%q) got %d matches, want 1", tt.query, len(matches))
			}
			if matches[0].Score < tt.minScore {
				t.Errorf("Score = %d, want at least %d", matches[0].Score, tt.minScore)
			}
		})
	}
}

func TestSearchProductsFuzzyAlias(t *testing.T) {
	snap := &knowledge.Snapshot{
		Products: []entity.ProductRecord{
			{SKU: "BW-CT-LYR", Category: "Coffee Table"},
		},
		Aliases: []entity.NameAlias{
			{SKU: "BW-CT-LYR", Name: "Lyra Coffee Table"},
		},
	}
	svc := &chatService{log: testLogger()}

	// One transposition away from the alias name; similarity stays above
	// the fuzzy threshold.
	matches := svc.searchProducts(snap, "lyra coffee tabel")

	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1 fuzzy hit", len(matches))
	}
	if matches[0].Score <= 0 {
		t.Errorf("Score = %d, want positive fuzzy score", matches[0].Score)
	}
}

func TestSearchProductsCap(t *testing.T) {
	products := make([]entity.ProductRecord, 0, 5)
	for _, sku := range []string{"BW-WD-A", "BW-WD-B", "BW-WD-C", "BW-WD-D", "BW-WD-E"} {
		products = append(products, entity.ProductRecord{SKU: sku, Category: "Wardrobe"})
	}
	snap := &knowledge.Snapshot{Products: products}
	svc := &chatService{log: testLogger()}

	matches := svc.searchProducts(snap, "wardrobe")

	if len(matches) != maxProductMatches {
		t.Fatalf("got %d matches, want cap of %d", len(matches), maxProductMatches)
	}
}

func TestSearchProductsEmptyQuery(t *testing.T) {
	svc := &chatService{log: testLogger()}
	if matches := svc.searchProducts(testSnapshot(), "  "); matches != nil {
		t.Errorf("got %v, want nil for blank query", matches)
	}
}
