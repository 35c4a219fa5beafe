package chatService

import (
	"testing"

	"BluewudSupport/internal/entity"
	"BluewudSupport/internal/knowledge"
)

func TestSearchFaqsKeywordHit(t *testing.T) {
	snap := testSnapshot()
	svc := &chatService{log: testLogger()}

	matches := svc.searchFaqs(snap, "warranty")

	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].Entry.ID != "warranty-policy" {
		t.Errorf("matched %q, want warranty-policy", matches[0].Entry.ID)
	}
	if matches[0].Category != "Warranty & Returns" {
		t.Errorf("Category = %q, want parent category name", matches[0].Category)
	}
	if matches[0].Score < faqMinScore {
		t.Errorf("Score = %d, want at least %d from a single keyword", matches[0].Score, faqMinScore)
	}
}

func TestSearchFaqsQualification(t *testing.T) {
	snap := &knowledge.Snapshot{
		Categories: []entity.FaqCategory{
			{
				Name: "Assembly",
				Faqs: []entity.FaqEntry{
					{
						ID:       "assembly-help",
						Question: "How do I assemble the wall shelf at home?",
						Keywords: []string{"assembly instructions"},
					},
				},
			},
		},
	}
	svc := &chatService{log: testLogger()}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		// One keyword phrase alone clears the score floor.
		{name: "single keyword qualifies", query: "send assembly instructions", want: true},
		// Two weak question-word overlaps score 10, below both floors.
		{name: "two weak words rejected", query: "wall shelf", want: false},
		// Three overlaps qualify through the word-match rule alone.
		{name: "three weak words qualify", query: "wall shelf home", want: true},
		{name: "short tokens ignored", query: "do at it in", want: false},
		{name: "no overlap", query: "bookshelf price", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := svc.searchFaqs(snap, tt.query)
			if got := len(matches) > 0; got != tt.want {
				t.Errorf("searchFaqs(%q) qualified=%v, want %v (matches=%v)", tt.query, got, tt.want, matches)
			}
		})
	}
}

func TestSearchFaqsRankingAndCap(t *testing.T) {
	faqs := make([]entity.FaqEntry, 0, 5)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		faqs = append(faqs, entity.FaqEntry{
			ID:       id,
			Question: "About cushion covers",
			Keywords: []string{"cushion"},
		})
	}
	faqs[2].Keywords = append(faqs[2].Keywords, "covers")

	snap := &knowledge.Snapshot{
		Categories: []entity.FaqCategory{{Name: "Care", Faqs: faqs}},
	}
	svc := &chatService{log: testLogger()}

	matches := svc.searchFaqs(snap, "cushion covers")

	if len(matches) != maxFaqMatches {
		t.Fatalf("got %d matches, want cap of %d", len(matches), maxFaqMatches)
	}
	if matches[0].Entry.ID != "c" {
		t.Errorf("top match = %q, want the double-keyword entry c", matches[0].Entry.ID)
	}
	// Stable sort keeps catalog order among equal scores.
	if matches[1].Entry.ID != "a" || matches[2].Entry.ID != "b" {
		t.Errorf("tie order = %q,%q, want a,b", matches[1].Entry.ID, matches[2].Entry.ID)
	}
}

func TestSearchFaqsEmptyQuery(t *testing.T) {
	svc := &chatService{log: testLogger()}
	if matches := svc.searchFaqs(testSnapshot(), "   "); matches != nil {
		t.Errorf("got %v, want nil for blank query", matches)
	}
}
