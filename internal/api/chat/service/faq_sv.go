package chatService

import (
	"sort"
	"strings"

	"BluewudSupport/internal/entity"
	"BluewudSupport/internal/knowledge"
	"BluewudSupport/pkg/nlp"
)

// Tuned weights. An entry qualifies on one strong keyword hit OR several
// weak textual overlaps, never on a single weak overlap.
const (
	faqKeywordWeight   = 15
	faqWordWeight      = 5
	faqMinScore        = 15
	faqMinWordMatches  = 3
	faqMinTokenLength  = 3
	maxFaqMatches      = 3
)

// searchFaqs scores every FAQ entry against the query and returns the top
// qualifying matches, tagged with their parent category. Deterministic:
// stable sort, ties keep catalog order.
func (s *chatService) searchFaqs(snap *knowledge.Snapshot, query string) []entity.FaqMatch {
	normQuery := nlp.Normalize(query)
	if normQuery == "" {
		return nil
	}
	tokens := strings.Fields(normQuery)

	var matches []entity.FaqMatch

	for _, category := range snap.Categories {
		for _, faq := range category.Faqs {
			keywordScore := 0
			for _, keyword := range faq.Keywords {
				if strings.Contains(normQuery, nlp.Normalize(keyword)) {
					keywordScore += faqKeywordWeight
				}
			}

			normQuestion := nlp.Normalize(faq.Question)
			wordMatches := 0
			for _, token := range tokens {
				if len(token) >= faqMinTokenLength && strings.Contains(normQuestion, token) {
					wordMatches++
				}
			}

			score := keywordScore + wordMatches*faqWordWeight
			if score < faqMinScore && wordMatches < faqMinWordMatches {
				continue
			}

			matches = append(matches, entity.FaqMatch{
				Entry:       faq,
				Category:    category.Name,
				Icon:        category.Icon,
				Score:       score,
				WordMatches: wordMatches,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > maxFaqMatches {
		matches = matches[:maxFaqMatches]
	}

	return matches
}
