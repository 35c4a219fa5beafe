package chatService

import (
	"math"
	"sort"
	"strings"

	"BluewudSupport/internal/entity"
	"BluewudSupport/internal/knowledge"
	"BluewudSupport/pkg/nlp"
)

// Layered weights: an exact SKU hit must dominate alias evidence, alias
// evidence must dominate generic token overlap, and fuzzy bonuses stay below
// all of them so accumulated noise can never displace an exact match.
const (
	productExactSkuWeight     = 30
	productAliasNameWeight    = 25
	productAliasKeywordWeight = 12
	productSkuTokenWeight     = 10
	productFuzzyNameWeight    = 10
	productFuzzySkuWeight     = 8
	productCategoryWeight     = 6
	productFuzzyThreshold     = 0.6
	maxProductMatches         = 3
)

// searchProducts scores the whole catalog against the query. The alias
// display name is resolved transiently per call and never written back into
// the snapshot.
func (s *chatService) searchProducts(snap *knowledge.Snapshot, query string) []entity.ProductMatch {
	normQuery := nlp.Normalize(query)
	if normQuery == "" {
		return nil
	}
	tokens := strings.Fields(normQuery)

	var matches []entity.ProductMatch

	for _, product := range snap.Products {
		normSku := nlp.Normalize(product.SKU)
		normCategory := nlp.Normalize(product.Category)
		alias := findAlias(snap.Aliases, normSku)

		score := 0

		if normQuery == normSku {
			score += productExactSkuWeight
		}

		for _, token := range tokens {
			if strings.Contains(normSku, token) {
				score += productSkuTokenWeight
				break
			}
		}

		for _, token := range tokens {
			if strings.Contains(normCategory, token) {
				score += productCategoryWeight
				break
			}
		}

		resolvedName := ""
		if alias != nil {
			resolvedName = alias.Name
			aliasName := nlp.Normalize(alias.Name)

			if strings.Contains(normQuery, aliasName) {
				score += productAliasNameWeight
			}

			for _, keyword := range alias.Keywords {
				if strings.Contains(normQuery, nlp.Normalize(keyword)) {
					score += productAliasKeywordWeight
				}
			}

			if sim := nlp.Similarity(normQuery, aliasName); sim > productFuzzyThreshold {
				score += int(math.Round(sim * productFuzzyNameWeight))
			}
		}

		if sim := nlp.Similarity(normQuery, normSku); sim > productFuzzyThreshold {
			score += int(math.Round(sim * productFuzzySkuWeight))
		}

		if score > 0 {
			matches = append(matches, entity.ProductMatch{
				Product:      product,
				ResolvedName: resolvedName,
				Score:        score,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > maxProductMatches {
		matches = matches[:maxProductMatches]
	}

	return matches
}

// findAlias resolves a product's alias by SKU prefix: the alias SKU never
// carries the size/variant suffix the catalog SKU may have.
func findAlias(aliases []entity.NameAlias, normSku string) *entity.NameAlias {
	for i := range aliases {
		if strings.HasPrefix(normSku, nlp.Normalize(aliases[i].SKU)) {
			return &aliases[i]
		}
	}
	return nil
}
