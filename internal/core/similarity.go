package core

// similarity.go ranks existing catalog entries by similarity to a free-text
// input, powering "did you mean" suggestions that keep near-duplicate parts
// out of the catalog. This is a search-ranking problem scoped down to token
// overlap — proportionate to catalogs of hundreds to low thousands of items,
// where full-text search infrastructure would be overkill.

import (
	"fmt"
	"sort"
	"strings"
)

// specMatchBonus is added when a specification token recognized in the input
// appears verbatim in a catalog item's description.
const specMatchBonus = 0.25

// Suggest ranks catalog entries by similarity to text. Similarity is the
// Jaccard ratio of lowercase word sets between the input and the item's
// description plus category, with a bonus when a recognized specification
// token (the same recognition the extractor uses) matches a description word
// exactly. Entries below the similarity floor are dropped, the rest are
// sorted by descending score — ties keep catalog order — and truncated to the
// configured maximum.
func Suggest(text string, catalog []CatalogItem, opts Options) []Suggestion {
	queryWords := WordSet(text)
	if len(queryWords) == 0 || len(catalog) == 0 {
		return nil
	}
	specs, _, _ := RecognizeSpecs(text)
	floor := opts.similarityFloor()

	var out []Suggestion
	for i, item := range catalog {
		itemWords := WordSet(item.Description + " " + item.Category)
		overlap := jaccard(queryWords, itemWords)

		score := overlap
		var matchedSpecs []string
		for _, key := range sortedKeys(specs) {
			token := strings.ToLower(specs[key])
			if _, ok := itemWords[token]; ok {
				score += specMatchBonus
				matchedSpecs = append(matchedSpecs, specs[key])
			}
		}
		if score > 1.0 {
			score = 1.0
		}
		if score < floor {
			continue
		}

		out = append(out, Suggestion{
			CatalogIndex: i,
			PartNumber:   item.PartNumber,
			Description:  item.Description,
			Score:        score,
			Reason:       suggestionReason(overlap, matchedSpecs),
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if max := opts.maxSuggestions(); len(out) > max {
		out = out[:max]
	}
	return out
}

// jaccard computes |a∩b| / |a∪b| for two word sets.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for w := range a {
		if _, ok := b[w]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

// suggestionReason renders a human-readable explanation of a score.
func suggestionReason(overlap float64, matchedSpecs []string) string {
	reason := fmt.Sprintf("%.0f%% word overlap", overlap*100)
	if len(matchedSpecs) > 0 {
		reason += ", matching spec " + strings.Join(matchedSpecs, ", ")
	}
	return reason
}

// sortedKeys returns map keys in sorted order for deterministic iteration.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
