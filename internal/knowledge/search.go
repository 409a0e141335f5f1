package knowledge

import (
	"fmt"
	"sort"
	"strings"

	"github.com/speakgenie/genie-support/internal/core"
)

// DefaultLimit is how many knowledge snippets a single query retrieves.
const DefaultLimit = 3

// Match pairs a corpus item with its relevance score for one query.
type Match struct {
	Item    core.KnowledgeItem
	Score   int
	Snippet string
}

// Search ranks corpus items against free-form user queries. The scoring is
// a fixed contract shared with the widget frontend:
//
//	+10 when the item question contains the whole query
//	+5 per keyword the query contains
//	+2 per query token (longer than two runes) found in the question,
//	   the answer, or any keyword
//
// Items scoring zero or below are dropped; ties keep corpus order.
type Search struct {
	corpus *Corpus
}

func NewSearch(corpus *Corpus) *Search {
	return &Search{corpus: corpus}
}

// Top returns the best limit matches for the query, best first.
func (s *Search) Top(query string, limit int) []Match {
	queryLower := strings.ToLower(query)

	var queryWords []string
	for _, word := range strings.Fields(queryLower) {
		if len(word) > 2 {
			queryWords = append(queryWords, word)
		}
	}

	var matches []Match
	for _, item := range s.corpus.Items() {
		score := 0
		question := strings.ToLower(item.Question)
		answer := strings.ToLower(item.Answer)

		if strings.Contains(question, queryLower) {
			score += 10
		}

		for _, keyword := range item.Keywords {
			if strings.Contains(queryLower, strings.ToLower(keyword)) {
				score += 5
			}
		}

		for _, word := range queryWords {
			if strings.Contains(question, word) || strings.Contains(answer, word) || keywordContains(item.Keywords, word) {
				score += 2
			}
		}

		if score <= 0 {
			continue
		}

		matches = append(matches, Match{
			Item:    item,
			Score:   score,
			Snippet: fmt.Sprintf("Q: %s\nA: %s", item.Question, item.Answer),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// Relevant returns formatted "Q: ...\nA: ..." snippets for the top matches.
// The snippet format is part of the contract: it is consumed verbatim by the
// prompt assembler.
func (s *Search) Relevant(query string, limit int) []string {
	matches := s.Top(query, limit)
	snippets := make([]string, 0, len(matches))
	for _, m := range matches {
		snippets = append(snippets, m.Snippet)
	}
	return snippets
}

// ExactMatch returns the first item whose question equals the query or whose
// keyword set contains it verbatim, case-insensitively.
func (s *Search) ExactMatch(query string) (core.KnowledgeItem, bool) {
	queryLower := strings.ToLower(query)
	for _, item := range s.corpus.Items() {
		if strings.ToLower(item.Question) == queryLower {
			return item, true
		}
		for _, keyword := range item.Keywords {
			if strings.ToLower(keyword) == queryLower {
				return item, true
			}
		}
	}
	return core.KnowledgeItem{}, false
}

func keywordContains(keywords []string, word string) bool {
	for _, k := range keywords {
		if strings.Contains(strings.ToLower(k), word) {
			return true
		}
	}
	return false
}
