package knowledge

import (
	"testing"

	"github.com/speakgenie/genie-support/internal/core"
)

func testCorpus() *Corpus {
	return NewCorpus([]core.KnowledgeItem{
		{
			ID:       "1",
			Question: "What is SpeakGenie?",
			Answer:   "SpeakGenie is an English learning app for kids.",
			Category: "general",
			Keywords: []string{"speakgenie", "english learning"},
		},
		{
			ID:       "2",
			Question: "Is there a free trial?",
			Answer:   "Yes! Every new user gets a 7-day free trial.",
			Category: "pricing",
			Keywords: []string{"free trial", "7-day"},
		},
		{
			ID:       "3",
			Question: "Does SpeakGenie have games?",
			Answer:   "Yes, word games, quizzes and puzzles.",
			Category: "features",
			Keywords: []string{"games", "quizzes"},
		},
	})
}

func TestSearch_KeywordInsideQuery(t *testing.T) {
	s := NewSearch(testCorpus())

	// Direction matters: the query contains the keyword, not vice versa.
	matches := s.Top("Tell me about speakgenie pricing", 3)
	if len(matches) == 0 {
		t.Fatal("expected at least one match")
	}

	found := false
	for _, m := range matches {
		if m.Item.ID == "1" {
			found = true
			if m.Score <= 0 {
				t.Errorf("expected positive score, got %d", m.Score)
			}
		}
	}
	if !found {
		t.Error("item 1 should match via keyword containment")
	}
}

func TestSearch_FullQuestionSubstring(t *testing.T) {
	s := NewSearch(testCorpus())

	matches := s.Top("free trial", 3)
	if len(matches) == 0 {
		t.Fatal("expected matches")
	}
	top := matches[0]
	if top.Item.ID != "2" {
		t.Fatalf("expected item 2 first, got %s", top.Item.ID)
	}
	// question contains query (+10), keyword "free trial" in query (+5),
	// and both tokens appear in question/answer/keywords (+2 each).
	if top.Score < 10 {
		t.Errorf("question-substring match must score at least 10, got %d", top.Score)
	}
}

func TestSearch_Ordering(t *testing.T) {
	s := NewSearch(testCorpus())

	matches := s.Top("speakgenie games and quizzes", 3)
	for i := 1; i < len(matches); i++ {
		if matches[i-1].Score < matches[i].Score {
			t.Errorf("matches not sorted: score[%d]=%d < score[%d]=%d",
				i-1, matches[i-1].Score, i, matches[i].Score)
		}
	}
	for _, m := range matches {
		if m.Score <= 0 {
			t.Errorf("match with non-positive score %d returned", m.Score)
		}
	}
}

func TestSearch_Limit(t *testing.T) {
	s := NewSearch(testCorpus())

	matches := s.Top("speakgenie free trial games", 1)
	if len(matches) > 1 {
		t.Errorf("expected at most 1 match, got %d", len(matches))
	}
}

func TestSearch_NoMatch(t *testing.T) {
	s := NewSearch(testCorpus())

	if got := s.Top("zzz-unrelated-zzz", 3); len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}

func TestSearch_ShortTokensIgnored(t *testing.T) {
	s := NewSearch(testCorpus())

	// "is" and "a" are two runes or fewer and must not contribute token
	// scores; the whole-query substring check still applies.
	withShort := s.Top("is a games", 3)
	justGames := s.Top("games", 3)

	if len(withShort) == 0 || len(justGames) == 0 {
		t.Fatal("expected matches in both queries")
	}
	if withShort[0].Item.ID != justGames[0].Item.ID {
		t.Errorf("short tokens changed the top match: %s vs %s",
			withShort[0].Item.ID, justGames[0].Item.ID)
	}
}

func TestSearch_StableTies(t *testing.T) {
	corpus := NewCorpus([]core.KnowledgeItem{
		{ID: "a", Question: "alpha games", Answer: "x", Keywords: nil},
		{ID: "b", Question: "beta games", Answer: "y", Keywords: nil},
	})
	s := NewSearch(corpus)

	matches := s.Top("games", 2)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Item.ID != "a" || matches[1].Item.ID != "b" {
		t.Errorf("tie not broken by corpus order: got %s, %s",
			matches[0].Item.ID, matches[1].Item.ID)
	}
}

func TestSearch_SnippetFormat(t *testing.T) {
	s := NewSearch(testCorpus())

	snippets := s.Relevant("free trial", 1)
	if len(snippets) != 1 {
		t.Fatalf("expected 1 snippet, got %d", len(snippets))
	}
	want := "Q: Is there a free trial?\nA: Yes! Every new user gets a 7-day free trial."
	if snippets[0] != want {
		t.Errorf("snippet format mismatch:\ngot:  %q\nwant: %q", snippets[0], want)
	}
}

func TestExactMatch(t *testing.T) {
	s := NewSearch(testCorpus())

	item, ok := s.ExactMatch("What is SpeakGenie?")
	if !ok {
		t.Fatal("expected exact question match")
	}
	if item.ID != "1" {
		t.Errorf("expected item 1, got %s", item.ID)
	}

	// Case-insensitive.
	if _, ok := s.ExactMatch("what is speakgenie?"); !ok {
		t.Error("exact match should be case-insensitive")
	}

	// Exact keyword membership, not substring.
	if _, ok := s.ExactMatch("speakgenie"); !ok {
		t.Error("expected exact keyword match")
	}
	if _, ok := s.ExactMatch("speak"); ok {
		t.Error("keyword prefix must not be an exact match")
	}

	if _, ok := s.ExactMatch("zzz-no-match"); ok {
		t.Error("expected no match")
	}
}
