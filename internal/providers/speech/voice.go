package speech

import (
	"strings"
	"unicode"

	"github.com/speakgenie/genie-support/internal/core"
)

// Voice selection is table-driven: accent and session language map to an
// ordered BCP-47 tag preference list a synthesizer implementation matches
// against its installed voices.

var accentTags = map[string][]string{
	core.AccentIndian:   {"hi-IN", "en-IN", "hi"},
	core.AccentAmerican: {"en-US"},
	core.AccentBritish:  {"en-GB", "en-UK"},
}

var languageTags = map[string][]string{
	"hindi":      {"hi-IN", "hi"},
	"bengali":    {"bn-IN", "bn"},
	"telugu":     {"te-IN", "te"},
	"marathi":    {"mr-IN", "mr"},
	"tamil":      {"ta-IN", "ta"},
	"gujarati":   {"gu-IN", "gu"},
	"kannada":    {"kn-IN", "kn"},
	"malayalam":  {"ml-IN", "ml"},
	"punjabi":    {"pa-IN", "pa"},
	"odia":       {"or-IN", "or"},
	"assamese":   {"as-IN", "as"},
	"bhojpuri":   {"hi-IN", "hi"},
	"rajasthani": {"hi-IN", "hi"},
}

// scriptTags maps Unicode script names of Indian languages to voice tags,
// used when the session language does not describe the reply text.
var scriptTags = []struct {
	script *unicode.RangeTable
	tags   []string
}{
	{unicode.Devanagari, []string{"hi-IN", "hi"}},
	{unicode.Bengali, []string{"bn-IN", "bn"}},
	{unicode.Telugu, []string{"te-IN", "te"}},
	{unicode.Tamil, []string{"ta-IN", "ta"}},
	{unicode.Gujarati, []string{"gu-IN", "gu"}},
	{unicode.Kannada, []string{"kn-IN", "kn"}},
	{unicode.Malayalam, []string{"ml-IN", "ml"}},
	{unicode.Gurmukhi, []string{"pa-IN", "pa"}},
	{unicode.Oriya, []string{"or-IN", "or"}},
}

// VoiceTags returns the ordered voice-tag preferences for an utterance. For
// the Indian accent, an explicit Indian language wins, then the script the
// text is written in; the accent's defaults follow. English voices close the
// list as a final fallback.
func VoiceTags(accent, language, text string) []string {
	var tags []string

	if accent == core.AccentIndian {
		if langTags, ok := languageTags[language]; ok {
			tags = append(tags, langTags...)
		} else if scripted := detectScriptTags(text); scripted != nil {
			tags = append(tags, scripted...)
		}
	}

	accTags, ok := accentTags[accent]
	if !ok {
		accTags = []string{"en-US"}
	}
	tags = append(tags, accTags...)
	tags = append(tags, "en")

	return dedupe(tags)
}

func detectScriptTags(text string) []string {
	for _, r := range text {
		for _, entry := range scriptTags {
			if unicode.Is(entry.script, r) {
				return entry.tags
			}
		}
	}
	return nil
}

func dedupe(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := tags[:0]
	for _, tag := range tags {
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tag)
	}
	return out
}
