// Package prompt assembles the system instruction sent as the first entry of
// every model request. The output blends a fixed persona, per-audience tone,
// per-locale language instructions, product facts, and retrieved knowledge.
// It is never shown to the end user.
package prompt

import (
	"fmt"
	"strings"

	"github.com/speakgenie/genie-support/internal/core"
)

// Apology is the only failure text that ever reaches the transcript. Raw
// provider errors stay in the logs.
const Apology = "I'm sorry, I'm having trouble responding right now. Please try again or contact our support team at " + core.SupportEmail + " for immediate assistance."

const promptTemplate = `You are a helpful AI customer support agent for SpeakGenie, an English learning app for kids aged 6-16.

IMPORTANT GUIDELINES:
1. Always use the provided knowledge base information when available
2. If you don't know something specific about SpeakGenie, say so and offer to escalate to human support
3. Keep responses concise but helpful
4. Use emojis appropriately to make responses engaging
5. %s
6. %s

SpeakGenie Key Info:
- English learning app for kids aged 6-16 (Grades 1-12)
- Features: AI tutor, peer calls, audio stories, games, grammar lessons
- Pricing: 7-day free trial, then ₹1,500/3 months, ₹2,400/6 months, ₹3,000/year
- Contact: hello@speakgenie.com
- Safe and supervised environment for children
%s
If the user's question cannot be answered with the available information, politely suggest escalating to human support.`

// Builder constructs system prompts. It is stateless and safe for
// concurrent use.
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// Build produces the full system prompt for a profile and the knowledge
// snippets retrieved for the current query. An empty snippet list omits the
// knowledge section entirely.
func (b *Builder) Build(profile core.UserProfile, snippets []string) string {
	knowledgeContext := ""
	if len(snippets) > 0 {
		knowledgeContext = fmt.Sprintf("\nRelevant information from SpeakGenie knowledge base:\n%s\n", strings.Join(snippets, "\n\n"))
	}

	return fmt.Sprintf(promptTemplate,
		ToneClause(profile.Type),
		LanguageClause(profile.Preferences.Language),
		knowledgeContext,
	)
}
