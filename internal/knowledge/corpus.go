package knowledge

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/speakgenie/genie-support/internal/core"
	"github.com/speakgenie/genie-support/pkg/log"
	"gopkg.in/yaml.v3"
)

//go:embed corpus.yaml
var corpusYAML []byte

// Corpus is the static support knowledge base. It is loaded once at startup
// and immutable afterwards. Item ids are non-authoritative (the reference
// data repeats one), so all lookups go through content matching.
type Corpus struct {
	items []core.KnowledgeItem
}

// Load parses the embedded corpus. Duplicate ids are logged and kept.
func Load(ctx context.Context) (*Corpus, error) {
	c, err := Parse(corpusYAML)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(c.items))
	for _, item := range c.items {
		if seen[item.ID] {
			log.FromCtx(ctx).Warn().Str("id", item.ID).Msg("duplicate knowledge item id")
		}
		seen[item.ID] = true
	}

	log.FromCtx(ctx).Debug().Int("items", len(c.items)).Msg("knowledge corpus loaded")
	return c, nil
}

// Parse builds a corpus from a YAML document.
func Parse(data []byte) (*Corpus, error) {
	var doc struct {
		Items []core.KnowledgeItem `yaml:"items"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse knowledge corpus: %w", err)
	}
	if len(doc.Items) == 0 {
		return nil, fmt.Errorf("knowledge corpus is empty")
	}
	return &Corpus{items: doc.Items}, nil
}

// NewCorpus wraps an in-memory item list. Used by tests and tooling.
func NewCorpus(items []core.KnowledgeItem) *Corpus {
	return &Corpus{items: items}
}

// Items returns the corpus entries in document order.
func (c *Corpus) Items() []core.KnowledgeItem {
	return c.items
}

func (c *Corpus) Len() int {
	return len(c.items)
}
