package conv

import (
	"strings"
	"testing"
)

func TestMarkdownToTelegramHTML(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantAbsent   []string
	}{
		{
			name:         "bold and italic survive",
			input:        "**Genie** is _here_ to help",
			wantContains: []string{"<strong>Genie</strong>", "<em>here</em>"},
		},
		{
			name:         "disallowed tags are stripped",
			input:        "# Heading\n\nplain",
			wantContains: []string{"Heading", "plain"},
			wantAbsent:   []string{"<h1>"},
		},
		{
			name:         "emoji passes through",
			input:        "Yes 🎮! Kids can play word games.",
			wantContains: []string{"🎮"},
		},
		{
			name:         "devanagari passes through",
			input:        "आपका प्रश्न **अच्छा** है",
			wantContains: []string{"आपका प्रश्न", "<strong>अच्छा</strong>"},
		},
		{
			name:         "code blocks kept",
			input:        "try `restart`",
			wantContains: []string{"<code>restart</code>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MarkdownToTelegramHTML([]byte(tt.input))
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(got, absent) {
					t.Errorf("output should not contain %q:\n%s", absent, got)
				}
			}
		})
	}
}
