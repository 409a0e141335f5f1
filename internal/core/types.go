package core

import "time"

const (
	GenieName      = "Genie Support"
	GenieUserAgent = "GenieSupport/0.1"
	GenieVersion   = "0.1.0"

	// SupportEmail is the human-support contact surfaced in prompts,
	// apologies and escalation messages.
	SupportEmail = "hello@speakgenie.com"
)

// Chat roles as sent to the model provider.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Input modality of a transcript entry. Records how the text was captured,
// not how it is rendered.
const (
	InputText  = "text"
	InputVoice = "voice"
)

// User profile types. Only parent and kid are selectable in the widget;
// teacher exists for parity with the account model.
const (
	UserParent  = "parent"
	UserKid     = "kid"
	UserTeacher = "teacher"
)

// Tutor accents.
const (
	AccentIndian   = "indian"
	AccentAmerican = "american"
	AccentBritish  = "british"
)

// Message is a single entry of the outbound model payload.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatMessage is one transcript entry of a support session. Entries are
// created by the orchestrator and never mutated afterwards.
type ChatMessage struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Sender    string    `json:"sender"` // RoleUser or RoleAssistant
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"` // InputText or InputVoice
	AudioURL  string    `json:"audioUrl,omitempty"`
}

// Preferences are the mutable per-session user settings.
type Preferences struct {
	VoiceEnabled bool   `json:"voiceEnabled"`
	Accent       string `json:"accent"`
	Language     string `json:"language"`
}

// UserProfile describes who is talking to the support agent.
type UserProfile struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Age         int         `json:"age,omitempty"`
	Preferences Preferences `json:"preferences"`
}

// KnowledgeItem is one entry of the static support knowledge base.
type KnowledgeItem struct {
	ID       string   `yaml:"id" json:"id"`
	Question string   `yaml:"question" json:"question"`
	Answer   string   `yaml:"answer" json:"answer"`
	Category string   `yaml:"category" json:"category"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}
