package core

import "context"

// AIProvider generates an assistant reply for a full message list
// (system prompt first, then the windowed conversation).
type AIProvider interface {
	Chat(ctx context.Context, messages []Message) (Message, error)
}

// Recognizer captures a single spoken utterance and returns its transcript.
// At most one listen operation may be active; starting a new one must
// terminate the previous one. Stop is a no-op when nothing is listening.
type Recognizer interface {
	Supported() bool
	Listen(ctx context.Context) (string, error)
	Stop()
}

// Synthesizer plays back an utterance with a voice matching the accent and
// language preferences. At most one playback may be active; Speak replaces
// any running playback. Stop is a no-op when nothing is playing.
type Synthesizer interface {
	Supported() bool
	Speak(ctx context.Context, text, accent, language string) error
	Stop()
	Speaking() bool
}
