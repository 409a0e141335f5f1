// Package speech models voice capture and playback as narrow capability
// interfaces so the orchestrator never touches a concrete speech stack.
// Browser deployments back them with the Web Speech API; server deployments
// can plug in a hosted speech service or the no-op implementations here.
package speech

import (
	"context"
	"errors"
	"sync"

	"github.com/speakgenie/genie-support/pkg/log"
)

// ErrNotSupported is returned when the environment has no speech capability.
var ErrNotSupported = errors.New("speech is not supported in this environment")

// Benign playback terminations. Replacing or stopping an utterance on
// purpose is a completion, not a failure.
var (
	ErrInterrupted = errors.New("speech interrupted")
	ErrCanceled    = errors.New("speech canceled")
)

// IsBenign reports whether a synthesis error resulted from intentional
// playback replacement and should be treated as a normal completion.
func IsBenign(err error) bool {
	return errors.Is(err, ErrInterrupted) || errors.Is(err, ErrCanceled)
}

// NoopRecognizer is the server-side stand-in for speech capture.
type NoopRecognizer struct{}

func NewNoopRecognizer() *NoopRecognizer { return &NoopRecognizer{} }

func (*NoopRecognizer) Supported() bool { return false }

func (*NoopRecognizer) Listen(ctx context.Context) (string, error) {
	return "", ErrNotSupported
}

func (*NoopRecognizer) Stop() {}

// NoopSynthesizer swallows playback requests. It still tracks the
// one-in-flight invariant so orchestrator behavior stays observable.
type NoopSynthesizer struct {
	mu       sync.Mutex
	speaking bool
}

func NewNoopSynthesizer() *NoopSynthesizer { return &NoopSynthesizer{} }

func (*NoopSynthesizer) Supported() bool { return false }

func (s *NoopSynthesizer) Speak(ctx context.Context, text, accent, language string) error {
	s.mu.Lock()
	s.speaking = false // nothing actually plays
	s.mu.Unlock()

	log.FromCtx(ctx).Debug().
		Strs("voice_tags", VoiceTags(accent, language, text)).
		Int("chars", len(text)).
		Msg("speech playback skipped")
	return nil
}

// Stop is safe to call when nothing is playing.
func (s *NoopSynthesizer) Stop() {
	s.mu.Lock()
	s.speaking = false
	s.mu.Unlock()
}

func (s *NoopSynthesizer) Speaking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speaking
}
