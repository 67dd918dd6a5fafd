// Package speech holds the optional voice capabilities of the client: speech
// recognition for dictating a concern and speech synthesis for reading the
// answer aloud. Either half may be missing.
package speech

import (
	"context"
	"errors"
)

const (
	DefaultRate  = 0.9
	DefaultPitch = 1.0
)

var ErrUnsupported = errors.New("speech capability not supported")

type Utterance struct {
	Text  string
	Rate  float64
	Pitch float64
}

// NewUtterance uses the slightly slowed default rate and default pitch.
func NewUtterance(text string) Utterance {
	return Utterance{Text: text, Rate: DefaultRate, Pitch: DefaultPitch}
}

// Recognizer captures a single final utterance.
type Recognizer interface {
	Recognize(ctx context.Context) (string, error)
}

type Synthesizer interface {
	Speak(ctx context.Context, u Utterance) error
}

type Capability interface {
	CanListen() bool
	Listen(ctx context.Context) (string, error)
	CanSpeak() bool
	Speak(ctx context.Context, u Utterance) error
}

// Unsupported is the capability of a device with no speech support.
type Unsupported struct{}

func (Unsupported) CanListen() bool { return false }
func (Unsupported) CanSpeak() bool  { return false }

func (Unsupported) Listen(ctx context.Context) (string, error) {
	return "", ErrUnsupported
}

func (Unsupported) Speak(ctx context.Context, u Utterance) error {
	return ErrUnsupported
}

// Device composes whichever halves are available.
type Device struct {
	Recognizer  Recognizer
	Synthesizer Synthesizer
}

func (d Device) CanListen() bool { return d.Recognizer != nil }
func (d Device) CanSpeak() bool  { return d.Synthesizer != nil }

func (d Device) Listen(ctx context.Context) (string, error) {
	if d.Recognizer == nil {
		return "", ErrUnsupported
	}
	return d.Recognizer.Recognize(ctx)
}

func (d Device) Speak(ctx context.Context, u Utterance) error {
	if d.Synthesizer == nil {
		return ErrUnsupported
	}
	return d.Synthesizer.Speak(ctx, u)
}
