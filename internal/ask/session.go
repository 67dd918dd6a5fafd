package ask

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/taiwoajasa245/divine-answers/internal/favorites"
	"github.com/taiwoajasa245/divine-answers/internal/guidance"
	"github.com/taiwoajasa245/divine-answers/internal/notify"
	"github.com/taiwoajasa245/divine-answers/internal/speech"
)

var (
	ErrEmptyProblem = errors.New("problem is empty")
	ErrBusy         = errors.New("a request is already in flight")
	ErrClosed       = errors.New("session closed")
)

type Relay interface {
	Guidance(ctx context.Context, problem string, book guidance.Book) (*guidance.Response, error)
}

type FavoriteSaver interface {
	Add(ctx context.Context, fav favorites.Favorite) (favorites.Favorite, error)
}

// Session is the state behind the ask view. Loading serialises submissions
// and a closed session never commits late results.
type Session struct {
	relay     Relay
	favorites FavoriteSaver
	speech    speech.Capability
	notify    notify.Notifier

	mu        sync.Mutex
	problem   string
	book      guidance.Book
	loading   bool
	listening bool
	response  *guidance.Response
	closed    bool
}

func NewSession(relay Relay, favs FavoriteSaver, sp speech.Capability, n notify.Notifier) *Session {
	if sp == nil {
		sp = speech.Unsupported{}
	}
	if n == nil {
		n = notify.Discard
	}
	return &Session{
		relay:     relay,
		favorites: favs,
		speech:    sp,
		notify:    n,
		book:      guidance.DefaultBook,
	}
}

func (s *Session) SetProblem(p string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.problem = p
}

func (s *Session) SetBook(b guidance.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.book = b
}

func (s *Session) Problem() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.problem
}

func (s *Session) Book() guidance.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book
}

func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Session) Listening() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listening
}

// Response returns the last guidance, or nil.
func (s *Session) Response() *guidance.Response {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.response
}

// Close marks the view as gone. In-flight work still finishes but its
// result is dropped.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// VoiceInput replaces the problem text with one recognised utterance.
func (s *Session) VoiceInput(ctx context.Context) error {
	if !s.speech.CanListen() {
		s.notify.Notify(toastUnsupportedVoice)
		return speech.ErrUnsupported
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.listening {
		s.mu.Unlock()
		return ErrBusy
	}
	s.listening = true
	s.mu.Unlock()
	s.notify.Notify(toastListening)

	transcript, err := s.speech.Listen(ctx)

	s.mu.Lock()
	s.listening = false
	closed := s.closed
	if err == nil && !closed {
		s.problem = transcript
	}
	s.mu.Unlock()

	if err != nil {
		s.notify.Notify(toastRecognizeFailed)
		return fmt.Errorf("voice input: %w", err)
	}
	if closed {
		return ErrClosed
	}
	return nil
}

// Submit sends the current problem and book to the relay.
func (s *Session) Submit(ctx context.Context) (*guidance.Response, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrClosed
	}
	if s.loading {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	if strings.TrimSpace(s.problem) == "" {
		s.mu.Unlock()
		s.notify.Notify(toastEmptyInput)
		return nil, ErrEmptyProblem
	}
	problem, book := s.problem, s.book
	s.loading = true
	s.response = nil
	s.mu.Unlock()

	resp, err := s.relay.Guidance(ctx, problem, book)

	s.mu.Lock()
	s.loading = false
	if s.closed {
		s.mu.Unlock()
		return nil, ErrClosed
	}
	if err == nil {
		s.response = resp
	}
	s.mu.Unlock()

	if err != nil {
		s.notify.Notify(errorToast(err.Error()))
		return nil, err
	}
	s.notify.Notify(toastReceived)
	return resp, nil
}

// Speak reads the verse and explanation aloud. No-op without a response.
func (s *Session) Speak(ctx context.Context) error {
	resp := s.Response()
	if resp == nil {
		return nil
	}
	if !s.speech.CanSpeak() {
		s.notify.Notify(toastUnsupportedSpeak)
		return speech.ErrUnsupported
	}

	s.notify.Notify(toastSpeaking)
	return s.speech.Speak(ctx, speech.NewUtterance(resp.Verse+"\n\n"+resp.Explanation))
}

// Save stores the current response as a favorite. It returns nil, nil when
// there is nothing to save.
func (s *Session) Save(ctx context.Context) (*favorites.Favorite, error) {
	s.mu.Lock()
	resp, problem, book := s.response, s.problem, s.book
	s.mu.Unlock()
	if resp == nil {
		return nil, nil
	}

	fav, err := s.favorites.Add(ctx, favorites.Favorite{
		Book:        string(book),
		Problem:     problem,
		Verse:       resp.Verse,
		Explanation: resp.Explanation,
	})
	if err != nil {
		s.notify.Notify(errorToast(err.Error()))
		return nil, err
	}
	s.notify.Notify(toastSaved)
	return &fav, nil
}
