// Package notify carries short user-facing notices from the views to
// whatever renders them.
package notify

// Toast is a short user-facing notice.
type Toast struct {
	Title       string
	Description string
	Destructive bool
}

type Notifier interface {
	Notify(t Toast)
}

// Func adapts a function to Notifier.
type Func func(Toast)

func (f Func) Notify(t Toast) { f(t) }

// Discard drops every notice.
var Discard Notifier = Func(func(Toast) {})

// Recorder keeps every notice, for tests.
type Recorder struct {
	Toasts []Toast
}

func (r *Recorder) Notify(t Toast) { r.Toasts = append(r.Toasts, t) }

// Last returns the most recent notice or a zero Toast.
func (r *Recorder) Last() Toast {
	if len(r.Toasts) == 0 {
		return Toast{}
	}
	return r.Toasts[len(r.Toasts)-1]
}
