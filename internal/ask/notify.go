package ask

import "github.com/taiwoajasa245/divine-answers/internal/notify"

var (
	toastUnsupportedVoice = notify.Toast{Title: "Not supported", Description: "Voice input is not supported on this device", Destructive: true}
	toastUnsupportedSpeak = notify.Toast{Title: "Not supported", Description: "Speech playback is not supported on this device", Destructive: true}
	toastListening        = notify.Toast{Title: "Listening...", Description: "Speak your concern"}
	toastRecognizeFailed  = notify.Toast{Title: "Error", Description: "Could not recognize speech", Destructive: true}
	toastEmptyInput       = notify.Toast{Title: "Empty input", Description: "Please share your concern", Destructive: true}
	toastReceived         = notify.Toast{Title: "Divine guidance received", Description: "Scroll down to see the wisdom"}
	toastSpeaking         = notify.Toast{Title: "Speaking...", Description: "Playing divine guidance"}
	toastSaved            = notify.Toast{Title: "Saved!", Description: "Added to your favorites"}
)

const fallbackFailure = "Failed to get guidance"

func errorToast(msg string) notify.Toast {
	if msg == "" {
		msg = fallbackFailure
	}
	return notify.Toast{Title: "Error", Description: msg, Destructive: true}
}
