package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taiwoajasa245/divine-answers/internal/ask"
	"github.com/taiwoajasa245/divine-answers/internal/guidance"
	"github.com/taiwoajasa245/divine-answers/internal/relayclient"
	"github.com/taiwoajasa245/divine-answers/internal/speech"
)

var (
	askBook  string
	askVoice bool
	askAudio string
	askSpeak bool
	askSave  bool
	askRelay string
)

var askCmd = &cobra.Command{
	Use:   "ask [concern]",
	Short: "Ask for guidance on a personal concern",
	Long: `Ask for guidance on a personal concern.

The concern is taken from the arguments, from --voice, or read from stdin.
Books: Bible, Quran, Bhagavad Gita, Compare All.`,
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askBook, "book", "b", string(guidance.DefaultBook), "sacred text to draw from")
	askCmd.Flags().BoolVar(&askVoice, "voice", false, "dictate the concern from a recorded clip")
	askCmd.Flags().StringVar(&askAudio, "audio", "", "audio clip for --voice (default $SPEECH_AUDIO_FILE)")
	askCmd.Flags().BoolVar(&askSpeak, "speak", false, "read the answer aloud")
	askCmd.Flags().BoolVar(&askSave, "save", false, "save the answer to favorites")
	askCmd.Flags().StringVar(&askRelay, "relay", "", "relay URL (default $RELAY_URL)")
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	relayURL := askRelay
	if relayURL == "" {
		relayURL = a.cfg.RelayURL
	}

	session := ask.NewSession(
		relayclient.New(relayURL),
		a.favorites,
		a.speechFor(ctx, askAudio),
		a.toasts,
	)
	defer session.Close()

	session.SetBook(guidance.Book(askBook))

	if err := takeConcern(ctx, session, askVoice, args, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		return err
	}

	resp, err := session.Submit(ctx)
	if err != nil {
		switch {
		case errors.Is(err, ask.ErrEmptyProblem):
			return nil
		case errors.Is(err, ask.ErrBusy), errors.Is(err, ask.ErrClosed):
			return err
		}
		return shown(err)
	}
	printResponse(cmd.OutOrStdout(), resp)

	if askSpeak {
		if err := session.Speak(ctx); err != nil && !errors.Is(err, speech.ErrUnsupported) {
			return err
		}
	}
	if askSave {
		if _, err := session.Save(ctx); err != nil {
			return shown(err)
		}
	}
	return nil
}

// takeConcern fills the session problem from voice, then args, then stdin.
// A failed or unsupported dictation has already been reported and falls
// through to the typed concern.
func takeConcern(ctx context.Context, session *ask.Session, voice bool, args []string, in io.Reader, out io.Writer) error {
	if voice {
		err := session.VoiceInput(ctx)
		if err == nil {
			fmt.Fprintf(out, "%s %s\n", mutedStyle.Render("You said:"), session.Problem())
			return nil
		}
		if errors.Is(err, ask.ErrBusy) || errors.Is(err, ask.ErrClosed) {
			return err
		}
	}

	if len(args) > 0 {
		session.SetProblem(strings.Join(args, " "))
		return nil
	}
	problem, err := readProblem(in)
	if err != nil {
		return err
	}
	session.SetProblem(problem)
	return nil
}

func readProblem(r io.Reader) (string, error) {
	data, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return "", fmt.Errorf("failed to read concern: %w", err)
	}
	return string(data), nil
}

func printResponse(out io.Writer, resp *guidance.Response) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, headingStyle.Render("Sacred Verse"))
	fmt.Fprintln(out, verseStyle.Render(resp.Verse))
	if resp.Explanation != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, headingStyle.Render("Divine Guidance"))
		fmt.Fprintln(out, resp.Explanation)
	}
	fmt.Fprintln(out)
}
