package speech

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// espeak and say both default to roughly this many words per minute
const baseWordsPerMinute = 175

var knownCommands = []string{"espeak-ng", "espeak", "say"}

type runFunc func(ctx context.Context, name string, args ...string) error

// CommandSynthesizer speaks through a local text-to-speech program.
type CommandSynthesizer struct {
	command string
	run     runFunc
}

// NewCommandSynthesizer uses command, or the first known TTS program on
// PATH when command is empty. It returns nil when nothing is available.
func NewCommandSynthesizer(command string) *CommandSynthesizer {
	if command == "" {
		for _, c := range knownCommands {
			if p, err := exec.LookPath(c); err == nil {
				command = p
				break
			}
		}
	}
	if command == "" {
		return nil
	}
	return &CommandSynthesizer{command: command, run: runCommand}
}

func runCommand(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w: %s", filepath.Base(name), err, strings.TrimSpace(string(out)))
	}
	return nil
}

func (c *CommandSynthesizer) Speak(ctx context.Context, u Utterance) error {
	if strings.TrimSpace(u.Text) == "" {
		return nil
	}
	return c.run(ctx, c.command, c.args(u)...)
}

// The text always follows "--" so replies starting with a bullet are not
// read as options.
func (c *CommandSynthesizer) args(u Utterance) []string {
	rate := u.Rate
	if rate <= 0 {
		rate = 1
	}
	wpm := strconv.Itoa(int(baseWordsPerMinute * rate))

	switch filepath.Base(c.command) {
	case "say":
		return []string{"-r", wpm, "--", u.Text}
	default:
		pitch := u.Pitch
		if pitch <= 0 {
			pitch = 1
		}
		// espeak pitch is 0-99 with 50 as normal
		return []string{"-s", wpm, "-p", strconv.Itoa(int(50 * pitch)), "--", u.Text}
	}
}
