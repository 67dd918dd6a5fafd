package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/taiwoajasa245/divine-answers/internal/notify"
)

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("178"))
	destructiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	mutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	verseStyle       = lipgloss.NewStyle().Italic(true).PaddingLeft(2).
				BorderStyle(lipgloss.NormalBorder()).BorderLeft(true).
				BorderForeground(lipgloss.Color("178"))
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// toastPrinter renders notices on the terminal; destructive ones go to errOut.
type toastPrinter struct {
	out    io.Writer
	errOut io.Writer
}

func newToastPrinter(out, errOut io.Writer) *toastPrinter {
	return &toastPrinter{out: out, errOut: errOut}
}

func (p *toastPrinter) Notify(t notify.Toast) {
	if t.Destructive {
		fmt.Fprintf(p.errOut, "%s %s\n", destructiveStyle.Render(t.Title), t.Description)
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", titleStyle.Render(t.Title), mutedStyle.Render(t.Description))
}
