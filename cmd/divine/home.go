package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taiwoajasa245/divine-answers/internal/home"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show a random quote from the sacred texts",
	RunE:  runHome,
}

func runHome(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headingStyle.Render("Welcome to Divine Answers"))
	fmt.Fprintln(out, mutedStyle.Render("Share your concerns and discover timeless teachings that illuminate your path."))
	fmt.Fprintln(out)
	fmt.Fprintln(out, titleStyle.Render("Daily Divine Quote"))
	fmt.Fprintln(out, verseStyle.Render(home.Random(nil).String()))
	return nil
}
