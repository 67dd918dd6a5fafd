package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taiwoajasa245/divine-answers/internal/favorites"
)

var favoritesCmd = &cobra.Command{
	Use:     "favorites",
	Aliases: []string{"fav"},
	Short:   "List or delete saved guidance",
	RunE:    runFavoritesList,
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved guidance, most recent first",
	RunE:  runFavoritesList,
}

var favoritesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one saved guidance by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", args[0], err)
		}
		view := favorites.NewView(a.favorites, a.toasts)
		if err := view.Delete(cmd.Context(), id); err != nil {
			return err
		}
		printFavorites(cmd.OutOrStdout(), view.Items())
		return nil
	},
}

func init() {
	favoritesCmd.AddCommand(favoritesListCmd, favoritesDeleteCmd)
}

func runFavoritesList(cmd *cobra.Command, args []string) error {
	view := favorites.NewView(a.favorites, a.toasts)
	items, err := view.Load(cmd.Context())
	if err != nil {
		return err
	}
	printFavorites(cmd.OutOrStdout(), items)
	return nil
}

func printFavorites(out io.Writer, items []favorites.Favorite) {
	if len(items) == 0 {
		fmt.Fprintln(out, mutedStyle.Render("No favorites yet. Save meaningful verses from the ask command with --save."))
		return
	}
	for _, f := range items {
		fmt.Fprintf(out, "%s  %s  %s\n",
			titleStyle.Render(f.Book),
			mutedStyle.Render(f.SavedAt.Local().Format("Jan 2, 2006")),
			mutedStyle.Render("#"+strconv.FormatInt(f.ID, 10)))
		fmt.Fprintf(out, "%s %s\n", mutedStyle.Render("Your concern:"), f.Problem)
		fmt.Fprintln(out, verseStyle.Render(f.Verse))
		if f.Explanation != "" {
			fmt.Fprintln(out, f.Explanation)
		}
		fmt.Fprintln(out)
	}
}
