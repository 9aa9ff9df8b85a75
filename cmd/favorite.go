package cmd

import (
	"os"

	"github.com/anidex-cli/anidex/color"
	"github.com/anidex-cli/anidex/icon"
	"github.com/anidex-cli/anidex/style"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(favoriteCmd)
	favoriteCmd.SetOut(os.Stdout)
}

var favoriteCmd = &cobra.Command{
	Use:     "favorite <id>",
	Short:   "Toggle the favorite flag of a cached anime",
	Aliases: []string{"fav"},
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		handleErr(err)

		app, err := openApp()
		handleErr(err)
		defer app.Close()

		favorite, err := app.repo.ToggleFavorite(cmd.Context(), id)
		handleErr(err)

		verb := "removed from"
		if favorite {
			verb = "added to"
		}

		cmd.Printf(
			"%s %s %s favorites\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(args[0]),
			verb,
		)
	},
}
