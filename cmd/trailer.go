package cmd

import (
	"fmt"
	"os"

	"github.com/anidex-cli/anidex/icon"
	"github.com/anidex-cli/anidex/player"
	"github.com/anidex-cli/anidex/video"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(trailerCmd)
	trailerCmd.SetOut(os.Stdout)
}

var trailerCmd = &cobra.Command{
	Use:   "trailer <id>",
	Short: "Play the trailer of an anime",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		handleErr(err)

		app, err := openApp()
		handleErr(err)
		defer app.Close()

		a, err := app.repo.Details(cmd.Context(), id)
		handleErr(err)

		if !a.HasTrailer() {
			handleErr(fmt.Errorf("%s has no trailer", a.Title))
		}

		src := video.Classify(*a.TrailerURL)
		handleErr(player.Play(src, a.Title))
		cmd.Printf("%s playing %s\n", icon.Get(icon.Trailer), src.WatchURL())
	},
}
