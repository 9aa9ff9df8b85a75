package cmd

import (
	"fmt"
	"os"

	"github.com/anidex-cli/anidex/icon"
	"github.com/anidex-cli/anidex/inline"
	"github.com/anidex-cli/anidex/style"
	"github.com/anidex-cli/anidex/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolP("refresh", "r", false, "Refresh the catalog before listing")
	listCmd.Flags().BoolP("favorites", "f", false, "List only favorites")
	listCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	listCmd.Flags().BoolP("trailer", "t", false, "Include the trailer URL")
	listCmd.SetOut(os.Stdout)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List cached anime, best score first",
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		handleErr(err)
		defer app.Close()

		asJson := lo.Must(cmd.Flags().GetBool("json"))

		if lo.Must(cmd.Flags().GetBool("refresh")) {
			erase := util.PrintErasable(fmt.Sprintf("%s Refreshing catalog...", icon.Get(icon.Progress)))
			n, err := app.repo.Refresh(cmd.Context())
			erase()
			if err != nil {
				// Cached data is still listed below.
				_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), err)
			} else if !asJson {
				cmd.Printf("%s %s refreshed\n", icon.Get(icon.Success), util.Quantify(n, "anime", "anime"))
			}
		}

		load := app.store.All
		if lo.Must(cmd.Flags().GetBool("favorites")) {
			load = app.store.Favorites
		}

		animes, err := load()
		handleErr(err)

		if len(animes) == 0 && !asJson {
			cmd.Println(style.Faint("Nothing cached yet. Run with --refresh."))
			return
		}

		handleErr(inline.Write(cmd.OutOrStdout(), "", animes, &inline.Options{
			Json:           asJson,
			IncludeTrailer: lo.Must(cmd.Flags().GetBool("trailer")),
		}))

		if !asJson && util.IsTerminal() {
			total, err := app.store.Count()
			handleErr(err)
			cmd.Println(style.Faint(fmt.Sprintf("%d of %s", len(animes), util.Quantify(total, "cached anime", "cached anime"))))
		}
	},
}
