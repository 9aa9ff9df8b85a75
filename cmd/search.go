package cmd

import (
	"os"
	"strings"

	"github.com/anidex-cli/anidex/inline"
	"github.com/anidex-cli/anidex/query"
	"github.com/anidex-cli/anidex/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	searchCmd.Flags().BoolP("trailer", "t", false, "Include the trailer URL")
	searchCmd.SetOut(os.Stdout)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the online catalog",
	Args:  cobra.MinimumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		q := strings.Join(args, " ")

		app, err := openApp()
		handleErr(err)
		defer app.Close()

		animes, err := app.repo.Search(cmd.Context(), q)
		handleErr(err)

		asJson := lo.Must(cmd.Flags().GetBool("json"))
		if len(animes) == 0 && !asJson {
			cmd.Println(style.Faint("No results for " + q))
			return
		}

		handleErr(inline.Write(cmd.OutOrStdout(), q, animes, &inline.Options{
			Json:           asJson,
			IncludeTrailer: lo.Must(cmd.Flags().GetBool("trailer")),
		}))
	},
}
