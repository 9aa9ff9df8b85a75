// Package cmd implements the command-line interface for anidex.
package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/anidex-cli/anidex/filesystem"
	"github.com/anidex-cli/anidex/icon"
	"github.com/anidex-cli/anidex/query"
	"github.com/anidex-cli/anidex/util"
	"github.com/anidex-cli/anidex/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget defines an application artifact eligible for cleanup.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func(cmd *cobra.Command) error
}

var clearTargets = []clearTarget{
	{"cached catalog", "catalog", mo.Some("c"), func(cmd *cobra.Command) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()
		return app.repo.Clear(cmd.Context())
	}},
	{"queries history", "queries", mo.Some("q"), func(*cobra.Command) error {
		return query.Forget()
	}},
	{"log files", "logs", mo.Some("l"), func(*cobra.Command) error {
		return filesystem.Purge(where.Logs())
	}},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}

	clearCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

// clearCmd removes cached and generated application artifacts.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached and generated application artifacts",
	Run: func(cmd *cobra.Command, args []string) {
		selected := lo.Filter(clearTargets, func(t clearTarget, _ int) bool {
			return lo.Must(cmd.Flags().GetBool(t.argLong))
		})

		if len(selected) == 0 {
			handleErr(cmd.Help())
			return
		}

		if !lo.Must(cmd.Flags().GetBool("yes")) {
			names := lo.Map(selected, func(t clearTarget, _ int) string { return t.name })
			confirm := survey.Confirm{
				Message: fmt.Sprintf("Clear %s?", lo.Must(lo.Last(names))),
				Default: false,
			}
			if len(names) > 1 {
				confirm.Message = fmt.Sprintf("Clear %s?", util.Quantify(len(names), "target", "targets"))
				confirm.Help = fmt.Sprint(names)
			}

			var response bool
			handleErr(survey.AskOne(&confirm, &response))
			if !response {
				return
			}
		}

		for _, target := range selected {
			e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := target.clear(cmd)
			e()
			handleErr(err)
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}
	},
}
