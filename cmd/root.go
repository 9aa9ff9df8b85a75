// Package cmd implements the command-line interface for anidex.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/anidex-cli/anidex/color"
	"github.com/anidex-cli/anidex/constant"
	"github.com/anidex-cli/anidex/icon"
	"github.com/anidex-cli/anidex/key"
	"github.com/anidex-cli/anidex/log"
	"github.com/anidex-cli/anidex/repository"
	"github.com/anidex-cli/anidex/style"
	"github.com/anidex-cli/anidex/tui"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().Bool("offline", false, "Never contact the catalog, serve only cached data")
	lo.Must0(viper.BindPFlag(key.NetworkOffline, rootCmd.PersistentFlags().Lookup("offline")))

	rootCmd.Flags().BoolP("favorites", "f", false, "Open on the favorites view")
	rootCmd.Flags().BoolP("no-refresh", "n", false, "Do not refresh the catalog on start")
}

// rootCmd launches the interactive browser.
var rootCmd = &cobra.Command{
	Use:   constant.Anidex,
	Short: "An offline-first terminal browser for the anime catalog",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - An offline-first terminal browser for the anime catalog"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		app, err := openApp()
		handleErr(err)
		defer app.Close()

		options := tui.Options{
			Favorites: lo.Must(cmd.Flags().GetBool("favorites")),
			NoRefresh: lo.Must(cmd.Flags().GetBool("no-refresh")),
		}
		handleErr(tui.Run(cmd.Context(), app.repo, &options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err == nil {
		return
	}

	log.Error(err)

	msg := strings.Trim(err.Error(), " \n")
	var repoErr *repository.Error
	if errors.As(err, &repoErr) && repoErr.Kind == repository.Connectivity {
		msg = style.Fg(color.Yellow)(icon.Get(icon.Offline)) + " " + msg
	}

	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), msg)
	os.Exit(1)
}
