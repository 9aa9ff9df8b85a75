package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/anidex-cli/anidex/anime"
	"github.com/anidex-cli/anidex/color"
	"github.com/anidex-cli/anidex/icon"
	"github.com/anidex-cli/anidex/style"
	"github.com/anidex-cli/anidex/util"
	"github.com/anidex-cli/anidex/video"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	showCmd.SetOut(os.Stdout)
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show an anime, from the cache when possible",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		handleErr(err)

		app, err := openApp()
		handleErr(err)
		defer app.Close()

		a, err := app.repo.Details(cmd.Context(), id)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(a))
			return
		}

		width := 80
		if w, _, err := util.TerminalSize(); err == nil {
			width = util.Min(w, 100)
		}

		renderDetail(cmd.OutOrStdout(), a, width)
	},
}

func renderDetail(out io.Writer, a anime.Anime, width int) {
	title := style.Bold(a.Title)
	if a.Favorite {
		title += " " + style.Fg(color.Red)(icon.Get(icon.Favorite))
	}
	_, _ = fmt.Fprintln(out, title)

	row := func(label, value string) {
		_, _ = fmt.Fprintf(out, "  %s %s\n", style.Faint(fmt.Sprintf("%-9s", label)), value)
	}

	row("ID", fmt.Sprint(a.ID))
	if a.Score != nil {
		row("Score", style.Score(*a.Score))
	}
	if a.Episodes != nil {
		row("Episodes", fmt.Sprint(*a.Episodes))
	}
	if a.Status != nil {
		row("Status", style.Fg(color.ForStatus(*a.Status))(*a.Status))
	}
	if len(a.Genres) > 0 {
		row("Genres", a.GenreList())
	}
	if a.HasTrailer() {
		src := video.Classify(*a.TrailerURL)
		row("Trailer", fmt.Sprintf("%s %s", src.WatchURL(), style.Faint("("+src.Kind.String()+")")))
	}

	if a.Synopsis != nil {
		_, _ = fmt.Fprintln(out)
		wrapped := wordwrap.String(*a.Synopsis, width-2)
		for _, line := range strings.Split(wrapped, "\n") {
			_, _ = fmt.Fprintln(out, "  "+line)
		}
	}
}
