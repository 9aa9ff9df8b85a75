// Package cmd implements the command-line interface for anidex.
package cmd

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/anidex-cli/anidex/anime"
	"github.com/anidex-cli/anidex/filesystem"
	"github.com/anidex-cli/anidex/inline"
	"github.com/anidex-cli/anidex/query"
	"github.com/anidex-cli/anidex/util"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("query", "q", "", "The search query to execute; the cache is listed when empty")
	inlineCmd.Flags().StringP("anime", "a", "", "Criteria for selecting a specific anime from the results")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().BoolP("trailer", "t", false, "Include the classified trailer in the output")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
}

// inlineCmd executes the application in non-interactive, scriptable inline mode.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Execute the application in non-interactive, scriptable inline mode",
	Long: `Search the catalog, or list the cache, and print the result for scripts.

Anime selectors:
  first - first anime in the list
  last - last anime in the list
  [number] - select anime by index (starting from 0)
  exact:[title] - select anime by its exact title

When the anime selector is omitted all anime are printed.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			writer io.Writer = os.Stdout
			err    error
		)

		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer util.Ignore(file.Close)
			writer = file
		}

		animePicker := mo.None[inline.AnimePicker]()
		if animeFlag := lo.Must(cmd.Flags().GetString("anime")); animeFlag != "" {
			fn, err := inline.ParseAnimePicker(animeFlag)
			handleErr(err)
			animePicker = mo.Some(fn)
		}

		app, err := openApp()
		handleErr(err)
		defer app.Close()

		options := &inline.Options{
			Out:            writer,
			Catalog:        app.repo,
			Cached:         app.store.All,
			Json:           lo.Must(cmd.Flags().GetBool("json")),
			Query:          lo.Must(cmd.Flags().GetString("query")),
			AnimePicker:    animePicker,
			IncludeTrailer: lo.Must(cmd.Flags().GetBool("trailer")),
		}

		handleErr(inline.Run(cmd.Context(), options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)

	inlineSchemaCmd.Flags().BoolP("anime", "a", false, "Generate the JSON Schema for a single cached anime record")
}

// inlineSchemaCmd generates JSON schemas for structured inline mode outputs.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for structured inline mode outputs",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "anime", "source", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		var schema *jsonschema.Schema

		switch {
		case lo.Must(cmd.Flags().GetBool("anime")):
			schema = reflector.Reflect(&anime.Anime{})
		default:
			schema = reflector.Reflect(&inline.Output{})
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
