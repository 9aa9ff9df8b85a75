package cmd

import (
	"encoding/json"
	"os"

	"github.com/anidex-cli/anidex/color"
	"github.com/anidex-cli/anidex/style"
	"github.com/anidex-cli/anidex/video"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	classifyCmd.Flags().BoolP("extensions", "e", false, "List the file extensions classified as direct video with their MIME types")
	classifyCmd.SetOut(os.Stdout)
}

var classifyCmd = &cobra.Command{
	Use:   "classify <url>",
	Short: "Classify a video URL as YouTube, direct or invalid",
	Args: func(cmd *cobra.Command, args []string) error {
		if lo.Must(cmd.Flags().GetBool("extensions")) {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("extensions")) {
			for _, ext := range video.Extensions() {
				cmd.Printf("%-5s %s\n", ext, video.MimeType("file."+ext))
			}
			return
		}

		src := video.Classify(args[0])

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(struct {
				video.Source
				MimeType string `json:"mime_type,omitempty"`
			}{src, src.MimeType()}))
			return
		}

		label := style.New().Bold(true).Foreground(color.Purple).Render
		cmd.Println(label("kind"), src.Kind)

		switch src.Kind {
		case video.YouTube:
			cmd.Println(label("id"), src.VideoID)
			cmd.Println(label("watch"), src.WatchURL())
		case video.Direct:
			cmd.Println(label("url"), src.URL)
			cmd.Println(label("mime"), src.MimeType())
		}
	},
}
