package cmd

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vireo-player/vireo/color"
	"github.com/vireo-player/vireo/history"
	"github.com/vireo-player/vireo/icon"
	"github.com/vireo-player/vireo/style"
	"github.com/vireo-player/vireo/util"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolP("clear", "x", false, "Forget the saved session")
	historyCmd.Flags().BoolP("uris", "u", false, "Print only the URIs, one per line")
	historyCmd.MarkFlagsMutuallyExclusive("clear", "uris")
	historyCmd.SetOut(os.Stdout)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the playlist saved by the previous run",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("clear")) {
			handleErr(history.Clear())
			cmd.Printf("%s saved session cleared\n", icon.Get(icon.Success))
			return
		}

		saved, err := history.Get()
		handleErr(err)

		if saved == nil {
			cmd.Println(style.Faint("No saved session"))
			return
		}

		if lo.Must(cmd.Flags().GetBool("uris")) {
			for _, uri := range saved.URIs() {
				cmd.Println(uri)
			}
			return
		}

		cmd.Printf(
			"%s %s %s\n\n",
			style.Fg(color.Purple)(icon.Get(icon.Playlist)),
			style.Bold(util.Quantify(len(saved.Entries), "entry", "entries")),
			style.Faint("saved "+saved.SavedAt.Format("2006-01-02 15:04")),
		)

		for i, entry := range saved.Entries {
			line := fmt.Sprintf("%3d  %s", i+1, entry.Name)
			if i == saved.Current {
				line = style.Fg(color.Yellow)(fmt.Sprintf("%s  %s", line, icon.Get(icon.Current)+" "+util.FormatDuration(saved.Position)))
			}
			cmd.Println(line)
		}
	},
}
