package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var playlistsTracks bool

var playlistsCmd = &cobra.Command{
	Use:   "playlists",
	Short: "List your playlists",
	Long: `Fetches all of your playlists with their tracks, plus a "Your Music"
entry built from your saved tracks, always listed first.`,
	RunE: runPlaylists,
}

func init() {
	playlistsCmd.Flags().BoolVar(&playlistsTracks, "tracks", false, "List every track of every playlist")
	rootCmd.AddCommand(playlistsCmd)
}

func runPlaylists(cmd *cobra.Command, args []string) error {
	c, err := apiClient()
	if err != nil {
		return err
	}

	playlists, err := c.FetchAllPlaylists(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch playlists: %w", err)
	}

	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(playlists)
	}

	table := NewTable("NAME", "TRACKS")
	for _, p := range playlists {
		table.Row(p.Name, humanize.Comma(int64(p.Len())))
	}
	table.Flush()

	if playlistsTracks {
		for _, p := range playlists {
			fmt.Printf("\n%s\n", p.Name)
			for i, t := range p.Tracks {
				fmt.Printf("  %2d. %s - %s (%s)\n",
					i+1,
					TruncateString(t.Name, 40),
					TruncateString(strings.Join(t.Artists, ", "), 30),
					FormatDuration(t.DurationMS/1000))
			}
		}
	}

	return nil
}
