package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/soneb/vamp/internal/spotify/client"
)

var playOffset int

var playCmd = &cobra.Command{
	Use:   "play [uri...]",
	Short: "Start or resume playback",
	Long: `Start playback of one or more Spotify URIs.
Without arguments, resumes current playback.

A single track URI plays that track; an album or playlist URI plays as a
context starting at --offset; an artist URI plays the artist's context.
Multiple URIs play as an explicit sequence starting at --offset.

Examples:
  vamp play                                  # Resume playback
  vamp play spotify:track:4uLU6hMCjMI75M1A2  # Play a track
  vamp play spotify:album:6dVIqQ8qmQ5GBnJ9s --offset 3
  vamp play spotify:track:aaa spotify:track:bbb --offset 1`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&playOffset, "offset", 0, "Start position within the target")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	c, err := apiClient()
	if err != nil {
		return err
	}

	var opts *client.PlayOptions
	switch len(args) {
	case 0:
		// Bare resume.
	case 1:
		opts = client.PlayOptionsFor(args[0], playOffset)
	default:
		opts = &client.PlayOptions{
			URIs:   args,
			Offset: &client.PlayOffset{Position: playOffset},
		}
	}

	if err := c.Play(ctx, "", opts); err != nil {
		return fmt.Errorf("failed to start playback: %w", err)
	}

	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]string{"status": "playing"})
	} else {
		fmt.Println("▶ Playing")
	}
	return nil
}
