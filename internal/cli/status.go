package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soneb/vamp/internal/spotify/client"
	"github.com/soneb/vamp/internal/tui/styles"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current playback status",
	Long:  `Shows the current playback state of the active device.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	c, err := apiClient()
	if err != nil {
		return err
	}

	state, err := c.CurrentPlayback(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get playback state: %w", err)
	}

	if state == nil {
		if JSONOutput() {
			_ = json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
				"playing": false,
				"message": "No active playback",
			})
		} else {
			fmt.Println("No active playback")
		}
		return nil
	}

	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(state)
	}

	printStatus(state)
	return nil
}

func printStatus(state *client.PlaybackState) {
	icon := styles.StatusIcon(state.IsPlaying)

	if state.Item == nil {
		fmt.Printf("%s (no track)\n", icon)
		return
	}

	artists := make([]string, len(state.Item.Artists))
	for i, a := range state.Item.Artists {
		artists[i] = a.Name
	}

	fmt.Printf("%s %s\n", icon, styles.Title.Render(state.Item.Name))
	fmt.Printf("  %s\n", styles.Subtitle.Render(strings.Join(artists, ", ")))
	if state.Item.Album.Name != "" {
		fmt.Printf("  %s\n", styles.Dim.Render(state.Item.Album.Name))
	}

	bar := styles.ProgressBar(progressPercent(state), 30)
	fmt.Printf("  %s %s %s\n",
		FormatDuration(state.ProgressMS/1000),
		bar,
		FormatDuration(state.Item.DurationMS/1000))

	if state.Device.Name != "" {
		device := state.Device.Name
		if state.Device.VolumePercent != nil {
			device += fmt.Sprintf(" 🔊 %d%%", *state.Device.VolumePercent)
		}
		fmt.Printf("  %s\n", styles.Muted.Render(device))
	}
}

func progressPercent(state *client.PlaybackState) float64 {
	if state.Item == nil || state.Item.DurationMS == 0 {
		return 0
	}
	return float64(state.ProgressMS) / float64(state.Item.DurationMS) * 100
}
