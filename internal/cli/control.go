package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause playback",
	Long:  `Pause the current playback.`,
	RunE:  runPause,
}

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume playback",
	Long:  `Resume paused playback.`,
	RunE:  runResume,
}

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Skip to next track",
	Long:  `Skip to the next track in the queue.`,
	RunE:  runNext,
}

var prevCmd = &cobra.Command{
	Use:   "prev",
	Short: "Go to previous track",
	Long:  `Go back to the previous track.`,
	RunE:  runPrev,
}

var seekCmd = &cobra.Command{
	Use:   "seek <position>",
	Short: "Seek within the current track",
	Long: `Seek to a position in the current track.

The position is given in seconds, or as mm:ss.

Examples:
  vamp seek 90     # Seek to 1:30
  vamp seek 2:15   # Seek to 2:15`,
	Args: cobra.ExactArgs(1),
	RunE: runSeek,
}

var volumeCmd = &cobra.Command{
	Use:   "volume <level>",
	Short: "Set playback volume",
	Long:  `Set the playback volume (0-100).`,
	Args:  cobra.ExactArgs(1),
	RunE:  runVolume,
}

func init() {
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(prevCmd)
	rootCmd.AddCommand(seekCmd)
	rootCmd.AddCommand(volumeCmd)
}

func runPause(cmd *cobra.Command, args []string) error {
	c, err := apiClient()
	if err != nil {
		return err
	}

	if err := c.Pause(context.Background()); err != nil {
		return fmt.Errorf("failed to pause: %w", err)
	}

	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]string{"status": "paused"})
	} else {
		fmt.Println("⏸ Paused")
	}
	return nil
}

func runResume(cmd *cobra.Command, args []string) error {
	c, err := apiClient()
	if err != nil {
		return err
	}

	if err := c.Play(context.Background(), "", nil); err != nil {
		return fmt.Errorf("failed to resume: %w", err)
	}

	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]string{"status": "playing"})
	} else {
		fmt.Println("▶ Resumed")
	}
	return nil
}

func runNext(cmd *cobra.Command, args []string) error {
	c, err := apiClient()
	if err != nil {
		return err
	}

	if err := c.Next(context.Background()); err != nil {
		return fmt.Errorf("failed to skip: %w", err)
	}

	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]string{"status": "skipped"})
	} else {
		fmt.Println("⏭ Skipped to next track")
	}
	return nil
}

func runPrev(cmd *cobra.Command, args []string) error {
	c, err := apiClient()
	if err != nil {
		return err
	}

	if err := c.Previous(context.Background()); err != nil {
		return fmt.Errorf("failed to go back: %w", err)
	}

	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]string{"status": "previous"})
	} else {
		fmt.Println("⏮ Previous track")
	}
	return nil
}

func runSeek(cmd *cobra.Command, args []string) error {
	positionMs, err := parsePosition(args[0])
	if err != nil {
		return err
	}

	c, err := apiClient()
	if err != nil {
		return err
	}

	if err := c.Seek(context.Background(), positionMs); err != nil {
		return fmt.Errorf("failed to seek: %w", err)
	}

	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]int{"position_ms": positionMs})
	} else {
		fmt.Printf("⏩ Seeked to %s\n", FormatDuration(positionMs/1000))
	}
	return nil
}

func runVolume(cmd *cobra.Command, args []string) error {
	percent, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid volume level: %s", args[0])
	}
	if percent < 0 || percent > 100 {
		return fmt.Errorf("volume must be between 0 and 100")
	}

	c, err := apiClient()
	if err != nil {
		return err
	}

	if err := c.SetVolume(context.Background(), percent); err != nil {
		return fmt.Errorf("failed to set volume: %w", err)
	}

	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]int{"volume": percent})
	} else {
		fmt.Printf("🔊 Volume: %d%%\n", percent)
	}
	return nil
}

// parsePosition converts "90" (seconds) or "2:15" (mm:ss) to milliseconds.
func parsePosition(s string) (int, error) {
	if m, rest, ok := strings.Cut(s, ":"); ok {
		mins, err := strconv.Atoi(m)
		if err != nil {
			return 0, fmt.Errorf("invalid position: %s", s)
		}
		secs, err := strconv.Atoi(rest)
		if err != nil || secs < 0 || secs > 59 {
			return 0, fmt.Errorf("invalid position: %s", s)
		}
		return (mins*60 + secs) * 1000, nil
	}

	secs, err := strconv.Atoi(s)
	if err != nil || secs < 0 {
		return 0, fmt.Errorf("invalid position: %s", s)
	}
	return secs * 1000, nil
}
