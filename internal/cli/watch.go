package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/soneb/vamp/internal/tui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch playback in real time",
	Long:  `Opens an interactive now-playing view that follows the playback state.`,
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	c, err := apiClient()
	if err != nil {
		return err
	}

	interval := time.Duration(cfg.Watch.Interval) * time.Millisecond
	model := tui.NewWatch(c, interval)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("watch view failed: %w", err)
	}
	return nil
}
