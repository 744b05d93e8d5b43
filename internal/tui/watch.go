// Package tui implements the interactive now-playing watch view.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/soneb/vamp/internal/spotify/client"
	"github.com/soneb/vamp/internal/tui/styles"
)

type stateMsg struct {
	state *client.PlaybackState
	err   error
}

type pollTickMsg struct{}

// WatchModel polls the playback state and renders a now-playing panel.
type WatchModel struct {
	client   *client.Client
	interval time.Duration
	spinner  spinner.Model

	state  *client.PlaybackState
	err    error
	loaded bool
	width  int
}

// NewWatch creates a watch model polling at the given interval.
func NewWatch(c *client.Client, interval time.Duration) WatchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	return WatchModel{
		client:   c,
		interval: interval,
		spinner:  s,
		width:    60,
	}
}

// Init starts the spinner and the first poll.
func (m WatchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.poll())
}

func (m WatchModel) poll() tea.Cmd {
	return func() tea.Msg {
		state, err := m.client.CurrentPlayback(context.Background())
		return stateMsg{state: state, err: err}
	}
}

func (m WatchModel) scheduleNext() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return pollTickMsg{}
	})
}

// Update handles key presses, poll results and spinner ticks.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			return m, m.togglePlayback()
		case "n":
			return m, m.command(m.client.Next)
		case "b":
			return m, m.command(m.client.Previous)
		}
		return m, nil

	case stateMsg:
		m.loaded = true
		m.state = msg.state
		m.err = msg.err
		return m, m.scheduleNext()

	case pollTickMsg:
		return m, m.poll()

	case spinner.TickMsg:
		if m.loaded {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// togglePlayback pauses or resumes depending on the last known state.
func (m WatchModel) togglePlayback() tea.Cmd {
	playing := m.state != nil && m.state.IsPlaying
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		if playing {
			err = m.client.Pause(ctx)
		} else {
			err = m.client.Play(ctx, "", nil)
		}
		if err != nil {
			return stateMsg{state: m.state, err: err}
		}
		state, err := m.client.CurrentPlayback(ctx)
		return stateMsg{state: state, err: err}
	}
}

// command runs a transport command and repolls.
func (m WatchModel) command(fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := fn(ctx); err != nil {
			return stateMsg{state: m.state, err: err}
		}
		state, err := m.client.CurrentPlayback(ctx)
		return stateMsg{state: state, err: err}
	}
}

// View renders the now-playing panel.
func (m WatchModel) View() string {
	if !m.loaded {
		return m.spinner.View() + " Loading playback state..."
	}

	var content string
	switch {
	case m.err != nil:
		content = styles.ErrorStyle.Render("Error: " + m.err.Error())
	case m.state == nil || m.state.Item == nil:
		content = styles.Muted.Render("No track playing")
	default:
		content = m.renderTrack()
	}

	help := styles.Dim.Render("space play/pause · n next · b prev · q quit")

	panelWidth := m.width - 4
	if panelWidth > 64 {
		panelWidth = 64
	}
	if panelWidth < 30 {
		panelWidth = 30
	}

	panel := styles.PanelStyle.Width(panelWidth)
	return panel.Render(content) + "\n" + help + "\n"
}

func (m WatchModel) renderTrack() string {
	state := m.state
	track := state.Item

	artists := make([]string, len(track.Artists))
	for i, a := range track.Artists {
		artists[i] = a.Name
	}

	icon := styles.StatusIcon(state.IsPlaying)
	title := icon + " " + styles.Title.Render(track.Name)
	artist := "  " + styles.Subtitle.Render(strings.Join(artists, ", "))
	album := "  " + styles.Dim.Render(track.Album.Name)

	percent := 0.0
	if track.DurationMS > 0 {
		percent = float64(state.ProgressMS) / float64(track.DurationMS) * 100
	}
	progress := fmt.Sprintf("%s %s %s",
		formatMS(state.ProgressMS),
		styles.ProgressBar(percent, 24),
		formatMS(track.DurationMS))

	lines := []string{title, artist, album, "", progress}

	if state.Device.Name != "" {
		device := state.Device.Name
		if state.Device.VolumePercent != nil {
			device += fmt.Sprintf(" 🔊 %d%%", *state.Device.VolumePercent)
		}
		lines = append(lines, styles.Muted.Render(device))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func formatMS(ms int) string {
	d := time.Duration(ms) * time.Millisecond
	d = d.Round(time.Second)
	m := d / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%d:%02d", m, s)
}
