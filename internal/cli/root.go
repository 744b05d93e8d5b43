package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/soneb/vamp/internal/config"
	vamperrors "github.com/soneb/vamp/internal/errors"
	"github.com/soneb/vamp/internal/spotify/client"
)

var (
	cfgFile string
	jsonOut bool
	verbose bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "vamp",
	Short: "Control Spotify playback from the command line",
	Long:  `Vamp drives a Spotify playback session: transport commands, playback status and playlist aggregation.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.vamprc)")
	rootCmd.PersistentFlags().BoolVarP(&jsonOut, "json", "j", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func initConfig() error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, vamperrors.Format(err))
		os.Exit(1)
	}
}

// JSONOutput returns true if JSON output is requested.
func JSONOutput() bool {
	return jsonOut
}

// Verbose returns true if verbose output is requested.
func Verbose() bool {
	return verbose
}

// apiClient builds a control-API client from the loaded config.
func apiClient() (*client.Client, error) {
	if cfg.Spotify.Token == "" {
		return nil, vamperrors.ErrNoToken
	}

	c := client.NewStatic(cfg.Spotify.Token)
	if cfg.Spotify.BaseURL != "" {
		c.SetBaseURL(cfg.Spotify.BaseURL)
	}
	if Verbose() {
		c.SetVerbose(true, func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		})
	}
	return c, nil
}
