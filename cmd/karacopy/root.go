package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/karacopy/cmd/karacopy/commands"
	"github.com/walteh/karacopy/cmd/karacopy/opts"
	"github.com/walteh/karacopy/pkg/config"
	"github.com/walteh/karacopy/pkg/log"
	"github.com/walteh/karacopy/pkg/prompt"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile    string
	destination   string
	debug         bool
	assumeYes     bool
	skipBadAlbums bool
)

// NewRootCmd creates the karacopy root command
func NewRootCmd() *cobra.Command {
	ro := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "karacopy",
		Short: "Copies music and LRC files into a karaoke playlist folder",
		Long: `karacopy selects the subset of a music library that has synced lyrics
(.lrc) files and copies it into a destination folder, preserving the
artist/album structure. Media files without lyrics are left behind; cover
art comes along for every selected album. Albums are filtered by the
bracketed year in their folder name, e.g. "Danseparc [1983]".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			ctx := zerolog.DefaultContextLogger.WithContext(cmd.Context())
			cmd.SetContext(ctx)

			built, err := newRootOpts(ctx)
			if err != nil {
				return err
			}
			*ro = *built
			return nil
		},
	}

	addRootFlags(cmd)
	cmd.AddCommand(commands.NewPlanCmd(ro))
	cmd.AddCommand(commands.NewCopyCmd(ro))
	return cmd
}

// newRootOpts creates a new RootOpts with initialized dependencies
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	// Load config
	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	// Apply flag overrides
	if destination != "" {
		cfg.Destination = destination
	}
	if skipBadAlbums {
		cfg.SkipBadAlbums = true
	}

	// Create absolute paths
	absSource, err := filepath.Abs(cfg.Source)
	if err != nil {
		return nil, errors.Errorf("getting absolute source path: %w", err)
	}
	cfg.Source = absSource

	absDestination, err := filepath.Abs(cfg.Destination)
	if err != nil {
		return nil, errors.Errorf("getting absolute destination path: %w", err)
	}
	cfg.Destination = absDestination

	// Create user console
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	console := log.New(os.Stdout, level)

	// Create confirmer
	var confirm prompt.Confirmer = prompt.NewInteractive()
	if assumeYes {
		confirm = prompt.Auto(true)
	}

	return &opts.RootOpts{
		Config:  cfg,
		Console: console,
		Confirm: confirm,
	}, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".karacopy.yaml", "config file path")
	cmd.PersistentFlags().StringVar(&destination, "destination", "", "override destination path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "answer yes to all prompts")
	cmd.PersistentFlags().BoolVar(&skipBadAlbums, "skip-bad-albums", false, "skip albums with no parsable year instead of aborting")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
}

// TODO(dr.methodical): 🧪 Add tests for the --destination override

