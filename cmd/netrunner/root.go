package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/netrunner/config"
	"github.com/lixenwraith/netrunner/locale"
	"github.com/lixenwraith/netrunner/prefs"
)

// rootOptions holds global flags for all commands
type rootOptions struct {
	ConfigPath string
	Debug      bool
	PrefsPath  string
	NoColor    bool

	// cfg is the merged configuration, set by PersistentPreRunE
	cfg *config.Config
}

// newRootCommand creates the root command; running it bare starts the game
func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "netrunner",
		Short: "Breach corporate ICE before the trace completes",
		Long: `A terminal hacking game: launch attack programs against layered
security before the trace meter fills.

Running without a subcommand starts the game.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to YAML config file")
	cmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "write a debug log under the log directory")
	cmd.PersistentFlags().StringVar(&opts.PrefsPath, "prefs", "", "path to the audio preference file")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable RGB styling")

	cmd.AddCommand(newPlayCommand(opts))
	cmd.AddCommand(newSimCommand(opts))
	cmd.AddCommand(newPrefsCommand(opts))
	cmd.AddCommand(newVersionCommand())

	return cmd
}

// load merges config file, environment and explicitly set flags
func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug = o.Debug
	}
	if flags.Changed("prefs") {
		cfg.PrefsPath = o.PrefsPath
	}
	if flags.Changed("no-color") {
		cfg.UI.Color = !o.NoColor
	}

	if cfg.Locale != "" {
		data, err := os.ReadFile(cfg.Locale)
		if err != nil {
			return fmt.Errorf("read locale: %w", err)
		}
		locale.Load(data)
	}

	o.cfg = cfg
	return nil
}

// prefsPath resolves the audio preference file location
func (o *rootOptions) prefsPath() (string, error) {
	if o.cfg != nil && o.cfg.PrefsPath != "" {
		return o.cfg.PrefsPath, nil
	}
	return prefs.DefaultPath()
}
