package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/netrunner/prefs"
)

// prefsSetOptions holds flags for prefs set
type prefsSetOptions struct {
	*rootOptions
	Enabled bool
	Volume  float64
}

func newPrefsCommand(rootOpts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change the stored audio preferences",
	}
	cmd.AddCommand(newPrefsShowCommand(rootOpts))
	cmd.AddCommand(newPrefsSetCommand(rootOpts))
	return cmd
}

func newPrefsShowCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the audio preferences as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(opts)
			if err != nil {
				return err
			}
			return printPrefs(cmd.OutOrStdout(), store)
		},
	}
}

func newPrefsSetCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &prefsSetOptions{rootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update the audio preferences",
		Long: `Update one or both audio preferences. Volume is clamped to [0, 1].

Example:
  netrunner prefs set --volume 0.5
  netrunner prefs set --enabled=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("enabled") && !flags.Changed("volume") {
				return errors.New("nothing to set: pass --enabled or --volume")
			}

			store, err := openStore(opts.rootOptions)
			if err != nil {
				return err
			}
			next := store.Get()
			if flags.Changed("enabled") {
				next.Enabled = opts.Enabled
			}
			if flags.Changed("volume") {
				next.Volume = opts.Volume
			}
			if err := store.Set(next); err != nil {
				return err
			}
			return printPrefs(cmd.OutOrStdout(), store)
		},
	}

	cmd.Flags().BoolVar(&opts.Enabled, "enabled", true, "enable music and sound effects")
	cmd.Flags().Float64Var(&opts.Volume, "volume", 0, "master volume in [0, 1]")

	return cmd
}

// openStore opens the preference file; unreadable content falls back to defaults
func openStore(opts *rootOptions) (*prefs.Store, error) {
	path, err := opts.prefsPath()
	if err != nil {
		return nil, err
	}
	store, _ := prefs.Open(path)
	return store, nil
}

func printPrefs(w io.Writer, store *prefs.Store) error {
	data, err := json.MarshalIndent(store.Get(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n# %s\n", data, store.Path())
	return err
}
