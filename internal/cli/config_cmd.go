package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/akyairhashvil/breathe/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}
	cmd.AddCommand(newConfigInitCmd(a), newConfigShowCmd(a))
	return cmd
}

func newConfigInitCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.resolvedConfigPath()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("stat config file: %w", err)
			}
			if err := config.Write(path, config.Default()); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return err
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.load()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "config:         %s\n", a.resolvedConfigPath())
			fmt.Fprintf(w, "technique:      %s\n", cfg.Technique)
			fmt.Fprintf(w, "minutes:        %d\n", cfg.Minutes)
			fmt.Fprintf(w, "haptics:        %t\n", cfg.Haptics)
			fmt.Fprintf(w, "frame_interval: %s\n", cfg.FrameInterval)
			fmt.Fprintf(w, "db_path:        %s\n", dbPath(cfg))
			_, err = fmt.Fprintf(w, "log_file:       %s\n", cfg.LogFile)
			return err
		},
	}
}
