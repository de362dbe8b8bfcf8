// Package cli wires the cobra command tree.
package cli

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/breathe/internal/catalog"
	"github.com/akyairhashvil/breathe/internal/config"
	"github.com/akyairhashvil/breathe/internal/database"
	"github.com/akyairhashvil/breathe/internal/haptics"
	"github.com/akyairhashvil/breathe/internal/models"
	"github.com/akyairhashvil/breathe/internal/tui"
	"github.com/akyairhashvil/breathe/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var errNoTerminal = errors.New("the breathing screen needs a terminal; try `breathe run`")

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

// app holds state shared by the subcommands.
type app struct {
	v          *viper.Viper
	configPath string
	catalog    *catalog.Catalog
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), catalog: catalog.Default()}

	rootCmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "Guided breathing exercises in the terminal",
		Long:          "breathe paces Inhale, Hold and Exhale phases with an animated circle, a session countdown and an optional bell at each new breath.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTUI(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/breathe/config.toml)")
	flags.String("db", "", "preferences database (default $XDG_DATA_HOME/breathe/breathe.db)")
	flags.StringP("technique", "t", config.DefaultTechnique, "technique id: "+joinIDs(a.catalog))
	flags.IntP("minutes", "m", config.DefaultSessionMinutes, "session length in minutes")
	_ = a.v.BindPFlag(config.KeyDBPath, flags.Lookup("db"))
	_ = a.v.BindPFlag(config.KeyTechnique, flags.Lookup("technique"))
	_ = a.v.BindPFlag(config.KeyMinutes, flags.Lookup("minutes"))

	rootCmd.AddCommand(
		newVersionCmd(),
		newTechniquesCmd(a),
		newRunCmd(a),
		newExportCmd(a),
		newConfigCmd(a),
	)
	return rootCmd
}

func (a *app) resolvedConfigPath() string {
	if a.configPath != "" {
		return a.configPath
	}
	return filepath.Join(util.ConfigDir(config.AppName), config.ConfigFileName)
}

// load resolves flags, environment and the config file, in that order.
func (a *app) load() (config.Config, error) {
	cfg, err := config.Load(a.v, a.resolvedConfigPath())
	if err != nil {
		return config.Config{}, err
	}
	if _, ok := a.catalog.Lookup(cfg.Technique); !ok {
		return config.Config{}, fmt.Errorf("unknown technique %q (available: %s)", cfg.Technique, joinIDs(a.catalog))
	}
	return cfg, nil
}

func dbPath(cfg config.Config) string {
	if cfg.DBPath != "" {
		return cfg.DBPath
	}
	return filepath.Join(util.DataDir(config.AppName), config.DBFileName)
}

// preferences overlays stored preferences on the config, then lets explicit
// flags win over both.
func (a *app) preferences(cmd *cobra.Command, cfg config.Config, store database.PreferenceRepository) (models.Preferences, error) {
	defaults := models.Preferences{
		TechniqueID:    cfg.Technique,
		SessionMinutes: cfg.Minutes,
		Haptics:        cfg.Haptics,
		Reminders:      true,
	}
	prefs, err := store.LoadPreferences(cmd.Context(), defaults)
	if err != nil {
		return defaults, err
	}
	if cmd.Flags().Changed("technique") {
		prefs.TechniqueID = cfg.Technique
	}
	if cmd.Flags().Changed("minutes") {
		prefs.SessionMinutes = cfg.Minutes
	}
	return prefs, nil
}

func (a *app) runTUI(cmd *cobra.Command) error {
	cfg, err := a.load()
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, config.AppName)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		util.DiscardLogs()
	}

	ctx := cmd.Context()
	db, err := database.Open(ctx, dbPath(cfg))
	if err != nil {
		return err
	}
	defer func() { util.LogError("close database", db.Close()) }()

	prefs, err := a.preferences(cmd, cfg, db)
	if err != nil {
		util.LogError("load preferences", err)
	}

	model, err := tui.NewMainModel(ctx, db, tui.Options{
		Catalog:       a.catalog,
		Preferences:   prefs,
		Cue:           haptics.NewBell(os.Stderr, true),
		FrameInterval: cfg.FrameInterval,
		ExportDir:     util.ReportsDir(config.AppName),
		Logger:        log.Default(),
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
