package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"inkrypt/internal/adapters/filesystem"
	"inkrypt/internal/adapters/sqlite"
	"inkrypt/internal/adapters/watcher"
	"inkrypt/internal/config"
	"inkrypt/internal/domain"
	"inkrypt/internal/logger"
	"inkrypt/internal/ports"
)

var (
	configPath string
	flags      config.Config

	cfg     *config.Config
	log     *logger.Logger
	manager ports.VaultManager
	watch   *watcher.Watcher
	index   *sqlite.Index
)

var rootCmd = &cobra.Command{
	Use:   "inkrypt",
	Short: "Manage local note vaults",
	Long: `inkrypt manages a local collection of vaults: directory trees of
plain-text notes registered under a stable ID.

It provides commands to create, open, rename and delete vaults, to work with
notes and directories inside a vault, to search entry names and to watch a
vault for changes made by other programs.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return setup(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return teardown()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "config file (default <data-dir>/config.toml)")
	pf.StringVar(&flags.DataDir, "data-dir", "", "directory holding the vault registry and indexes")
	pf.StringVar(&flags.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&flags.LogFormat, "log-format", "", "log format (json, console)")
}

func setup(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load(configPath, &flags)
	if err != nil {
		return err
	}

	log = logger.New("inkrypt", cfg.LogLevel, cfg.LogFormat)
	cmd.SetContext(log.WithContext(cmd.Context()))

	manager, err = filesystem.NewManager(
		cfg.RegistryPath(domain.RegistryFileName),
		filesystem.WithLogger(log.Component("manager")),
	)
	if err != nil {
		return err
	}

	watch = watcher.New(watcher.Options{
		Debounce:   cfg.Watcher.Debounce,
		BufferSize: cfg.Watcher.BufferSize,
		Pending:    watcher.NewPendingSet(cfg.Watcher.PendingTTL),
		Logger:     log.Component("watcher"),
	})
	index = sqlite.NewIndex(cfg.IndexDir(), log.Component("index"))
	return nil
}

func teardown() error {
	var errs []error
	if watch != nil {
		errs = append(errs, watch.Close())
	}
	if index != nil {
		errs = append(errs, index.Close())
	}
	return errors.Join(errs...)
}
