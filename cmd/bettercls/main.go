// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the bettercls CLI, which searches
// instructor profiles, comments, and course GPA statistics loaded from a
// local data directory.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/bettercls/internal/corpus"
	"github.com/pdiddy/bettercls/internal/logging"
	"github.com/pdiddy/bettercls/internal/settings"
	"github.com/pdiddy/bettercls/internal/source"
	"github.com/pdiddy/bettercls/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	cfg    types.Config
	logger = zap.NewNop()
)

// rootCmd is the base command for the bettercls CLI.
var rootCmd = &cobra.Command{
	Use:   "bettercls",
	Short: "Search instructor ratings, comments, and course GPA data",
	Long: `bettercls loads instructor data from a directory containing teachers.csv,
comment_*.csv shards, and gpa.json, then answers queries against it.

The data directory is taken from --data-dir (or BETTERCLS_DATA_DIR, or
data_dir in bettercls.yaml). When none is given, the directory saved with
"bettercls source set" is used, falling back to the built-in
assets/database next to the executable.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("reading configuration: %w", err)
		}
		l, err := logging.New(cfg.Log.Level, cfg.Log.Format)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./bettercls.yaml or ~/.config/bettercls/bettercls.yaml)")
	flags.String("data-dir", "", "data directory (overrides the saved data source)")
	flags.String("settings-db", "", "settings database (default: ~/.config/bettercls/settings.db)")
	flags.String("format", "table", "output format: table, json or yaml")
	flags.String("log-level", logging.DefaultLevel, "diagnostic log level: debug, info, warn, error")
	flags.String("log-format", "console", "diagnostic log format: console or json")

	viper.BindPFlag("data_dir", flags.Lookup("data-dir"))
	viper.BindPFlag("settings_db", flags.Lookup("settings-db"))
	viper.BindPFlag("format", flags.Lookup("format"))
	viper.BindPFlag("log.level", flags.Lookup("log-level"))
	viper.BindPFlag("log.format", flags.Lookup("log-format"))
}

func initConfig() {
	home, homeErr := os.UserHomeDir()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bettercls")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if homeErr == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "bettercls"))
		}
	}

	if homeErr == nil {
		viper.SetDefault("settings_db", filepath.Join(home, ".config", "bettercls", "settings.db"))
	} else {
		viper.SetDefault("settings_db", "settings.db")
	}

	viper.SetEnvPrefix("BETTERCLS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// resolveDataDir picks the data directory: explicit configuration first,
// then the saved data source, then the built-in directory.
func resolveDataDir(ctx context.Context) (string, error) {
	if !source.IsUnset(cfg.DataDir) {
		return cfg.DataDir, nil
	}

	st, err := settings.Open(cfg.SettingsDB)
	if err != nil {
		return "", err
	}
	defer st.Close()

	saved, err := st.Get(ctx, settings.PathKey)
	if err != nil {
		return "", err
	}
	return source.Resolve(saved, source.DefaultDir()), nil
}

// openCorpus loads the resolved data directory.
func openCorpus(cmd *cobra.Command) (*corpus.Corpus, error) {
	dir, err := resolveDataDir(cmd.Context())
	if err != nil {
		return nil, err
	}
	logger.Debug("opening data directory", zap.String("dir", dir))
	return corpus.Open(dir, logger)
}

func main() {
	err := rootCmd.ExecuteContext(context.Background())
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
