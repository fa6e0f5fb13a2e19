// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/bettercls/internal/settings"
	"github.com/pdiddy/bettercls/internal/source"
)

var sourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Show, change, or reset the saved data source",
	Long: `Source manages the data directory remembered between runs. The saved
value is used whenever --data-dir is not given.`,
}

// --- show subcommand ---

var sourceShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved data source and the directory in use",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := settings.Open(cfg.SettingsDB)
		if err != nil {
			return err
		}
		defer st.Close()

		saved, err := st.Get(cmd.Context(), settings.PathKey)
		if err != nil {
			return err
		}
		dir, err := resolveDataDir(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if source.IsUnset(saved) {
			fmt.Fprintln(out, "Saved source: built-in data")
		} else {
			fmt.Fprintf(out, "Saved source: %s\n", saved)
		}
		fmt.Fprintf(out, "In use:       %s\n", dir)
		return nil
	},
}

// --- set subcommand ---

var sourceSetCmd = &cobra.Command{
	Use:   "set [dir]",
	Short: "Validate a directory and save it as the data source",
	Long: `Set loads teachers.csv from the given directory. The directory is saved
only when it loads and contains the instructor with id 1; otherwise the
saved source is left unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolving %s: %w", args[0], err)
		}

		status, checkErr := source.Check(dir, logger)
		fmt.Fprintln(cmd.OutOrStdout(), status.Message())
		if status != source.StatusOK {
			if checkErr != nil {
				logger.Warn("data source rejected", zap.String("dir", dir), zap.Error(checkErr))
			}
			return fmt.Errorf("%s: %s", status.Message(), dir)
		}

		st, err := settings.Open(cfg.SettingsDB)
		if err != nil {
			return err
		}
		defer st.Close()
		return st.Set(cmd.Context(), settings.PathKey, dir)
	},
}

// --- reset subcommand ---

var sourceResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Go back to the built-in data source",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := settings.Open(cfg.SettingsDB)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Reset(cmd.Context(), settings.PathKey); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "data source reset to built-in data")
		return nil
	},
}

func init() {
	sourceCmd.AddCommand(sourceShowCmd)
	sourceCmd.AddCommand(sourceSetCmd)
	sourceCmd.AddCommand(sourceResetCmd)

	rootCmd.AddCommand(sourceCmd)
}
