// ABOUTME: CLI commands for inspecting and creating the config file.
// ABOUTME: Runs without opening the database.
package main

import (
	"fmt"
	"os"

	"github.com/harperreed/productivity/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the config file",
	Long: `Show or create the config file.

KEYS:

  data_dir       where data lives (default ~/.local/share/productivity)
  db_path        SQLite file (default <data_dir>/productivity.db)
  log.level      trace, debug, info, warn, or error (default info)
  log.file       log file (default <data_dir>/productivity.log)
  list_limit     rows shown by list commands (default 20)
  mood_history   entries shown by 'mood list' (default 30)

Every key can be overridden with a PRODUCTIVITY_* environment variable,
for example PRODUCTIVITY_LOG_LEVEL=debug.`,
	Annotations: map[string]string{skipStoreAnnotation: "true"},
}

func configFilePath() string {
	if configPathFlag != "" {
		return configPathFlag
	}
	return config.DefaultPath()
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), configFilePath())
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		fmt.Fprint(out, string(data))
		fmt.Fprintln(out, faint.Sprintf("# database: %s", config.ExpandPath(cfg.GetDBPath())))
		fmt.Fprintln(out, faint.Sprintf("# log file: %s", config.ExpandPath(cfg.GetLogFile())))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFilePath()
		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
		}

		if err := config.Default().Save(path); err != nil {
			return err
		}
		green.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")

	configCmd.AddCommand(configPathCmd, configShowCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}
