// ABOUTME: Root Cobra command for productivity CLI.
// ABOUTME: Loads config and opens the logger and store via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"io"

	"github.com/harperreed/productivity/internal/config"
	"github.com/harperreed/productivity/internal/logging"
	"github.com/harperreed/productivity/internal/storage"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// skipStoreAnnotation marks commands that run without opening the database.
const skipStoreAnnotation = "skip-store"

var (
	dbPathFlag     string
	configPathFlag string

	cfg       *config.Config
	db        *storage.DB
	logger    = logging.Nop()
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "productivity",
	Short: "Personal productivity tracker",
	Long: `Productivity is a CLI tool for tracking tasks, habits, mood, and goals.

WHAT IT TRACKS:

  Tasks    to-dos with priority, status, and due dates
  Habits   daily or weekly routines with streaks
  Mood     a 1-7 score with notes, scored for sentiment
  Goals    measurable targets with progress

QUICK START:

  $ productivity task add "Write report" -p high --due 2026-03-14
  $ productivity task done 3f2a9c1b      # IDs accept 8-char prefixes
  $ productivity habit add Meditate
  $ productivity habit log 7d41e0aa       # Mark today as done
  $ productivity mood add 6 --notes "Great run this morning"
  $ productivity goal add "Read books" --target 24 --unit books
  $ productivity stats                    # Completion rate, mood, streaks
  $ productivity week                     # Last seven days of activity

MCP INTEGRATION:

  Run 'productivity mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants.

DATA STORAGE:

  Data lives in a single SQLite file, by default
  ~/.local/share/productivity/productivity.db. Override it with --db or the
  db_path config key. Configuration is read from
  ~/.config/productivity/config.yaml and PRODUCTIVITY_* environment variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !needsStore(cmd) {
			return nil
		}
		return openStore()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStore()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func needsStore(cmd *cobra.Command) bool {
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return false
	}
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipStoreAnnotation] == "true" {
			return false
		}
	}
	return true
}

func loadConfig() error {
	path := configPathFlag
	if path == "" {
		path = config.DefaultPath()
	}
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded
	return nil
}

func openStore() error {
	// A previous command that failed skips PostRunE; release its handles.
	if err := closeStore(); err != nil {
		return err
	}

	if err := loadConfig(); err != nil {
		return err
	}

	l, closer, err := logging.New(cfg.Log.Level, cfg.GetLogFile())
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	logger, logCloser = l, closer

	path := dbPathFlag
	if path == "" {
		path = cfg.GetDBPath()
	}
	db, err = storage.Open(config.ExpandPath(path), storage.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	return nil
}

func closeStore() error {
	var firstErr error
	if db != nil {
		firstErr = db.Close()
		db = nil
	}
	if logCloser != nil {
		if err := logCloser.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		logCloser = nil
	}
	logger = zerolog.Nop()
	return firstErr
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "", "path to the SQLite database")
	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config", "", "path to the config file")
}
