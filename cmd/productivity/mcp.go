// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/productivity/internal/mcp"
	"github.com/harperreed/productivity/internal/sentiment"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your tasks, habits,
mood entries, and goals through a standardized protocol. The server
communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "productivity": {
        "command": "productivity",
        "args": ["mcp"]
      }
    }
  }

  On macOS, the config is at:
    ~/Library/Application Support/Claude/claude_desktop_config.json

AVAILABLE TOOLS:

  add_task              Create a task
  list_tasks            List tasks, optionally by status
  update_task_status    Move a task to pending, in_progress, or completed
  delete_task           Delete a task
  add_habit             Create a habit
  list_habits           List habits with streaks
  log_habit             Mark a habit done for a day
  delete_habit          Delete a habit and its logs
  add_mood              Record a 1-7 mood score with notes
  list_moods            List recent mood entries
  add_goal              Create a measurable goal
  list_goals            List goals with progress
  update_goal_progress  Set a goal's current value
  delete_goal           Delete a goal
  get_stats             Completion rate, mood average, and totals
  get_weekly_activity   Tasks and habits per day for the last week

AVAILABLE RESOURCES:

  productivity://stats   Overall statistics
  productivity://today   Pending tasks and today's habits
  productivity://week    Weekly activity`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(db, sentiment.NewVader(), mcp.WithLogger(logger))
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)
		go func() {
			select {
			case <-sigChan:
				cancel()
			case <-ctx.Done():
			}
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
