// ABOUTME: Integration tests for productivity CLI.
// ABOUTME: Tests full workflow from CLI commands.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(projectRoot, "productivity")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/productivity")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(binary)

	// Use temp database and keep config/logs out of the real home
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	env := append(os.Environ(),
		"XDG_DATA_HOME="+filepath.Join(tmpDir, "data"),
		"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
		"NO_COLOR=1",
	)

	run := func(args ...string) (string, error) {
		fullArgs := append([]string{"--db", dbPath}, args...)
		cmd := exec.Command(binary, fullArgs...)
		cmd.Env = env
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// firstID returns the short id that starts the first line of a listing
	firstID := func(listing string) string {
		fields := strings.Fields(listing)
		if len(fields) == 0 {
			t.Fatalf("Empty listing")
		}
		return fields[0]
	}

	// Tasks
	output, err := run("task", "add", "Write report", "-p", "high")
	if err != nil {
		t.Fatalf("Failed to add task: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Added task") {
		t.Errorf("Expected 'Added task' in output, got: %s", output)
	}

	output, err = run("task", "list")
	if err != nil {
		t.Fatalf("Failed to list tasks: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Write report") {
		t.Errorf("Expected 'Write report' in list output, got: %s", output)
	}
	taskID := firstID(output)

	output, err = run("task", "done", taskID)
	if err != nil {
		t.Fatalf("Failed to complete task: %v\n%s", err, output)
	}
	if !strings.Contains(output, "is now completed") {
		t.Errorf("Expected completion message, got: %s", output)
	}

	// Habits
	output, err = run("habit", "add", "Meditate")
	if err != nil {
		t.Fatalf("Failed to add habit: %v\n%s", err, output)
	}
	output, err = run("habit", "list")
	if err != nil {
		t.Fatalf("Failed to list habits: %v\n%s", err, output)
	}
	habitID := firstID(output)

	output, err = run("habit", "log", habitID)
	if err != nil {
		t.Fatalf("Failed to log habit: %v\n%s", err, output)
	}
	if !strings.Contains(output, "1 day") {
		t.Errorf("Expected a 1 day streak, got: %s", output)
	}

	// Mood and goals
	output, err = run("mood", "add", "5", "--notes", "good focus today")
	if err != nil {
		t.Fatalf("Failed to add mood: %v\n%s", err, output)
	}
	output, err = run("goal", "add", "Read books", "--target", "12", "--unit", "books")
	if err != nil {
		t.Fatalf("Failed to add goal: %v\n%s", err, output)
	}

	// Stats
	output, err = run("stats")
	if err != nil {
		t.Fatalf("Failed to get stats: %v\n%s", err, output)
	}
	for _, want := range []string{"1 total, 1 completed", "100.0%", "5.0/7", "1 check-ins", "1 active"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in stats output, got: %s", want, output)
		}
	}

	// Week
	output, err = run("week")
	if err != nil {
		t.Fatalf("Failed to get weekly activity: %v\n%s", err, output)
	}
	if !strings.Contains(output, "habits") {
		t.Errorf("Expected week header, got: %s", output)
	}

	// Export
	output, err = run("export", "markdown")
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Write report") || !strings.Contains(output, "Meditate") {
		t.Errorf("Expected task and habit in markdown export, got: %s", output)
	}
}
