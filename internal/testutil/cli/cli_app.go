package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tarefas/internal/app"
	clipkg "github.com/thenoetrevino/tarefas/internal/cli"
	"github.com/thenoetrevino/tarefas/internal/testutil"
)

// Result holds everything a command printed
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// ExitCode is the process exit code the command would produce
func (r Result) ExitCode() int {
	return clipkg.ExitCode(r.Err)
}

// ExecuteCLICommand executes a CLI command with a test app instance
// This properly injects the app context so commands can access the test database
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	res := Run(t, testApp, cmd, args, "")
	return res.Stdout, res.Err
}

// Run executes cmd with args, feeding stdin to it, and captures both streams
func Run(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string, stdin string) Result {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	ctx := clipkg.WithApp(context.Background(), testApp)

	// Set command args
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))

	var stderr bytes.Buffer
	cmd.SetErr(&stderr)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	// Capture output and execute
	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctx)
	})

	return Result{Stdout: output, Stderr: stderr.String(), Err: executeErr}
}
