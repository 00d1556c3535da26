package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tarefas/internal/cli/styles"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	Out io.Writer // defaults to os.Stdout
	Err io.Writer // defaults to os.Stderr
}

// NewFormatter reads the --json and --quiet flags of cmd
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) err() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

// Success outputs successful operation result.
// human is printed in the default mode; data is encoded in JSON mode.
func (f *OutputFormatter) Success(data interface{}, human string) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			_, err := fmt.Fprintf(f.out(), "%d\n", idGetter.GetID())
			return err
		}
		return nil
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	_, err := fmt.Fprint(f.out(), human)
	return err
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintln(f.err(), styles.Error("❌ Error: "+message))
	if suggestion != "" {
		fmt.Fprintln(f.err(), styles.Subtitle("💡 Suggestion: "+suggestion))
	}
	return nil
}

// Fail reports err to the user and returns it tagged with exitCode
func (f *OutputFormatter) Fail(exitCode int, code string, err error, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		return fmtErr
	}
	return &CommandError{Code: exitCode, Err: err, reported: true}
}
