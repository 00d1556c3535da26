package main

import (
	"context"
	"fmt"
	"os"

	"github.com/thenoetrevino/tarefas/cmd"
	"github.com/thenoetrevino/tarefas/internal/cli"
	"github.com/thenoetrevino/tarefas/internal/cli/styles"
)

func main() {
	if err := cmd.Execute(context.Background()); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintln(os.Stderr, styles.Error("Error: "+err.Error()))
		}
		os.Exit(cli.ExitCode(err))
	}
}
