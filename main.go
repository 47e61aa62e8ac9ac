// Package main is the entry point for the sprint summary CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/danielolaszy/sprint-summary/cmd"
	"github.com/danielolaszy/sprint-summary/internal/config"
	"github.com/danielolaszy/sprint-summary/internal/logging"
	"github.com/joho/godotenv"
)

// main executes the root command and exits non-zero on failure.
func main() {
	// A missing .env is fine; exported variables take precedence anyway.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logging.Warn("failed to load .env file", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		logging.Error("command execution failed", "error", err)

		// The missing-variable list has already been printed.
		var missing *config.MissingVarsError
		if !errors.As(err, &missing) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}
