// Package main is the entry point for the tracker CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ksuda/tracker/internal/app"
	"github.com/ksuda/tracker/internal/cli"
	"github.com/ksuda/tracker/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		var storeErr *domain.StorageError
		if errors.As(err, &storeErr) {
			fmt.Fprintf(os.Stderr, "storage error: %v\n", storeErr)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	container, err := app.New(cwd)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer container.Close()

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}
