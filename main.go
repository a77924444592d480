// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/yourorg/buildpost/internal/cmd"
	"github.com/yourorg/buildpost/internal/config"
	"github.com/yourorg/buildpost/internal/errors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "buildpost: failed to load config: %v\n", err)
		os.Exit(1)
	}

	root := cmd.NewRootCmd(cfg)
	if err := root.Execute(); err != nil {
		var app *errors.AppError
		if stderrors.As(err, &app) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", app.Message)
			if app.Err != nil {
				fmt.Fprintf(os.Stderr, "  %v\n", app.Err)
			}
			if app.Hint != "" {
				fmt.Fprintf(os.Stderr, "Hint: %s\n", app.Hint)
			}
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
