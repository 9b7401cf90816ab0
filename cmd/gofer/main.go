// Package main is the entry point for the gofer CLI.
package main

import (
	"os"

	"github.com/gofer-sh/gofer/cmd/gofer/app"
	"github.com/gofer-sh/gofer/pkg/logger"
)

func main() {
	// Initialize the logger
	logger.Initialize()

	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
