// Package main runs the graphics course triangle demos: one binary, one
// demo per run, selected with -demo.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/LTSACH/graphics-course/internal/config"
	"github.com/LTSACH/graphics-course/internal/demo"
	"github.com/LTSACH/graphics-course/internal/logger"
)

func main() {
	config.ParseFlags()

	if config.ListRequested() {
		fmt.Println("Available demos:")
		for _, line := range demo.Describe() {
			fmt.Println("  " + line)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	d, err := demo.Lookup(cfg.Demo.Name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	app, err := demo.New(cfg, d)
	if err != nil {
		logger.Error("startup failed", zap.Error(err))
		os.Exit(1)
	}
	defer app.Close()

	if err := app.Run(); err != nil {
		logger.Error("session failed", zap.Error(err))
		os.Exit(1)
	}
}
