// Package main runs the Crosscut background in a terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/crosscut/internal/config"
	"github.com/Faultbox/crosscut/internal/logger"
	"github.com/Faultbox/crosscut/internal/terminal"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("config written to", config.ConfigDir())
		return
	}

	// The screen belongs to tcell, so logs only go to the file.
	if err := logger.InitFileOnly(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Screen error: %v\n", err)
		os.Exit(1)
	}

	term, err := terminal.New(screen, cfg, logger.Named("terminal"))
	if err != nil {
		logger.Error("failed to create terminal", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Terminal error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := term.Run(ctx)
	term.Close()
	if runErr != nil {
		logger.Error("terminal error", zap.Error(runErr))
		os.Exit(1)
	}
}
