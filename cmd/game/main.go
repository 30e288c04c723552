package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomz197/dodgeordie/internal/config"
	"github.com/tomz197/dodgeordie/internal/logging"
	"github.com/tomz197/dodgeordie/internal/loop"
	"github.com/tomz197/dodgeordie/internal/store"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load(config.GetEnv("DODGE_CONFIG", ""))
	if err != nil {
		return err
	}
	logger := logging.New(settings.Log.Level)

	scores, warning, err := store.Open(settings.Scores.Path)
	if err != nil {
		return err
	}
	if warning != nil {
		logger.Warn("ignoring unreadable best scores", "path", settings.Scores.Path, "err", warning)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reader := bufio.NewReader(os.Stdin)
	return loop.Run(ctx, reader, os.Stdout, loop.Options{
		Store:       scores.For(store.DefaultPlayer),
		Logger:      logger,
		KeyHold:     settings.Input.KeyHold,
		IdleTimeout: -1,
	})
}
