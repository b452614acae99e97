// Package main is the entry point for the 2do CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Petemir/2do-txt/internal/app"
	"github.com/Petemir/2do-txt/internal/cli"
	"github.com/Petemir/2do-txt/internal/commands"
	"github.com/Petemir/2do-txt/internal/config"
	"github.com/Petemir/2do-txt/internal/service"
)

// pickerFactory selects the path picker. Desktop builds replace it with
// the native save dialog.
var pickerFactory app.PickerFactory = app.DialogPicker

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	factory := func(ctx context.Context, cfg *config.Config) (*service.Services, error) {
		return app.NewServices(ctx, cfg, pickerFactory)
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
