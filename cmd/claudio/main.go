// Command claudio launches Claude Code with per-project environment
// overlays resolved from layered settings files.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/claudio-sh/claudio/cmd"
	"github.com/claudio-sh/claudio/internal/settings"
	"github.com/claudio-sh/claudio/internal/ui"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := cmd.Run(ctx, os.Args[1:]); err != nil {
		var cfgErr *settings.ConfigError
		switch {
		case errors.As(err, &cfgErr):
			fmt.Fprintf(os.Stderr, "claudio: config error: %v\n", cfgErr)
			os.Exit(1)
		case errors.Is(err, ui.ErrCancelled) || ctx.Err() != nil:
			fmt.Fprintln(os.Stderr, "\nInterrupted")
			os.Exit(130)
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}
