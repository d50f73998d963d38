// hueful - colour palettes and their mood, pulled from images
//
// hueful extracts a small palette of dominant colours from an image,
// describes its temperature, energy, contrast and vibe, and exports it as
// CSS custom properties, JSON or a colour wheel PNG.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmylchreest/hueful/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
