// Package main implements the main entry point for the chippy CHIP-8 emulator
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/retroenv/chippy/internal/cli"
	"github.com/retroenv/chippy/internal/config"
	"github.com/retroenv/chippy/internal/emulator"
	"github.com/retroenv/chippy/internal/options"
	"github.com/retroenv/chippy/internal/rom"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func init() {
	// SDL event handling and rendering are bound to the main thread
	runtime.LockOSThread()
}

func main() {
	ctx := app.Context()

	opts, err := cli.ParseEmulatorFlags()
	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(opts.Quiet)
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	printBanner(opts.Quiet)

	if err := run(ctx, logger, opts); err != nil {
		// handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Emulation cancelled")
			return
		}
		logger.Fatal("Emulation failed", log.Err(err))
	}
}

func run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	image, err := rom.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	logger.Info("Running Chip-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", len(image)),
	)

	emu, err := emulator.New(logger, image, opts)
	if err != nil {
		return err
	}
	return emu.Run(ctx)
}

func printBanner(quiet bool) {
	if !quiet {
		fmt.Println("[ chippy - CHIP-8 emulator ]")
		fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
	}
}
