// Package main implements a static CHIP-8 ROM disassembler
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/chippy/internal/cli"
	"github.com/retroenv/chippy/internal/config"
	"github.com/retroenv/chippy/internal/disasm"
	"github.com/retroenv/chippy/internal/options"
	"github.com/retroenv/chippy/internal/rom"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	opts, err := cli.ParseDisasmFlags()
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

	if err := disasmFile(logger, opts); err != nil {
		logger.Fatal("Disassembling failed", log.Err(err))
	}
}

func disasmFile(logger *log.Logger, opts options.Disassembler) error {
	image, err := rom.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	logger.Info("Disassembling Chip-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", len(image)),
	)

	dis, err := disasm.New(image, disasm.Options{
		HexComments:    opts.HexComments,
		OffsetComments: opts.OffsetComments,
	})
	if err != nil {
		return err
	}

	writer, err := createWriter(opts)
	if err != nil {
		return err
	}
	defer func() {
		if closer, ok := writer.(io.Closer); ok {
			_ = closer.Close()
		}
	}()

	return dis.Process(writer)
}

// createWriter opens the output file or falls back to stdout.
func createWriter(opts options.Disassembler) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating file %s: %w", opts.Output, err)
	}
	return file, nil
}

func printBanner(quiet bool) {
	if !quiet {
		fmt.Println("[ unchip - CHIP-8 ROM disassembler ]")
		fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
	}
}
