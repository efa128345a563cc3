//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"eyes/app"
	"eyes/assets"
	"eyes/hal"
)

func main() {
	cfg := app.NewConfig()
	var (
		headless bool
		terminal bool
		hz       int
		ticks    uint64
		zoom     int
	)
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.BoolVar(&terminal, "terminal", false, "Preview in the terminal instead of a window.")
	flag.IntVar(&hz, "hz", 60, "Tick rate in headless and terminal mode.")
	flag.Uint64Var(&ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&zoom, "zoom", 2, "Window zoom.")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	var size hal.Size
	size.Width, size.Height = cfg.OutputSize(assets.DefaultOptions().Geometry)

	if headless || terminal {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		var err error
		if terminal {
			err = hal.RunTerminal(ctx, app.Runner(*cfg), hal.TerminalConfig{Size: size, Hz: hz})
		} else {
			err = hal.RunHeadless(ctx, app.Runner(*cfg), hal.HeadlessConfig{Size: size, Hz: hz, Ticks: ticks})
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(app.Runner(*cfg), hal.WindowConfig{Size: size, Zoom: zoom}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
