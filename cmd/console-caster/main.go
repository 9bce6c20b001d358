package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/lixenwraith/console-caster/asset"
	"github.com/lixenwraith/console-caster/audio"
	"github.com/lixenwraith/console-caster/engine"
	"github.com/lixenwraith/console-caster/raycast"
	"github.com/lixenwraith/console-caster/terminal"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCONSOLE-CASTER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	logFile := setupLogging(opts.debug)
	code := run(opts)
	if logFile != nil {
		logFile.Close()
	}
	os.Exit(code)
}

// run returns the process exit code; nothing is printed to the terminal on failure
func run(opts *options) int {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		log.Printf("config: %v", err)
		return 1
	}
	if err := opts.apply(&cfg); err != nil {
		log.Printf("flags: %v", err)
		return 1
	}

	screen, err := terminal.Open(
		terminal.WithBorderless(cfg.Display.Borderless),
		terminal.WithHoldWindow(cfg.HoldWindow()),
	)
	if err != nil {
		log.Printf("terminal: %v", err)
		return 1
	}
	defer screen.Close()

	cols, rows := screen.Size()
	engineCfg := engineConfig(cfg, cols, rows, terminal.CellSize)
	log.Printf("resolution %dx%d px, cell %dx%d px, %d fps",
		engineCfg.Width, engineCfg.Height, engineCfg.CellWidth, engineCfg.CellHeight, engineCfg.TargetRate)

	lib := asset.NewLibrary(cfg.Assets.Dir)
	world, err := raycast.ParseMap(lib.MapText())
	if err != nil {
		log.Printf("map: %v, using built-in map", err)
		if world, err = raycast.ParseMap(asset.DefaultMap); err != nil {
			log.Printf("built-in map: %v", err)
			return 1
		}
	}

	sounds := audio.NewSoundManager(cfg.Audio)
	if err := sounds.Initialize(); err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	}
	defer sounds.Cleanup()

	game, err := raycast.New(world, lib, cfg.Game, cfg.Keys, raycast.WithSounds(sounds))
	if err != nil {
		log.Printf("game: %v", err)
		return 1
	}

	eng, err := engine.New(engineCfg, screen, screen, game)
	if err != nil {
		log.Printf("engine: %v", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := eng.Run(ctx); err != nil {
		log.Printf("run: %v", err)
		return 1
	}
	log.Printf("stopped after %d frames", eng.Frames())
	return 0
}
