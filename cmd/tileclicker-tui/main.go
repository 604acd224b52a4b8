// Command tileclicker-tui plays the board in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/tileclicker/config"
	"github.com/pthm-cable/tileclicker/game"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	logPath := flag.String("log", "", "Write JSON logs to this file")
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	if err := run(*configPath, *seed, *logPath, *mute); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, seed int64, logPath string, mute bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// The terminal owns stdout, so logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			return fmt.Errorf("creating log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(logOut, nil)))

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, err := game.NewGameWithOptions(cfg, game.Options{Seed: seed, StartPaused: true})
	if err != nil {
		return err
	}
	defer g.Unload()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	sounds := &Sounds{}
	if !mute {
		sounds, err = NewSounds()
		if err != nil {
			slog.Warn("audio disabled", "error", err)
		}
	}
	defer sounds.Close()

	v := newView(g, screen, sounds)

	// tcell blocks in PollEvent; the frame loop owns the game
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	fps := cfg.Screen.TargetFPS
	if fps <= 0 {
		fps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if quit := v.handle(ev); quit {
				return nil
			}
		case now := <-ticker.C:
			elapsed := now.Sub(last)
			last = now
			g.Update()
			if elapsed > 0 {
				g.ObserveFPS(float64(time.Second) / float64(elapsed))
			}
			if err := g.Err(); err != nil {
				return err
			}
			v.draw()
		}
	}
}
