package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/events"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/status"
)

var (
	configFlag = flag.String("config", "", "Path to TOML config file")
	keymapFlag = flag.String("keymap", "", "Path to TOML keymap file")
	seedFlag   = flag.Uint64("seed", 0, "Reward placement seed (0 = clock)")
	widthFlag  = flag.Int("width", 0, "Board width in cells, walls included")
	heightFlag = flag.Int("height", 0, "Board height in cells, walls included")
	debugFlag  = flag.Bool("debug", false, "Write a debug log under "+constants.LogDir)
	muteFlag   = flag.Bool("mute", false, "Disable sound")
)

var errNotTerminal = errors.New("stdout is not a terminal")

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if logFile := setupLogging(cfg.App.Debug); logFile != nil {
		defer logFile.Close()
	}

	keys, err := loadKeyTable(cfg.App.Keymap)
	if err != nil {
		return err
	}

	queue := events.NewEventQueue()
	reg := status.NewRegistry()
	factory, err := newSessionFactory(cfg, queue, reg)
	if err != nil {
		return err
	}
	gs, err := factory()
	if err != nil {
		return err
	}

	// Initialize terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	core.SetCrashScreen(screen)
	// Normal exit terminal cleanup
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	screen.HideCursor()

	audioCfg := audio.LoadAudioConfig()
	if cfg.App.Mute {
		audioCfg.Enabled = false
	}
	sounds := audio.NewSoundManager(audioCfg)
	if err := sounds.Initialize(); err != nil {
		log.Printf("audio unavailable, continuing without sound: %v", err)
	}
	defer sounds.Cleanup()

	router := events.NewRouter[*engine.GameState](queue)
	router.Register(audio.NewEventHandler(sounds))
	router.Register(logHandler{})

	sched := engine.NewTimerScheduler()
	defer sched.Stop()

	loop := engine.NewLoop(gs, sched, render.NewRenderer(screen), router, factory)
	adapter := input.NewAdapter(keys)

	eventChan := make(chan tcell.Event, constants.EventQueueSize)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	})

	loop.Start()
	log.Printf("session %s started on %dx%d", gs.ID, cfg.Game.Width, cfg.Game.Height)

	for {
		select {
		case fn := <-sched.Fired():
			fn()

		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				action := adapter.Translate(ev)
				if action == input.ActionQuit {
					log.Printf("quit\n%s", strings.Join(reg.Snapshot(), "\n"))
					return nil
				}
				adapter.Dispatch(action, loop)

			case *tcell.EventResize:
				screen.Sync()
				loop.Redraw()
			}
		}
	}
}

// applyFlags overrides config values with flags given on the command line
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Game.Seed = *seedFlag
		case "width":
			cfg.Game.Width = *widthFlag
		case "height":
			cfg.Game.Height = *heightFlag
		case "debug":
			cfg.App.Debug = *debugFlag
		case "mute":
			cfg.App.Mute = *muteFlag
		case "keymap":
			cfg.App.Keymap = *keymapFlag
		}
	})
}
