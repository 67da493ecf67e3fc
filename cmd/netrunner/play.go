package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/netrunner/audio"
	"github.com/lixenwraith/netrunner/config"
	"github.com/lixenwraith/netrunner/constants"
	"github.com/lixenwraith/netrunner/core"
	"github.com/lixenwraith/netrunner/engine"
	"github.com/lixenwraith/netrunner/game"
	"github.com/lixenwraith/netrunner/input"
	"github.com/lixenwraith/netrunner/prefs"
	"github.com/lixenwraith/netrunner/render"
	"github.com/lixenwraith/netrunner/render/renderers"
)

func newPlayCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start the game in the terminal (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(opts)
		},
	}
}

// app wires the controller, UI and audio onto the driver goroutine
// Every field except quit is touched only from the driver goroutine
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	game    *game.Game
	machine *input.Machine
	orch    *render.RenderOrchestrator
	palette *render.Palette
	audio   *audio.Engine
	store   *prefs.Store
	driver  *engine.Driver

	frameInterval time.Duration
	lastFrame     time.Time

	quit     chan struct{}
	quitOnce sync.Once
}

func runPlay(opts *rootOptions) error {
	cfg := opts.cfg
	logFile, logger := setupLogging(cfg.Debug, cfg.LogDir)
	if logFile != nil {
		defer logFile.Close()
	}

	path, err := opts.prefsPath()
	if err != nil {
		return err
	}
	store, err := prefs.Open(path)
	if err != nil {
		logger.Warn("audio prefs reset to defaults", slog.String("path", path), slog.Any("error", err))
	}
	ap := store.Get()

	audioOpts := audio.Options{
		SampleRate: cfg.Audio.SampleRate,
		Buffer:     cfg.Audio.BufferDuration(),
		Volume:     ap.Volume,
		Disabled:   !ap.Enabled,
		Logger:     logger,
	}
	if !cfg.Audio.Device {
		audioOpts.Sink = audio.NoDeviceSink()
	}
	eng := audio.NewEngine(audioOpts)
	defer eng.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	core.SetCrashHandler(screen.Fini)

	palette := render.NewPalette(cfg.UI.Color)
	screen.SetStyle(palette.Base)
	screen.HideCursor()
	screen.Clear()

	a := &app{
		cfg:           cfg,
		logger:        logger,
		game:          game.New(logger, eng),
		machine:       input.NewMachine(nil),
		orch:          render.NewRenderOrchestrator(screen, palette),
		palette:       palette,
		audio:         eng,
		store:         store,
		frameInterval: cfg.UI.FrameInterval(),
		quit:          make(chan struct{}),
	}
	renderers.RegisterAll(a.orch)

	a.driver = engine.NewDriver(a.game.Scheduler(), nil, constants.DriverInterval, a.tick)
	a.driver.Start()
	defer a.driver.Stop()
	a.driver.Submit(func() {
		a.game.EnterMenu()
		a.draw()
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	core.Go(func() {
		err := store.Watch(ctx, logger, func(p prefs.Audio) {
			eng.SetEnabled(p.Enabled)
			eng.SetVolume(p.Volume)
			a.driver.Submit(a.draw)
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn("prefs watcher stopped", slog.Any("error", err))
		}
	})

	core.Go(func() { a.pollEvents(screen) })

	select {
	case <-a.quit:
	case <-ctx.Done():
	}
	logger.Info("shutting down", slog.Any("stats", a.game.Stats()))
	return nil
}

// pollEvents forwards terminal events to the driver until the screen is finalized
func (a *app) pollEvents(screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if !a.driver.Submit(func() { a.handle(ev) }) {
			return
		}
	}
}

// tick runs after every driver step
func (a *app) tick() {
	a.game.Update()
	if time.Since(a.lastFrame) >= a.frameInterval {
		a.draw()
	}
}

// handle applies one terminal event and redraws
func (a *app) handle(ev tcell.Event) {
	switch a.machine.Handle(ev, a.game) {
	case input.ActionExit:
		a.quitOnce.Do(func() { close(a.quit) })
		return
	case input.ActionResize:
		a.orch.Resize()
	case input.ActionToggleMute:
		a.setAudio(func(p prefs.Audio) prefs.Audio {
			p.Enabled = !p.Enabled
			return p
		})
	case input.ActionVolumeUp:
		a.setAudio(func(p prefs.Audio) prefs.Audio {
			p.Volume += constants.AudioVolumeStep
			return p
		})
	case input.ActionVolumeDown:
		a.setAudio(func(p prefs.Audio) prefs.Audio {
			p.Volume -= constants.AudioVolumeStep
			return p
		})
	}
	a.draw()
}

// setAudio persists a preference change and applies it to the engine
func (a *app) setAudio(fn func(prefs.Audio) prefs.Audio) {
	next := fn(a.store.Get()).Normalize()
	if err := a.store.Set(next); err != nil {
		a.logger.Warn("save audio prefs", slog.Any("error", err))
	}
	a.audio.SetEnabled(next.Enabled)
	a.audio.SetVolume(next.Volume)
}

func (a *app) draw() {
	w, h := a.orch.Size()
	view := render.AudioView{
		Available: !a.audio.Silent(),
		Enabled:   a.audio.Enabled(),
		Volume:    a.audio.Volume(),
	}
	a.orch.RenderFrame(render.NewRenderContext(a.game.Snapshot(), a.machine.State(), view, a.palette, w, h))
	a.lastFrame = time.Now()
}
