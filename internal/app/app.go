// Package app implements the viewer main loop.
package app

import (
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/partview/internal/config"
	"github.com/Faultbox/partview/internal/engine/input"
	"github.com/Faultbox/partview/internal/engine/rendercontext"
	"github.com/Faultbox/partview/internal/engine/renderer"
	"github.com/Faultbox/partview/internal/engine/window"
	"github.com/Faultbox/partview/internal/logger"
)

// App is the main viewer instance.
type App struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	trace    *rendercontext.TraceDevice
	input    *input.Input
	viewer   *Viewer
	log      *zap.Logger
}

// New creates the window, renderer and viewer.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		config: cfg,
		log:    logger.Named("app"),
	}
	a.log.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	// Create window (this also creates OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := a.window.GetSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:  width,
		Height: height,
		VSync:  cfg.Window.VSync,
	})
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("failed to create renderer: %w", err), a.Close())
	}

	var target rendercontext.Target = a.renderer
	if cfg.Debug.TraceGL {
		a.trace = rendercontext.NewTraceDevice(a.renderer, logger.Named("gl"))
		target = a.trace
	}

	a.input = input.New()
	a.viewer = NewViewer(cfg, target, DemoScene())
	a.viewer.Resize(width, height)

	if err := a.viewer.InitTextures(a.renderer); err != nil {
		return nil, multierr.Append(fmt.Errorf("failed to create orientation labels: %w", err), a.Close())
	}

	a.log.Info("viewer initialized")
	return a, nil
}

// Run starts the main loop.
func (a *App) Run() error {
	a.running = true

	// Timing
	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting main loop")

	for a.running {
		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}

		for _, event := range a.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				a.renderer.Resize(event.Width, event.Height)
			case input.EventMouseDown:
				a.window.SetCaptureMouse(true)
			case input.EventMouseUp:
				a.window.SetCaptureMouse(false)
			}
			if a.viewer.HandleEvent(event) {
				a.running = false
			}
		}

		// 2. Render
		if err := a.render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		// 3. Present (swap buffers)
		a.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// render draws the current frame.
func (a *App) render() error {
	if a.trace != nil {
		a.trace.Reset()
	}

	a.renderer.Begin()
	err := a.viewer.Render()
	a.renderer.End()

	if a.trace != nil {
		if leak := a.trace.Balanced(); leak != nil {
			a.log.Warn("GL state not restored after frame", zap.Error(leak))
		}
	}
	return err
}

// Close saves the window size when configured and releases the renderer and window.
func (a *App) Close() error {
	a.log.Info("closing viewer")

	var err error
	if a.viewer != nil {
		saved, saveErr := a.config.PersistWindowSize(a.viewer.Size())
		err = multierr.Append(err, saveErr)
		if saved {
			a.log.Info("window size saved",
				zap.Int("width", a.config.Window.Width),
				zap.Int("height", a.config.Window.Height),
			)
		}
	}
	if a.renderer != nil {
		err = multierr.Append(err, a.renderer.Close())
		a.renderer = nil
	}
	if a.window != nil {
		err = multierr.Append(err, a.window.Close())
		a.window = nil
	}
	return err
}
