package demo

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/LTSACH/graphics-course/internal/config"
	"github.com/LTSACH/graphics-course/internal/engine/camera"
	"github.com/LTSACH/graphics-course/internal/engine/input"
	"github.com/LTSACH/graphics-course/internal/engine/renderer"
	"github.com/LTSACH/graphics-course/internal/engine/window"
	"github.com/LTSACH/graphics-course/internal/logger"
)

// App is a demo session: the window, renderer, input pump and camera that
// the originals kept as per-script globals, owned by one struct.
type App struct {
	cfg      *config.Config
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.Turntable
	proj     camera.Projection
	demo     Demo

	running  bool
	dragging bool
}

// New creates a session running the given demo. Window, GL context and the
// demo's own resources are created here; any failure tears down what was
// already built and aborts startup.
func New(cfg *config.Config, d Demo) (*App, error) {
	logger.Info("initializing demo session",
		zap.String("demo", d.Name()),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	a := &App{
		cfg:  cfg,
		demo: d,
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "Graphics Course - " + d.Name(),
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	a.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.camera = newCamera(cfg, d)
	a.proj = camera.Projection{
		FOVDegrees: cfg.Camera.FOV,
		Aspect:     float32(cfg.Graphics.Width) / float32(cfg.Graphics.Height),
		Near:       cfg.Camera.Near,
		Far:        cfg.Camera.Far,
	}

	if err := d.Init(a.renderer, cfg.Demo.Texture); err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to init demo %s: %w", d.Name(), err)
	}

	a.input = input.New()

	logger.Info("session initialized", zap.String("demo", d.Name()))
	return a, nil
}

// newCamera builds the turntable from the demo's defaults with config
// overrides applied on top.
func newCamera(cfg *config.Config, d Demo) *camera.Turntable {
	cam := camera.NewTurntable()
	cam.BaseDistance, cam.AngularSpeed = d.CameraDefaults()

	if cfg.Camera.BaseDistance > 0 {
		cam.BaseDistance = cfg.Camera.BaseDistance
	}
	if cfg.Camera.AngularSpeed > 0 {
		cam.AngularSpeed = cfg.Camera.AngularSpeed
	}
	if cfg.Camera.DragSensitivity > 0 {
		cam.DragSensitivity = cfg.Camera.DragSensitivity
	}
	if cfg.Camera.ZoomSensitivity > 0 {
		cam.ZoomSensitivity = cfg.Camera.ZoomSensitivity
	}
	return cam
}

// Run drives the session loop until quit: poll input, update the camera,
// compute the MVP once and hand it to the demo's draw call.
func (a *App) Run() error {
	a.running = true
	start := time.Now()

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting render loop")

	for a.running {
		if a.input.Update() {
			break
		}
		a.handleEvents()

		elapsed := time.Since(start).Seconds()
		a.camera.Advance(elapsed)

		frame := Frame{
			Elapsed: elapsed,
			MVP:     a.camera.MVP(a.proj),
		}

		a.renderer.Begin()
		a.demo.Render(frame)
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("frames", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvents routes input events to the camera and the demo.
func (a *App) handleEvents() {
	for _, ev := range a.input.Events() {
		switch ev.Type {
		case input.EventQuit:
			a.running = false

		case input.EventWindowResize:
			a.renderer.Resize(ev.Width, ev.Height)
			a.proj.Aspect = float32(ev.Width) / float32(ev.Height)

		case input.EventKeyDown:
			if ev.Key == sdl.SCANCODE_ESCAPE {
				a.running = false
				break
			}
			a.demo.HandleKey(ev.Key)

		case input.EventMouseDown:
			if ev.Button == sdl.BUTTON_LEFT {
				a.dragging = true
			}

		case input.EventMouseUp:
			if ev.Button == sdl.BUTTON_LEFT {
				a.dragging = false
			}

		case input.EventMouseMove:
			if a.dragging {
				a.camera.HandleDrag(ev.DeltaX, ev.DeltaY)
			}

		case input.EventMouseWheel:
			a.camera.HandleZoom(ev.DeltaY)
		}
	}
}

// Close cleans up session resources.
func (a *App) Close() {
	logger.Info("closing session")

	if a.demo != nil {
		a.demo.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
