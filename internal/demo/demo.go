// Package demo hosts the triangle demos and the session loop that runs
// them. Every demo shares one window, input pump and camera pipeline; the
// demos themselves only own shaders, geometry and their uniforms.
package demo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/LTSACH/graphics-course/internal/engine/renderer"
	"github.com/LTSACH/graphics-course/pkg/math"
)

// Frame carries the per-frame values computed by the session loop.
type Frame struct {
	Elapsed float64   // seconds since session start
	MVP     math.Mat4 // Projection * View * Model for this frame
}

// Demo is a single renderable scene.
type Demo interface {
	Name() string
	Description() string

	// CameraDefaults reports the orbit distance and turntable speed this
	// demo was authored with.
	CameraDefaults() (baseDistance, angularSpeed float32)

	// Init compiles shaders and uploads geometry and textures. Requires a
	// current GL context. Any error aborts session startup.
	Init(r *renderer.Renderer, texturePath string) error

	// HandleKey reacts to a key press routed by the session.
	HandleKey(key sdl.Scancode)

	Render(frame Frame)
	Close()
}

var registry = map[string]Demo{}

func register(d Demo) {
	registry[d.Name()] = d
}

// Lookup returns the demo registered under name.
func Lookup(name string) (Demo, error) {
	d, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown demo %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return d, nil
}

// Names returns all registered demo names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns a one-line listing for -list output.
func Describe() []string {
	lines := make([]string, 0, len(registry))
	for _, name := range Names() {
		lines = append(lines, fmt.Sprintf("%-14s %s", name, registry[name].Description()))
	}
	return lines
}
