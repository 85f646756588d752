package demo

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/LTSACH/graphics-course/internal/engine/renderer"
	"github.com/LTSACH/graphics-course/internal/engine/shader"
)

func init() {
	register(&simpleDemo{})
}

// simpleDemo draws a single flat-colored triangle with no transform at
// all: the minimal "is the pipeline alive" scene.
type simpleDemo struct {
	program uint32
	mesh    *renderer.Mesh
}

const simpleVertexSrc = `
#version 410 core
layout (location = 0) in vec3 position;

void main() {
	gl_Position = vec4(position, 1.0);
}
`

const simpleFragmentSrc = `
#version 410 core
out vec4 FragColor;

void main() {
	FragColor = vec4(1.0, 0.5, 0.2, 1.0);
}
`

func (d *simpleDemo) Name() string        { return "simple" }
func (d *simpleDemo) Description() string { return "Flat orange triangle, no transform" }

func (d *simpleDemo) CameraDefaults() (float32, float32) { return 3.0, 0 }

func (d *simpleDemo) Init(r *renderer.Renderer, _ string) error {
	var err error
	d.program, err = shader.CompileProgram(simpleVertexSrc, simpleFragmentSrc)
	if err != nil {
		return err
	}

	vertices := []float32{
		-0.5, -0.5, 0.0, // Left
		0.5, -0.5, 0.0, // Right
		0.0, 0.5, 0.0, // Top
	}
	d.mesh = renderer.NewMesh(vertices, []renderer.Attrib{
		{Location: 0, Size: 3},
	}, false)

	r.SetClearColor(0.2, 0.3, 0.3, 1.0)
	return nil
}

func (d *simpleDemo) HandleKey(sdl.Scancode) {}

func (d *simpleDemo) Render(Frame) {
	gl.UseProgram(d.program)
	d.mesh.Draw()
}

func (d *simpleDemo) Close() {
	if d.mesh != nil {
		d.mesh.Delete()
	}
	if d.program != 0 {
		gl.DeleteProgram(d.program)
	}
}
