package demo

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/LTSACH/graphics-course/internal/engine/renderer"
	"github.com/LTSACH/graphics-course/internal/engine/shader"
)

func init() {
	register(&colorsDemo{})
}

// colorsDemo draws one triangle with interpolated per-vertex colors.
type colorsDemo struct {
	program uint32
	mesh    *renderer.Mesh
}

const colorsVertexSrc = `
#version 410 core
layout (location = 0) in vec3 position;
layout (location = 1) in vec3 color;

out vec3 fragmentColor;

void main() {
	gl_Position = vec4(position, 1.0);
	fragmentColor = color;
}
`

const colorsFragmentSrc = `
#version 410 core
in vec3 fragmentColor;
out vec4 FragColor;

void main() {
	FragColor = vec4(fragmentColor, 1.0);
}
`

func (d *colorsDemo) Name() string        { return "colors" }
func (d *colorsDemo) Description() string { return "Per-vertex colored triangle" }

func (d *colorsDemo) CameraDefaults() (float32, float32) { return 3.0, 0 }

func (d *colorsDemo) Init(r *renderer.Renderer, _ string) error {
	var err error
	d.program, err = shader.CompileProgram(colorsVertexSrc, colorsFragmentSrc)
	if err != nil {
		return err
	}

	vertices := []float32{
		// Position          // Color
		-0.5, -0.5, 0.0, 1.0, 0.0, 0.0, // Red
		0.5, -0.5, 0.0, 0.0, 1.0, 0.0, // Green
		0.0, 0.5, 0.0, 0.0, 0.0, 1.0, // Blue
	}
	d.mesh = renderer.NewMesh(vertices, []renderer.Attrib{
		{Location: 0, Size: 3},
		{Location: 1, Size: 3},
	}, false)

	r.SetClearColor(0.2, 0.3, 0.3, 1.0)
	return nil
}

func (d *colorsDemo) HandleKey(sdl.Scancode) {}

func (d *colorsDemo) Render(Frame) {
	gl.UseProgram(d.program)
	d.mesh.Draw()
}

func (d *colorsDemo) Close() {
	if d.mesh != nil {
		d.mesh.Delete()
	}
	if d.program != 0 {
		gl.DeleteProgram(d.program)
	}
}
