package demo

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/LTSACH/graphics-course/internal/engine/renderer"
	"github.com/LTSACH/graphics-course/internal/engine/shader"
)

func init() {
	register(&texturedDemo{})
}

// texturedDemo maps a texture onto a spinning triangle with a slow
// brightness pulse driven by the frame clock.
type texturedDemo struct {
	program uint32
	mesh    *renderer.Mesh
	texture uint32

	mvpLoc  int32
	timeLoc int32
	texLoc  int32
}

const texturedVertexSrc = `
#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aTexCoord;

uniform mat4 mvp;

out vec2 TexCoord;

void main() {
	gl_Position = mvp * vec4(aPos, 1.0);
	TexCoord = aTexCoord;
}
`

const texturedFragmentSrc = `
#version 410 core
out vec4 FragColor;

in vec2 TexCoord;

uniform sampler2D ourTexture;
uniform float time;

void main() {
	vec4 texColor = texture(ourTexture, TexCoord);

	// Slow brightness pulse
	float pulse = sin(time * 2.0) * 0.1 + 0.9;
	texColor.rgb *= pulse;

	FragColor = texColor;
}
`

func (d *texturedDemo) Name() string        { return "textured" }
func (d *texturedDemo) Description() string { return "Texture-mapped spinning triangle" }

func (d *texturedDemo) CameraDefaults() (float32, float32) { return 3.0, 0.5 }

func (d *texturedDemo) Init(r *renderer.Renderer, texturePath string) error {
	var err error
	d.program, err = shader.CompileProgram(texturedVertexSrc, texturedFragmentSrc)
	if err != nil {
		return err
	}

	vertices := []float32{
		// Position          // UV
		-0.5, -0.5, 0.0, 0.0, 0.0, // Bottom left
		0.5, -0.5, 0.0, 1.0, 0.0, // Bottom right
		0.0, 0.5, 0.0, 0.5, 1.0, // Top center
	}
	d.mesh = renderer.NewMesh(vertices, []renderer.Attrib{
		{Location: 0, Size: 3},
		{Location: 1, Size: 2},
	}, false)

	d.texture, err = demoTexture(texturePath)
	if err != nil {
		return err
	}

	d.mvpLoc = shader.GetUniform(d.program, "mvp")
	d.timeLoc = shader.GetUniform(d.program, "time")
	d.texLoc = shader.GetUniform(d.program, "ourTexture")

	r.SetClearColor(0.2, 0.3, 0.5, 1.0)
	return nil
}

func (d *texturedDemo) HandleKey(sdl.Scancode) {}

func (d *texturedDemo) Render(frame Frame) {
	gl.UseProgram(d.program)

	gl.UniformMatrix4fv(d.mvpLoc, 1, false, frame.MVP.Ptr())
	gl.Uniform1f(d.timeLoc, float32(frame.Elapsed))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, d.texture)
	gl.Uniform1i(d.texLoc, 0)

	d.mesh.Draw()
}

func (d *texturedDemo) Close() {
	if d.mesh != nil {
		d.mesh.Delete()
	}
	renderer.DeleteTexture(d.texture)
	if d.program != 0 {
		gl.DeleteProgram(d.program)
	}
}
