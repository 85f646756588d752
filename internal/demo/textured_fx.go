package demo

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/LTSACH/graphics-course/internal/engine/renderer"
	"github.com/LTSACH/graphics-course/internal/engine/shader"
	"github.com/LTSACH/graphics-course/internal/logger"
)

func init() {
	register(&texturedFXDemo{})
}

const (
	fxNormal = iota
	fxWave
	fxPulse
	fxRainbow
	fxCount
)

var fxNames = [fxCount]string{"normal", "wave", "pulse", "rainbow"}

// texturedFXDemo renders three textured triangles through one shared mesh
// buffer and lets the user cycle shader effects and adjust brightness live.
type texturedFXDemo struct {
	program   uint32
	mesh      *renderer.Mesh
	triangles [][]float32
	texture   uint32

	effect     int32
	brightness float32

	mvpLoc        int32
	timeLoc       int32
	effectLoc     int32
	brightnessLoc int32
	texLoc        int32
}

const texturedFXVertexSrc = `
#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aTexCoord;

uniform mat4 mvp;
uniform float time;
uniform int effect;

out vec2 TexCoord;

void main() {
	vec3 pos = aPos;

	if (effect == 1) {
		// Wave: ripple vertices along x
		pos.y += sin(pos.x * 3.0 + time * 2.0) * 0.1;
	} else if (effect == 2) {
		// Pulse: scale the whole triangle
		pos *= 1.0 + sin(time * 3.0) * 0.2;
	}

	gl_Position = mvp * vec4(pos, 1.0);
	TexCoord = aTexCoord;
}
`

const texturedFXFragmentSrc = `
#version 410 core
out vec4 FragColor;

in vec2 TexCoord;

uniform sampler2D ourTexture;
uniform float time;
uniform int effect;
uniform float brightness;

void main() {
	vec2 texCoord = TexCoord;

	if (effect == 1) {
		// Wave: scroll texture coordinates
		texCoord.x += sin(texCoord.y * 5.0 + time * 2.0) * 0.1;
	} else if (effect == 2) {
		// Pulse: zoom in and out around the center
		float scale = 1.0 + sin(time * 3.0) * 0.3;
		texCoord = (texCoord - 0.5) * scale + 0.5;
	}

	vec4 texColor = texture(ourTexture, texCoord);

	if (effect == 3) {
		// Rainbow: hue cycling tint
		float hue = time * 0.5 + TexCoord.x + TexCoord.y;
		vec3 rainbow = vec3(
			sin(hue) * 0.5 + 0.5,
			sin(hue + 2.094) * 0.5 + 0.5,
			sin(hue + 4.188) * 0.5 + 0.5
		);
		texColor.rgb = mix(texColor.rgb, rainbow, 0.3);
	}

	texColor.rgb *= brightness;
	FragColor = texColor;
}
`

func (d *texturedFXDemo) Name() string { return "textured-fx" }
func (d *texturedFXDemo) Description() string {
	return "Three textured triangles with switchable shader effects"
}

func (d *texturedFXDemo) CameraDefaults() (float32, float32) { return 5.0, 0.3 }

func (d *texturedFXDemo) Init(r *renderer.Renderer, texturePath string) error {
	var err error
	d.program, err = shader.CompileProgram(texturedFXVertexSrc, texturedFXFragmentSrc)
	if err != nil {
		return err
	}

	d.triangles = [][]float32{
		{
			-1.0, -0.5, 0.0, 0.0, 0.0,
			0.0, -0.5, 0.0, 1.0, 0.0,
			-0.5, 0.5, 0.0, 0.5, 1.0,
		},
		{
			// Mirrored texture coordinates
			0.0, -0.5, 0.0, 1.0, 0.0,
			1.0, -0.5, 0.0, 0.0, 0.0,
			0.5, 0.5, 0.0, 0.5, 1.0,
		},
		{
			// Upside-down texture coordinates
			-0.5, 0.0, 0.0, 0.0, 1.0,
			0.5, 0.0, 0.0, 1.0, 1.0,
			0.0, 1.0, 0.0, 0.5, 0.0,
		},
	}

	d.mesh = renderer.NewMesh(d.triangles[0], []renderer.Attrib{
		{Location: 0, Size: 3},
		{Location: 1, Size: 2},
	}, true)

	d.texture, err = demoTexture(texturePath)
	if err != nil {
		return err
	}

	d.brightness = 1.0

	d.mvpLoc = shader.GetUniform(d.program, "mvp")
	d.timeLoc = shader.GetUniform(d.program, "time")
	d.effectLoc = shader.GetUniform(d.program, "effect")
	d.brightnessLoc = shader.GetUniform(d.program, "brightness")
	d.texLoc = shader.GetUniform(d.program, "ourTexture")

	r.SetClearColor(0.1, 0.1, 0.2, 1.0)
	return nil
}

func (d *texturedFXDemo) HandleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_E:
		d.effect = (d.effect + 1) % fxCount
		logger.Info("effect changed", zap.String("effect", fxNames[d.effect]))

	case sdl.SCANCODE_UP:
		d.brightness += 0.1
		if d.brightness > 2.0 {
			d.brightness = 2.0
		}
		logger.Debug("brightness", zap.Float32("value", d.brightness))

	case sdl.SCANCODE_DOWN:
		d.brightness -= 0.1
		if d.brightness < 0.1 {
			d.brightness = 0.1
		}
		logger.Debug("brightness", zap.Float32("value", d.brightness))
	}
}

func (d *texturedFXDemo) Render(frame Frame) {
	gl.UseProgram(d.program)

	gl.UniformMatrix4fv(d.mvpLoc, 1, false, frame.MVP.Ptr())
	gl.Uniform1f(d.timeLoc, float32(frame.Elapsed))
	gl.Uniform1i(d.effectLoc, d.effect)
	gl.Uniform1f(d.brightnessLoc, d.brightness)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, d.texture)
	gl.Uniform1i(d.texLoc, 0)

	for _, tri := range d.triangles {
		d.mesh.SetVertices(tri)
		d.mesh.Draw()
	}
}

func (d *texturedFXDemo) Close() {
	if d.mesh != nil {
		d.mesh.Delete()
	}
	renderer.DeleteTexture(d.texture)
	if d.program != 0 {
		gl.DeleteProgram(d.program)
	}
}
