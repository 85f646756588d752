package demo

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/LTSACH/graphics-course/internal/engine/renderer"
	"github.com/LTSACH/graphics-course/internal/engine/shader"
	gmath "github.com/LTSACH/graphics-course/pkg/math"
)

func init() {
	register(&phongDemo{})
}

// phongDemo lights a single triangle with fixed ambient plus diffuse
// shading from a point light.
type phongDemo struct {
	program uint32
	mesh    *renderer.Mesh

	lightPos    gmath.Vec3
	lightColor  gmath.Vec3
	objectColor gmath.Vec3

	mvpLoc         int32
	lightPosLoc    int32
	lightColorLoc  int32
	objectColorLoc int32
}

const phongVertexSrc = `
#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 mvp;

out vec3 FragPos;
out vec3 Normal;

void main() {
	gl_Position = mvp * vec4(aPos, 1.0);
	FragPos = aPos;
	Normal = aNormal;
}
`

const phongFragmentSrc = `
#version 410 core
out vec4 FragColor;

in vec3 FragPos;
in vec3 Normal;

uniform vec3 lightPos;
uniform vec3 lightColor;
uniform vec3 objectColor;

void main() {
	float ambientStrength = 0.3;
	vec3 ambient = ambientStrength * lightColor;

	vec3 norm = normalize(Normal);
	vec3 lightDir = normalize(lightPos - FragPos);
	float diff = max(dot(norm, lightDir), 0.0);
	vec3 diffuse = diff * lightColor;

	vec3 result = (ambient + diffuse) * objectColor;
	FragColor = vec4(result, 1.0);
}
`

func (d *phongDemo) Name() string        { return "phong" }
func (d *phongDemo) Description() string { return "Diffuse-lit triangle with a point light" }

func (d *phongDemo) CameraDefaults() (float32, float32) { return 3.0, 0.5 }

func (d *phongDemo) Init(r *renderer.Renderer, _ string) error {
	var err error
	d.program, err = shader.CompileProgram(phongVertexSrc, phongFragmentSrc)
	if err != nil {
		return err
	}

	vertices := []float32{
		// Position          // Normal
		-0.5, -0.5, 0.0, 0.0, 0.0, 1.0,
		0.5, -0.5, 0.0, 0.0, 0.0, 1.0,
		0.0, 0.5, 0.0, 0.0, 0.0, 1.0,
	}
	d.mesh = renderer.NewMesh(vertices, []renderer.Attrib{
		{Location: 0, Size: 3},
		{Location: 1, Size: 3},
	}, false)

	d.lightPos = gmath.Vec3{X: 1, Y: 1, Z: 2}
	d.lightColor = gmath.Vec3{X: 1, Y: 1, Z: 1}
	d.objectColor = gmath.Vec3{X: 0.8, Y: 0.2, Z: 0.2}

	d.mvpLoc = shader.GetUniform(d.program, "mvp")
	d.lightPosLoc = shader.GetUniform(d.program, "lightPos")
	d.lightColorLoc = shader.GetUniform(d.program, "lightColor")
	d.objectColorLoc = shader.GetUniform(d.program, "objectColor")

	r.SetClearColor(0.2, 0.3, 0.5, 1.0)
	return nil
}

func (d *phongDemo) HandleKey(sdl.Scancode) {}

func (d *phongDemo) Render(frame Frame) {
	gl.UseProgram(d.program)

	gl.UniformMatrix4fv(d.mvpLoc, 1, false, frame.MVP.Ptr())
	gl.Uniform3f(d.lightPosLoc, d.lightPos.X, d.lightPos.Y, d.lightPos.Z)
	gl.Uniform3f(d.lightColorLoc, d.lightColor.X, d.lightColor.Y, d.lightColor.Z)
	gl.Uniform3f(d.objectColorLoc, d.objectColor.X, d.objectColor.Y, d.objectColor.Z)

	d.mesh.Draw()
}

func (d *phongDemo) Close() {
	if d.mesh != nil {
		d.mesh.Delete()
	}
	if d.program != 0 {
		gl.DeleteProgram(d.program)
	}
}
