package demo

import (
	"math"
	"math/rand"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/LTSACH/graphics-course/internal/engine/renderer"
	"github.com/LTSACH/graphics-course/internal/engine/shader"
	"github.com/LTSACH/graphics-course/internal/logger"
	gmath "github.com/LTSACH/graphics-course/pkg/math"
)

func init() {
	register(&phongLabDemo{})
}

// material groups the surface parameters the lab lets the user cycle
// through. Shininess is a specular exponent, the rest are strengths.
type material struct {
	name     string
	color    gmath.Vec3
	ambient  float32
	specular float32
	shine    int32
}

var labMaterials = []material{
	{name: "red matte", color: gmath.Vec3{X: 0.8, Y: 0.2, Z: 0.2}, ambient: 0.3, specular: 0.8, shine: 32},
	{name: "green glossy", color: gmath.Vec3{X: 0.2, Y: 0.8, Z: 0.2}, ambient: 0.2, specular: 0.9, shine: 64},
	{name: "blue soft", color: gmath.Vec3{X: 0.2, Y: 0.2, Z: 0.8}, ambient: 0.4, specular: 0.6, shine: 16},
}

// phongLabDemo is an interactive lighting playground: three triangles with
// different normal sets, cyclable materials and a tunable light.
type phongLabDemo struct {
	program   uint32
	mesh      *renderer.Mesh
	triangles [][]float32

	current        int
	lightIntensity float32
	showNormals    bool

	lightPos gmath.Vec3
	viewPos  gmath.Vec3

	mvpLoc       int32
	lightPosLoc  int32
	viewPosLoc   int32
	objColorLoc  int32
	lightColLoc  int32
	ambientLoc   int32
	specularLoc  int32
	shineLoc     int32
	intensityLoc int32
}

const phongLabVertexSrc = `
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

const phongLabFragmentSrc = `
#version 410 core
out vec4 FragColor;

in vec3 FragPos;
in vec3 Normal;

uniform vec3 lightPos;
uniform vec3 viewPos;
uniform vec3 objectColor;
uniform vec3 lightColor;
uniform float ambientStrength;
uniform float specularStrength;
uniform int shininess;
uniform float lightIntensity;

void main() {
	vec3 ambient = ambientStrength * lightColor;

	vec3 norm = normalize(Normal);
	vec3 lightDir = normalize(lightPos - FragPos);
	float diff = max(dot(norm, lightDir), 0.0);
	vec3 diffuse = diff * lightColor;

	vec3 viewDir = normalize(viewPos - FragPos);
	vec3 reflectDir = reflect(-lightDir, norm);
	float spec = pow(max(dot(viewDir, reflectDir), 0.0), float(shininess));
	vec3 specular = specularStrength * spec * lightColor;

	vec3 result = (ambient + diffuse + specular) * lightIntensity * objectColor;
	FragColor = vec4(result, 1.0);
}
`

func (d *phongLabDemo) Name() string { return "phong-lab" }
func (d *phongLabDemo) Description() string {
	return "Lighting lab: three triangles, cyclable materials, tunable light"
}

func (d *phongLabDemo) CameraDefaults() (float32, float32) { return 5.0, 0.3 }

func (d *phongLabDemo) Init(r *renderer.Renderer, _ string) error {
	var err error
	d.program, err = shader.CompileProgram(phongLabVertexSrc, phongLabFragmentSrc)
	if err != nil {
		return err
	}

	d.buildTriangles()

	d.mesh = renderer.NewMesh(d.triangles[0], []renderer.Attrib{
		{Location: 0, Size: 3},
		{Location: 1, Size: 3},
	}, true)

	d.lightIntensity = 1.0
	d.lightPos = gmath.Vec3{X: 1, Y: 1, Z: 2}
	d.viewPos = gmath.Vec3{X: 0, Y: 0, Z: 3}

	d.mvpLoc = shader.GetUniform(d.program, "mvp")
	d.lightPosLoc = shader.GetUniform(d.program, "lightPos")
	d.viewPosLoc = shader.GetUniform(d.program, "viewPos")
	d.objColorLoc = shader.GetUniform(d.program, "objectColor")
	d.lightColLoc = shader.GetUniform(d.program, "lightColor")
	d.ambientLoc = shader.GetUniform(d.program, "ambientStrength")
	d.specularLoc = shader.GetUniform(d.program, "specularStrength")
	d.shineLoc = shader.GetUniform(d.program, "shininess")
	d.intensityLoc = shader.GetUniform(d.program, "lightIntensity")

	r.SetClearColor(0.1, 0.1, 0.3, 1.0)
	return nil
}

// buildTriangles rebuilds the three vertex sets. The first triangle gets
// fresh random normals each call, the other two are deterministic.
func (d *phongLabDemo) buildTriangles() {
	random := make([]float32, 0, 18)
	for _, p := range [][3]float32{{-1, -0.5, 0}, {0, -0.5, 0}, {-0.5, 0.5, 0}} {
		n := randomNormal()
		random = append(random, p[0], p[1], p[2], n.X, n.Y, n.Z)
	}

	flat := []float32{
		0.0, -0.5, 0.0, 0.0, 0.0, 1.0,
		1.0, -0.5, 0.0, 0.0, 0.0, 1.0,
		0.5, 0.5, 0.0, 0.0, 0.0, 1.0,
	}

	varied := make([]float32, 0, 18)
	for i, p := range [][3]float32{{-0.5, 0, 0}, {0.5, 0, 0}, {0, 1, 0}} {
		angle := float64(i) * 2 * math.Pi / 3
		n := gmath.Vec3{
			X: float32(math.Cos(angle)) * 0.5,
			Y: float32(math.Sin(angle)) * 0.5,
			Z: 0.8,
		}.Normalize()
		varied = append(varied, p[0], p[1], p[2], n.X, n.Y, n.Z)
	}

	d.triangles = [][]float32{random, flat, varied}
}

// randomNormal picks a front-facing unit vector.
func randomNormal() gmath.Vec3 {
	return gmath.Vec3{
		X: rand.Float32()*2 - 1,
		Y: rand.Float32()*2 - 1,
		Z: rand.Float32(),
	}.Normalize()
}

func (d *phongLabDemo) HandleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_R:
		d.buildTriangles()
		logger.Info("regenerated random normals")

	case sdl.SCANCODE_M:
		d.current = (d.current + 1) % len(labMaterials)
		logger.Info("material changed", zap.String("material", labMaterials[d.current].name))

	case sdl.SCANCODE_N:
		d.showNormals = !d.showNormals
		logger.Info("normal display toggled", zap.Bool("show", d.showNormals))

	case sdl.SCANCODE_UP:
		d.lightIntensity += 0.1
		if d.lightIntensity > 2.0 {
			d.lightIntensity = 2.0
		}
		logger.Debug("light intensity", zap.Float32("value", d.lightIntensity))

	case sdl.SCANCODE_DOWN:
		d.lightIntensity -= 0.1
		if d.lightIntensity < 0.1 {
			d.lightIntensity = 0.1
		}
		logger.Debug("light intensity", zap.Float32("value", d.lightIntensity))
	}
}

func (d *phongLabDemo) Render(frame Frame) {
	gl.UseProgram(d.program)

	gl.UniformMatrix4fv(d.mvpLoc, 1, false, frame.MVP.Ptr())
	gl.Uniform3f(d.lightPosLoc, d.lightPos.X, d.lightPos.Y, d.lightPos.Z)
	gl.Uniform3f(d.viewPosLoc, d.viewPos.X, d.viewPos.Y, d.viewPos.Z)
	gl.Uniform3f(d.lightColLoc, 1, 1, 1)
	gl.Uniform1f(d.intensityLoc, d.lightIntensity)

	for i, tri := range d.triangles {
		m := labMaterials[(i+d.current)%len(labMaterials)]
		gl.Uniform3f(d.objColorLoc, m.color.X, m.color.Y, m.color.Z)
		gl.Uniform1f(d.ambientLoc, m.ambient)
		gl.Uniform1f(d.specularLoc, m.specular)
		gl.Uniform1i(d.shineLoc, m.shine)

		d.mesh.SetVertices(tri)
		d.mesh.Draw()
	}
}

func (d *phongLabDemo) Close() {
	if d.mesh != nil {
		d.mesh.Delete()
	}
	if d.program != 0 {
		gl.DeleteProgram(d.program)
	}
}
