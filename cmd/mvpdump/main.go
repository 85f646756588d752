// Package main prints the model, view, projection and combined MVP
// matrices for a given camera state. Useful for checking transform math
// without opening a window.
package main

import (
	"flag"
	"fmt"

	"github.com/LTSACH/graphics-course/internal/engine/camera"
	"github.com/LTSACH/graphics-course/pkg/math"
)

func main() {
	var (
		elapsed  = flag.Float64("time", 0, "Elapsed time in seconds")
		yaw      = flag.Float64("yaw", 0, "Orbit yaw in radians")
		pitch    = flag.Float64("pitch", 0, "Orbit pitch in radians")
		zoom     = flag.Float64("zoom", 1, "Zoom factor")
		fov      = flag.Float64("fov", 45, "Vertical field of view in degrees")
		aspect   = flag.Float64("aspect", 800.0/600.0, "Aspect ratio")
		near     = flag.Float64("near", 0.1, "Near plane")
		far      = flag.Float64("far", 100, "Far plane")
		distance = flag.Float64("distance", 5, "Base camera distance")
		speed    = flag.Float64("speed", 0.3, "Turntable speed in rad/s")
	)
	flag.Parse()

	cam := camera.NewTurntable()
	cam.BaseDistance = float32(*distance)
	cam.AngularSpeed = float32(*speed)
	cam.Yaw = float32(*yaw)
	cam.Pitch = float32(*pitch)
	cam.Zoom = float32(*zoom)
	cam.Advance(*elapsed)

	proj := camera.Projection{
		FOVDegrees: float32(*fov),
		Aspect:     float32(*aspect),
		Near:       float32(*near),
		Far:        float32(*far),
	}

	printMat("model", cam.ModelMatrix())
	printMat("view", cam.ViewMatrix())
	printMat("projection", proj.Matrix())
	printMat("mvp", cam.MVP(proj))
}

func printMat(name string, m math.Mat4) {
	fmt.Printf("%s:\n", name)
	for row := 0; row < 4; row++ {
		fmt.Printf("  [%9.4f %9.4f %9.4f %9.4f]\n",
			m.At(row, 0), m.At(row, 1), m.At(row, 2), m.At(row, 3))
	}
}
