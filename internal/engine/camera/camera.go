// Package camera implements the model/view/projection pipeline shared by
// all demos: a turntable rotation driven by the wall clock, a mouse-drag
// orbit, and a scroll-driven zoom folded into a single MVP matrix per frame.
package camera

import (
	gomath "math"

	"github.com/LTSACH/graphics-course/pkg/math"
)

// Projection holds the fixed perspective parameters for a session.
type Projection struct {
	FOVDegrees float32 // vertical field of view
	Aspect     float32 // viewport width / height
	Near       float32
	Far        float32 // must be > Near > 0
}

// Matrix returns the perspective projection matrix for these parameters.
func (p Projection) Matrix() math.Mat4 {
	fov := p.FOVDegrees * gomath.Pi / 180
	return math.Perspective(fov, p.Aspect, p.Near, p.Far)
}

// Turntable is the camera state every demo mutates between frames. The
// model spins around Y at a constant angular speed, the view orbits with
// the mouse, and the scroll wheel zooms by moving the camera along Z.
type Turntable struct {
	// Per-frame state
	RotationAngle float32 // radians, elapsed time * AngularSpeed
	Yaw           float32 // radians, accumulated from drag X deltas
	Pitch         float32 // radians, accumulated from drag Y deltas
	Zoom          float32 // positive scale on the camera distance

	// Per-demo parameters
	BaseDistance float32 // camera distance from origin at Zoom = 1
	AngularSpeed float32 // turntable speed in rad/s

	// Sensitivity and constraints
	DragSensitivity float32
	ZoomSensitivity float32
	MinZoom         float32
	MaxZoom         float32
	MinPitch        float32
	MaxPitch        float32
}

// NewTurntable creates a turntable camera with the defaults used by the
// interactive demos: a front view 5 units back, spinning at 0.3 rad/s.
func NewTurntable() *Turntable {
	return &Turntable{
		Zoom:            1.0,
		BaseDistance:    5.0,
		AngularSpeed:    0.3,
		DragSensitivity: 0.01,
		ZoomSensitivity: 0.1,
		MinZoom:         0.1,
		MaxZoom:         5.0,
		MinPitch:        -gomath.Pi / 2,
		MaxPitch:        gomath.Pi / 2,
	}
}

// Advance derives the turntable angle from the elapsed session time in
// seconds. The angle is recomputed, not accumulated, so a clock reset
// simply restarts the spin.
func (c *Turntable) Advance(elapsed float64) {
	c.RotationAngle = float32(elapsed) * c.AngularSpeed
}

// HandleDrag accumulates an orbit rotation from a pointer drag delta in
// pixels. Pitch is clamped so the camera never flips over the poles.
func (c *Turntable) HandleDrag(deltaX, deltaY float32) {
	c.Yaw += deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity

	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
}

// HandleZoom scales the zoom factor from a scroll wheel delta and clamps
// it to the allowed range.
func (c *Turntable) HandleZoom(delta float32) {
	c.Zoom *= 1.0 + delta*c.ZoomSensitivity

	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
	if c.Zoom > c.MaxZoom {
		c.Zoom = c.MaxZoom
	}
}

// ModelMatrix returns the turntable rotation about the Y axis.
func (c *Turntable) ModelMatrix() math.Mat4 {
	return math.RotateY(c.RotationAngle)
}

// ViewMatrix returns the orbit view transform: pitch about X, then yaw
// about Y, then a pull-back along Z by BaseDistance/Zoom. The yaw-after-
// pitch composition matches the original demos and is kept as-is; it is
// not a conventional look-at.
func (c *Turntable) ViewMatrix() math.Mat4 {
	// World-to-view rotations are the inverse of the orbit angles.
	v := math.RotateY(-c.Yaw).Mul(math.RotateX(-c.Pitch))
	v[14] = -c.BaseDistance / c.Zoom
	return v
}

// MVP composes Projection * View * Model for the current state. The result
// is a pure function of the state and p: same inputs, same matrix.
func (c *Turntable) MVP(p Projection) math.Mat4 {
	return p.Matrix().Mul(c.ViewMatrix()).Mul(c.ModelMatrix())
}
