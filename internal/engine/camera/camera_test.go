package camera

import (
	gomath "math"
	"testing"

	"github.com/LTSACH/graphics-course/pkg/math"
)

func TestZoomClamp(t *testing.T) {
	tests := []struct {
		name   string
		deltas []float32
		want   float32
	}{
		{"single step in", []float32{1}, 1.1},
		{"single step out", []float32{-1}, 0.9},
		{"clamped at max", []float32{100}, 5.0},
		{"clamped at min", []float32{-100}, 0.1},
		{"repeated zoom out floors at min", []float32{-5, -5, -5, -5, -5, -5, -5, -5}, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewTurntable()
			for _, d := range tt.deltas {
				c.HandleZoom(d)
			}
			if absf(c.Zoom-tt.want) > 1e-6 {
				t.Errorf("zoom: got %f, want %f", c.Zoom, tt.want)
			}
			if c.Zoom < 0.1 || c.Zoom > 5.0 {
				t.Errorf("zoom %f outside [0.1, 5.0]", c.Zoom)
			}
		})
	}
}

func TestPitchClamp(t *testing.T) {
	c := NewTurntable()

	// Drag far down: pitch must stop at +pi/2
	c.HandleDrag(0, 10000)
	if absf(c.Pitch-gomath.Pi/2) > 1e-6 {
		t.Errorf("pitch after huge downward drag: got %f, want pi/2", c.Pitch)
	}

	// Drag far up: pitch must stop at -pi/2
	c.HandleDrag(0, -100000)
	if absf(c.Pitch+gomath.Pi/2) > 1e-6 {
		t.Errorf("pitch after huge upward drag: got %f, want -pi/2", c.Pitch)
	}

	// Yaw is unconstrained and accumulates linearly
	c.HandleDrag(50, 0)
	if absf(c.Yaw-0.5) > 1e-6 {
		t.Errorf("yaw after 50px drag: got %f, want 0.5", c.Yaw)
	}
}

func TestModelMatrixAtZero(t *testing.T) {
	c := NewTurntable()
	c.Advance(0)

	m := c.ModelMatrix()
	id := math.Identity()
	for i := 0; i < 16; i++ {
		if m[i] != id[i] {
			t.Fatalf("model at angle 0 should be identity, element %d = %f", i, m[i])
		}
	}
}

func TestModelMatrixHalfTurn(t *testing.T) {
	c := NewTurntable()
	c.RotationAngle = gomath.Pi

	got := c.ModelMatrix().TransformPoint([3]float32{1, 0, 0})
	want := [3]float32{-1, 0, 0}
	for i := range got {
		if absf(got[i]-want[i]) > 1e-6 {
			t.Fatalf("half turn: got %v, want %v", got, want)
		}
	}
}

func TestAdvanceDerivesAngleFromTime(t *testing.T) {
	c := NewTurntable()
	c.AngularSpeed = 0.5

	c.Advance(2.0)
	if absf(c.RotationAngle-1.0) > 1e-6 {
		t.Errorf("angle after 2s at 0.5 rad/s: got %f, want 1.0", c.RotationAngle)
	}

	// A clock reset resets the angle, no wraparound bookkeeping
	c.Advance(0)
	if c.RotationAngle != 0 {
		t.Errorf("angle after time reset: got %f, want 0", c.RotationAngle)
	}
}

func TestProjectionMatrixConstants(t *testing.T) {
	p := Projection{FOVDegrees: 45, Aspect: 1.25, Near: 0.1, Far: 100}
	m := p.Matrix()

	checks := []struct {
		name      string
		row, col  int
		want      float32
		tolerance float32
	}{
		{"[0][0]", 0, 0, 1.9314, 1e-3},
		{"[1][1]", 1, 1, 2.4142, 1e-3},
		{"[2][2]", 2, 2, -1.002, 1e-3},
		{"[2][3]", 2, 3, -0.2002, 1e-3},
		{"[3][2]", 3, 2, -1, 0},
	}
	for _, c := range checks {
		got := m.At(c.row, c.col)
		if absf(got-c.want) > c.tolerance {
			t.Errorf("projection%s: got %f, want %f", c.name, got, c.want)
		}
	}
}

func TestViewMatrixFrontView(t *testing.T) {
	// time=0, no drag, zoom=1, baseDistance=5: pure pull-back along Z
	c := NewTurntable()
	c.Advance(0)

	v := c.ViewMatrix()
	if v.At(2, 3) != -5.0 {
		t.Errorf("view[2][3]: got %f, want -5.0", v.At(2, 3))
	}

	// Rotation part must be identity with no drag
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			want := float32(0)
			if row == col {
				want = 1
			}
			if absf(v.At(row, col)-want) > 1e-6 {
				t.Errorf("view[%d][%d]: got %f, want %f", row, col, v.At(row, col), want)
			}
		}
	}
}

func TestViewMatrixComposition(t *testing.T) {
	// The view must equal RotY(yaw)^-1 applied after RotX(pitch)^-1 with the
	// translation written directly into row 2, column 3.
	c := NewTurntable()
	c.Yaw = 0.7
	c.Pitch = -0.3
	c.Zoom = 2.0

	want := math.RotateY(-c.Yaw).Mul(math.RotateX(-c.Pitch))
	want[14] = -c.BaseDistance / c.Zoom

	if c.ViewMatrix() != want {
		t.Error("view matrix does not match RotY*RotX composition")
	}
}

func TestMVPOrderAndDeterminism(t *testing.T) {
	p := Projection{FOVDegrees: 45, Aspect: 800.0 / 600.0, Near: 0.1, Far: 100}

	c := NewTurntable()
	c.Advance(3.7)
	c.HandleDrag(120, -45)
	c.HandleZoom(2)

	// MVP must be exactly Projection * View * Model in that order
	want := p.Matrix().Mul(c.ViewMatrix()).Mul(c.ModelMatrix())
	got := c.MVP(p)
	if got != want {
		t.Error("MVP is not Projection * View * Model")
	}

	// Identical state must reproduce a bit-identical matrix
	again := c.MVP(p)
	if got != again {
		t.Error("MVP not deterministic for identical state")
	}
}

func TestMVPFrontViewEqualsProjectionTimesView(t *testing.T) {
	// With model = identity, MVP collapses to Projection * View
	p := Projection{FOVDegrees: 45, Aspect: 1.25, Near: 0.1, Far: 100}
	c := NewTurntable()
	c.Advance(0)

	want := p.Matrix().Mul(c.ViewMatrix())
	if c.MVP(p) != want {
		t.Error("MVP at time 0 should equal Projection * View")
	}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
