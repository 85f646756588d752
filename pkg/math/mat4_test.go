package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation lives in the last column (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3, 4)

	if m[0] != 2 || m[5] != 3 || m[10] != 4 {
		t.Errorf("Scale diagonal: got (%f, %f, %f), want (2, 3, 4)", m[0], m[5], m[10])
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	p := [3]float32{1, 2, 3}
	result := m.TransformPoint(p)

	expected := [3]float32{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2)) // 90 degrees
	p := [3]float32{1, 0, 0}           // Point on X axis
	result := m.TransformPoint(p)

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if abs(result[0]) > 1e-6 || abs(result[1]) > 1e-6 || abs(result[2]+1) > 1e-6 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestRotateX90(t *testing.T) {
	m := RotateX(float32(math.Pi / 2))
	p := [3]float32{0, 1, 0}
	result := m.TransformPoint(p)

	// After 90 degree X rotation, (0,1,0) should become approximately (0,0,1)
	if abs(result[0]) > 1e-6 || abs(result[1]) > 1e-6 || abs(result[2]-1) > 1e-6 {
		t.Errorf("RotateX 90: got %v, want (0, 0, 1)", result)
	}
}

func TestPerspective(t *testing.T) {
	fov := float32(45.0 * math.Pi / 180.0)
	aspect := float32(1.25)
	near := float32(0.1)
	far := float32(100.0)

	m := Perspective(fov, aspect, near, far)

	// f = 1/tan(22.5 deg) = 2.4142
	f := float32(1.0 / math.Tan(float64(fov)/2.0))
	checks := []struct {
		name string
		got  float32
		want float32
	}{
		{"m[0][0]", m.At(0, 0), f / aspect},          // 1.9314
		{"m[1][1]", m.At(1, 1), f},                   // 2.4142
		{"m[2][2]", m.At(2, 2), (far + near) / (near - far)}, // -1.002
		{"m[2][3]", m.At(2, 3), 2 * far * near / (near - far)}, // -0.2002
		{"m[3][2]", m.At(3, 2), -1},
		{"m[3][3]", m.At(3, 3), 0},
	}
	for _, c := range checks {
		if abs(c.got-c.want) > 1e-4 {
			t.Errorf("%s: got %f, want %f", c.name, c.got, c.want)
		}
	}

	// Sanity against the known constants
	if abs(m.At(0, 0)-1.9314) > 1e-3 {
		t.Errorf("m[0][0]: got %f, want ~1.9314", m.At(0, 0))
	}
	if abs(m.At(1, 1)-2.4142) > 1e-3 {
		t.Errorf("m[1][1]: got %f, want ~2.4142", m.At(1, 1))
	}
	if abs(m.At(2, 2)+1.002) > 1e-3 {
		t.Errorf("m[2][2]: got %f, want ~-1.002", m.At(2, 2))
	}
	if abs(m.At(2, 3)+0.2002) > 1e-3 {
		t.Errorf("m[2][3]: got %f, want ~-0.2002", m.At(2, 3))
	}
}

func TestMulVec4(t *testing.T) {
	m := Translate(1, 2, 3)
	v := Vec4{0, 0, 0, 1}
	result := m.MulVec4(v)

	expected := Vec4{1, 2, 3, 1}
	if result != expected {
		t.Errorf("MulVec4: got %v, want %v", result, expected)
	}
}

func TestAt(t *testing.T) {
	m := Translate(7, 8, 9)
	if m.At(0, 3) != 7 || m.At(1, 3) != 8 || m.At(2, 3) != 9 {
		t.Errorf("At should read row/column order: got (%f, %f, %f)",
			m.At(0, 3), m.At(1, 3), m.At(2, 3))
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
