package mathutil

import (
	"math"
	"testing"
)

func TestVec3_AxisMatchesIndex(t *testing.T) {
	v := NewVec3(1.5, -2, 3.25)
	for i, name := range []string{"x", "y", "z"} {
		if got := v.Axis(name); got != v[i] {
			t.Errorf("Axis(%q) = %v, want %v", name, got, v[i])
		}
	}
	if v.X() != 1.5 || v.Y() != -2 || v.Z() != 3.25 {
		t.Errorf("accessors returned %v %v %v", v.X(), v.Y(), v.Z())
	}
}

func TestVec3_AxisUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown axis")
		}
	}()
	NewVec3(1, 2, 3).Axis("w")
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Sub", a.Sub(b), NewVec3(-3, 7, -3)},
		{"Scale", a.Scale(2), NewVec3(2, 4, 6)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}

	if d := a.Dot(b); d != 12 {
		t.Errorf("Dot = %v, want 12", d)
	}
	// operands are values and stay untouched
	if a != NewVec3(1, 2, 3) {
		t.Errorf("receiver mutated: %v", a)
	}
}

func TestVec3_Normalize(t *testing.T) {
	n := NewVec3(3, 0, 4).Normalize()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("|n| = %v, want 1", n.Len())
	}
	if math.Abs(n[0]-0.6) > 1e-12 || math.Abs(n[2]-0.8) > 1e-12 {
		t.Errorf("n = %v, want (0.6, 0, 0.8)", n)
	}
}

// Normalizing a zero vector is left undefined: it must not panic and
// produces NaN components.
func TestVec3_NormalizeZeroIsNaN(t *testing.T) {
	n := Vec3{}.Normalize()
	if !n.IsNaN() {
		t.Errorf("expected NaN components, got %v", n)
	}
	for i := 0; i < 3; i++ {
		if !math.IsNaN(n[i]) {
			t.Errorf("component %d = %v, want NaN", i, n[i])
		}
	}
}
