package primitives

import "testing"

func TestPoint_Equals(t *testing.T) {
	if !NewPoint(3, -4).Equals(Point{X: 3, Y: -4}) {
		t.Error("expected integral point to equal its float form")
	}
	if NewPoint(3, 4).Equals(NewPoint(4, 3)) {
		t.Error("expected swapped coordinates to differ")
	}
	if !Origin.Equals(Point{X: 0, Y: 0}) {
		t.Error("expected Origin to be (0,0)")
	}
}

func TestPoint_Distance(t *testing.T) {
	tests := []struct {
		a, b Point
		want float64
	}{
		{Origin, Origin, 0},
		{Origin, NewPoint(3, 3), 6},
		{NewPoint(-2, 5), NewPoint(4, -1), 12},
		{Point{X: 0.5, Y: 0}, Point{X: 0, Y: -1.5}, 2},
	}
	for _, tt := range tests {
		if got := tt.a.Distance(tt.b); got != tt.want {
			t.Errorf("%v.Distance(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if got := tt.b.Distance(tt.a); got != tt.want {
			t.Errorf("%v.Distance(%v) = %v, want %v", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestPoint_String(t *testing.T) {
	if got := NewPoint(3, -5).String(); got != "(3,-5)" {
		t.Errorf("String() = %q, want %q", got, "(3,-5)")
	}
	if got := (Point{X: 1.5, Y: 2}).String(); got != "(1.5,2)" {
		t.Errorf("String() = %q, want %q", got, "(1.5,2)")
	}
}
