package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestViewportProjectCenter(t *testing.T) {
	v := NewViewport(80, 24, 2)
	v.CenterX, v.CenterZ = 100, -500

	col, row := v.Project(100, -500)
	if col != 40 || row != 12 {
		t.Errorf("Project(centre) = (%d, %d), expected (40, 12)", col, row)
	}

	// Forward along -Z moves up the screen.
	_, rowAhead := v.Project(100, -540)
	if rowAhead >= row {
		t.Errorf("point ahead should be above the centre row, got row %d", rowAhead)
	}

	// One column is CellW metres, one row is 2*CellW metres.
	col, row = v.Project(102, -496)
	if col != 41 || row != 13 {
		t.Errorf("Project(offset) = (%d, %d), expected (41, 13)", col, row)
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(60, 20, 3)
	v.CenterX, v.CenterZ = -12, 40

	for _, cell := range [][2]int{{0, 0}, {59, 19}, {30, 10}, {7, 15}} {
		x, z := v.Unproject(cell[0], cell[1])
		col, row := v.Project(x, z)
		if col != cell[0] || row != cell[1] {
			t.Errorf("round trip of %v gave (%d, %d)", cell, col, row)
		}
	}
}

func TestNewViewportRejectsZeroScale(t *testing.T) {
	v := NewViewport(10, 10, 0)
	if v.CellW != 1 || v.CellH != 2 {
		t.Errorf("expected fallback scale 1x2, got %vx%v", v.CellW, v.CellH)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
