package config

import "testing"

func TestNextSpawnInterval(t *testing.T) {
	tests := []struct {
		current float64
		want    float64
	}{
		{0.5, 1.0},
		{1.0, 2.0},
		{2.0, 0.5},
		{3.7, 0.5},
	}

	for _, tt := range tests {
		if got := NextSpawnInterval(tt.current); got != tt.want {
			t.Errorf("NextSpawnInterval(%v) = %v, want %v", tt.current, got, tt.want)
		}
	}
}

func TestMenuButtonLayoutCentered(t *testing.T) {
	x0, y0 := MenuButtonLayout(0, 3, MenuButtonWidth)
	x2, y2 := MenuButtonLayout(2, 3, MenuButtonWidth)

	if x0 != x2 {
		t.Errorf("buttons should share X, got %v and %v", x0, x2)
	}
	if x0+MenuButtonWidth/2 != float64(GameWindowWidth)/2 {
		t.Errorf("buttons should be horizontally centered, left=%v", x0)
	}

	top := y0
	bottom := y2 + MenuButtonHeight
	if top-0 != float64(GameWindowHeight)-bottom {
		t.Errorf("buttons should be vertically centered, top=%v bottom=%v", top, bottom)
	}
}

func TestProjectToScreenInsideWhale(t *testing.T) {
	for _, p := range [][3]float64{{0, 0, 0}, {0.99, 0.99, 0.99}, {0.5, 0.5, 0.5}} {
		x, y := ProjectToScreen(p[0], p[1], p[2])
		dx := (x - WhaleCenterX) / WhaleRadiusX
		dy := (y - WhaleCenterY) / WhaleRadiusY
		if dx*dx+dy*dy > 1.0 {
			t.Errorf("point %v projects outside whale body: (%v, %v)", p, x, y)
		}
	}
}
