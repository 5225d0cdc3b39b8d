package common

import "testing"

func TestWorldToScreen(t *testing.T) {
	cases := []struct {
		name             string
		x, y, camX, camY float64
		zoom             float64
		wantX, wantY     float64
	}{
		{"origin_is_center", 0, 0, 0, 0, 1, BaseWidth / 2, BaseHeight / 2},
		{"up_is_screen_up", 0, 100, 0, 0, 1, BaseWidth / 2, BaseHeight/2 - 100},
		{"right_is_screen_right", 250, 0, 0, 0, 1, BaseWidth/2 + 250, BaseHeight / 2},
		{"camera_offset", 10, 10, 10, 10, 1, BaseWidth / 2, BaseHeight / 2},
		{"zoom", -100, -50, 0, 0, 2, BaseWidth/2 - 200, BaseHeight/2 + 100},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, y := WorldToScreen(c.x, c.y, c.camX, c.camY, c.zoom)
			if x != c.wantX || y != c.wantY {
				t.Fatalf("expected (%v,%v), got (%v,%v)", c.wantX, c.wantY, x, y)
			}
		})
	}
}

func TestClampAndLerp(t *testing.T) {
	if Clamp(12, 1, 8) != 8 || Clamp(-1, 1, 8) != 1 || Clamp(3, 1, 8) != 3 {
		t.Fatal("clamp out of range")
	}
	if Lerp(0, 10, 0.25) != 2.5 {
		t.Fatalf("lerp: got %v", Lerp(0, 10, 0.25))
	}
}
