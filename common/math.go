package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// WorldToScreen maps a Y-up world point to Y-down screen pixels with the
// camera at the center of a BaseWidth x BaseHeight view.
func WorldToScreen(x, y, camX, camY, zoom float64) (float64, float64) {
	return (x-camX)*zoom + BaseWidth/2, (camY-y)*zoom + BaseHeight/2
}
