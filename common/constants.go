package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// PixelsPerMeter converts between world units (pixels) and the meters
	// used for body mass.
	PixelsPerMeter = 100.0

	// Gravity is world gravity in pixels/s^2. World Y grows upward.
	Gravity = -9.81 * PixelsPerMeter
)
