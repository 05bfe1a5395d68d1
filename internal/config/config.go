package config

const (
	WindowWidth  = 1024
	WindowHeight = 512
	WindowTitle  = "God Rays - Space: animate on/off, O: open config, C: ray color, Esc/Q: quit"

	// Effect defaults, all on a 0-100 scale
	DefaultIntensity = 50
	DefaultRays      = 30
	DefaultReach     = 40
	DefaultPosition  = 80
	DefaultSpeed     = 10

	// Shader ranges the 0-100 inputs are remapped into
	IntensityMax = 0.5
	RaysMax      = 0.3
	ReachMax     = 0.5

	// Vertical ray anchors as fractions of the container height
	Ray1Y = -0.4
	Ray2Y = -0.5
	// Horizontal gap between the two anchors as a fraction of the width
	Ray2XOffset = 0.02

	// Camera and quad, kept from the three.js-style scene layout
	CameraFOV  = 75
	CameraNear = 0.1
	CameraFar  = 1000
	CameraZ    = 5
	PlaneSize  = 1024
)
