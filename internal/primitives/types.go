package primitives

// Mesh resolution for the generated primitives.
const (
	sphereRings  = 32
	sphereSlices = 32
	torusRadSeg  = 16
	torusSides   = 100
	planeResX    = 1
	planeResZ    = 1
)

// Specular strength per shading model. Lambert surfaces have no highlight.
const (
	lambertSpecular = float32(0)
	phongSpecular   = float32(0.5)
)
