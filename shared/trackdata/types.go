package trackdata

// Plate is a drivable ground surface on the XZ plane.
type Plate struct {
	X, Z float64
	W, D float64
	Top  float64 // height of the drivable face
}

// Rect is a solid wall footprint on the XZ plane.
type Rect struct {
	X, Z float64
	W, D float64
}

// Spawn is a kart start position with an initial heading in radians.
type Spawn struct {
	X, Z    float64
	Heading float64
	Index   int
}

// Track is the parsed layout of one track map, in simulation units.
type Track struct {
	Name    string
	Width   float64
	Depth   float64
	Grounds []Plate
	Walls   []Rect
	Spawns  []Spawn
}
