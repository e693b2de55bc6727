package messages

// KartTransform is published by a client each presence tick with its local
// kart's authoritative transform. The server copies it verbatim onto the
// client's NetKart entity. There is no server-side simulation or
// reconciliation; presence is display-only.
type KartTransform struct {
	X, Y, Z   float64
	Heading   float64 // steering angle in radians
	DriftLean float64 // drift visual angle, for ghost body tilt
}
