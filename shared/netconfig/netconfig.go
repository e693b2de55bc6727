package netconfig

import "fmt"

// Protocol constants shared by the game client and the presence server.
const (
	// Version gates joins: client and server must match exactly.
	Version = "0.3.0"

	// DefaultPort is the presence server's websocket port.
	DefaultPort uint = 7430

	// DefaultTickRate is the presence server's broadcast rate in Hz.
	DefaultTickRate = 20

	// PublishEvery is how many client fixed steps pass between transform
	// publishes (60 Hz sim / 3 = 20 Hz publish, matching the server tick).
	PublishEvery = 3
)

// DefaultAddress returns the default host:port a client dials.
func DefaultAddress() string {
	return fmt.Sprintf("localhost:%d", DefaultPort)
}
