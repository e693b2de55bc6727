package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// RaceStateID is the coarse state of the track scene.
type RaceStateID int

const (
	RaceCountdown RaceStateID = iota
	RaceRunning
)

// RaceData drives the pre-race countdown. CountdownScale is a tween that
// pops each countdown number; Value counts 3, 2, 1 down to 0 (GO).
type RaceData struct {
	State          RaceStateID
	CountdownValue int
	CountdownTimer int // fixed ticks remaining for the current value
	CountdownScale *gween.Tween
}

var Race = donburi.NewComponentType[RaceData]()
