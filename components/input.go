package components

import (
	cfg "github.com/automoto/driftline/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous tick's pressed state for all
// actions. JustPressed/JustReleased are computed on demand by comparing the
// two. There is one Input entity per scene.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

// ControlInput is the per-step snapshot of the five kart controls. It is
// sampled once at the top of each fixed step and never outlives it.
type ControlInput struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Drift   bool
}

// Controls converts the polled action state into a control snapshot.
func (in *InputData) Controls() ControlInput {
	return ControlInput{
		Forward: in.Current[cfg.ActionForward],
		Back:    in.Current[cfg.ActionBack],
		Left:    in.Current[cfg.ActionLeft],
		Right:   in.Current[cfg.ActionRight],
		Drift:   in.Current[cfg.ActionDrift],
	}
}
