package components

import "github.com/yohamta/donburi"

// LoopState is the frame loop's lifecycle state.
type LoopState int

const (
	LoopRunning LoopState = iota
	LoopStopped
)

type LoopData struct {
	State LoopState
	Ticks int
}

var Loop = donburi.NewComponentType[LoopData]()
