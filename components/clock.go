package components

import (
	"github.com/automoto/parallax-runner/timing"
	"github.com/yohamta/donburi"
)

type FrameClockData struct {
	*timing.FrameClock
}

var FrameClock = donburi.NewComponentType[FrameClockData]()
