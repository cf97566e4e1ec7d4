package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HintData drives the fading controls hint.
type HintData struct {
	Text  string
	Tween *gween.Sequence // Alpha over time
	Alpha float32
	Done  bool
}

var Hint = donburi.NewComponentType[HintData]()
