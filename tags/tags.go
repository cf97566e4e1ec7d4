package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Background = donburi.NewTag().SetName("Background")
	Ground     = donburi.NewTag().SetName("Ground")
)
