package game

import (
	"chosenoffset.com/raycaster/internal/entity/player"
	"chosenoffset.com/raycaster/internal/render"
)

// axisBinding maps the keys of one motion axis to its -1 and 1 values.
type axisBinding struct {
	negative []render.Key
	positive []render.Key
}

var (
	walkKeys = axisBinding{
		negative: []render.Key{render.KeyDown, render.KeyS},
		positive: []render.Key{render.KeyUp, render.KeyW},
	}
	turnKeys = axisBinding{
		negative: []render.Key{render.KeyLeft, render.KeyA},
		positive: []render.Key{render.KeyRight, render.KeyD},
	}
)

// apply updates one axis from this frame's key edges. Releasing any key of
// the axis stops it, then a new press sets it, so a release and a press in
// the same frame leave the pressed direction.
func (b axisBinding) apply(input render.InputManager, current int) int {
	for _, k := range b.negative {
		if input.IsKeyJustReleased(k) {
			current = 0
		}
	}
	for _, k := range b.positive {
		if input.IsKeyJustReleased(k) {
			current = 0
		}
	}
	for _, k := range b.negative {
		if input.IsKeyJustPressed(k) {
			current = -1
		}
	}
	for _, k := range b.positive {
		if input.IsKeyJustPressed(k) {
			current = 1
		}
	}
	return current
}

// readIntent turns key press and release edges into the held motion intent.
func readIntent(input render.InputManager, current player.Intent) player.Intent {
	return player.Intent{
		Turn: turnKeys.apply(input, current.Turn),
		Walk: walkKeys.apply(input, current.Walk),
	}
}
