package scenes

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical demo action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionSpawnBoss
	ActionShake
	ActionRestart
	ActionCount // Must be last - used for array sizing
)

// bindings maps each action to the keys that trigger it
var bindings = map[ActionID][]ebiten.Key{
	ActionMoveLeft:  {ebiten.KeyLeft, ebiten.KeyA},
	ActionMoveRight: {ebiten.KeyRight, ebiten.KeyD},
	ActionMoveUp:    {ebiten.KeyUp, ebiten.KeyW},
	ActionMoveDown:  {ebiten.KeyDown, ebiten.KeyS},
	ActionSpawnBoss: {ebiten.KeyB},
	ActionShake:     {ebiten.KeyK},
	ActionRestart:   {ebiten.KeyR, ebiten.KeyEnter},
}

// inputState double buffers action presses so edges can be detected
type inputState struct {
	current  [ActionCount]bool
	previous [ActionCount]bool
}

func (in *inputState) poll() {
	in.previous = in.current
	in.current = [ActionCount]bool{}
	for action, keys := range bindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				in.current[action] = true
			}
		}
	}
}

func (in *inputState) pressed(a ActionID) bool {
	return in.current[a]
}

func (in *inputState) justPressed(a ActionID) bool {
	return in.current[a] && !in.previous[a]
}

// direction returns the movement axis values in [-1, 1].
func (in *inputState) direction() (float64, float64) {
	var x, y float64
	if in.pressed(ActionMoveLeft) {
		x--
	}
	if in.pressed(ActionMoveRight) {
		x++
	}
	if in.pressed(ActionMoveUp) {
		y--
	}
	if in.pressed(ActionMoveDown) {
		y++
	}
	return x, y
}
