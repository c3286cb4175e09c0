// Package scene defines the Scene interface for game screens.
//
// Each screen (playing, game over) implements Scene to handle its own
// update logic and rendering. Transitions are requested explicitly with
// a Command instead of being inferred from return values.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// CommandKind tells the game loop what to do after a scene update
type CommandKind int

const (
	// Continue keeps the current scene
	Continue CommandKind = iota
	// Switch replaces the current scene with Command.Next
	Switch
	// Exit terminates the game loop
	Exit
)

// String returns the string representation of the command kind
func (k CommandKind) String() string {
	switch k {
	case Continue:
		return "Continue"
	case Switch:
		return "Switch"
	case Exit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Command is the result of a scene update
type Command struct {
	Kind CommandKind
	Next Scene // only for Switch
}

// Stay keeps the current scene
func Stay() Command {
	return Command{Kind: Continue}
}

// SwitchTo replaces the current scene with next
func SwitchTo(next Scene) Command {
	return Command{Kind: Switch, Next: next}
}

// Quit ends the game
func Quit() Command {
	return Command{Kind: Exit}
}

// Scene represents a game screen.
//
// The game loop delegates Update and Draw calls to the current scene.
type Scene interface {
	// Update advances the scene by dt seconds (typically 1/60) and returns
	// the transition to perform. An error terminates the game.
	Update(dt float64) (Command, error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene, including on Exit.
	OnExit()
}
