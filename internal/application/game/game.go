// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/planetonomy/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	dt      float64
	exited  bool
}

// New creates a new Game with the given initial scene ticking every dt
// seconds. The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, dt float64) *Game {
	g := &Game{
		current: initialScene,
		dt:      dt,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and applies the returned command.
// Implements ebiten.Game interface; an Exit command ends the loop with
// ebiten.Termination.
func (g *Game) Update() error {
	if g.exited {
		return ebiten.Termination
	}

	cmd, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	switch cmd.Kind {
	case scene.Switch:
		if cmd.Next != nil {
			g.current.OnExit()
			g.current = cmd.Next
			g.current.OnEnter()
		}
	case scene.Exit:
		g.current.OnExit()
		g.exited = true
		return ebiten.Termination
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout uses the whole window; scenes fit their low-resolution picture
// into it with an integer scale.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
