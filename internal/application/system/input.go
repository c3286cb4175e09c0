package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/planetonomy/internal/domain/entity"
	"github.com/younwookim/planetonomy/internal/infrastructure/config"
)

// InputSystem handles player input
type InputSystem struct {
	config *config.PhysicsConfig
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.PhysicsConfig) *InputSystem {
	return &InputSystem{config: cfg}
}

// InputState holds the direction keys held during a tick
type InputState struct {
	Left  bool
	Right bool
	Up    bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
	}
}

// ExitRequested reports whether Escape or Q was pressed this tick
func ExitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
}

// ConfirmRequested reports whether Enter or Space was pressed this tick
func ConfirmRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

// UpdatePlayer applies walking and jumping to the player.
// It runs after physics so player.OnGround reflects this tick's contacts.
func (s *InputSystem) UpdatePlayer(player *entity.Player, input InputState, dt float64) {
	s.handleFacing(player, input)
	s.handleMovement(player, input, dt)
	s.handleJump(player, input)
}

// handleFacing turns the sprite toward the held direction
func (s *InputSystem) handleFacing(player *entity.Player, input InputState) {
	if input.Left && !input.Right {
		player.FacingRight = false
	} else if input.Right && !input.Left {
		player.FacingRight = true
	}
}

// handleMovement handles horizontal movement
func (s *InputSystem) handleMovement(player *entity.Player, input InputState, dt float64) {
	maxSpeed := s.config.Movement.MaxSpeed

	// Air control
	rate := 1.0
	if !player.OnGround {
		rate = s.config.Movement.AirControl
	}
	accel := rate * s.config.Movement.Acceleration * dt

	switch {
	case input.Left && player.VX >= -maxSpeed:
		player.VX = max(-maxSpeed, player.VX-accel)
	case input.Right && player.VX <= maxSpeed:
		player.VX = min(maxSpeed, player.VX+accel)
	case player.OnGround:
		// Deceleration
		decel := s.config.Movement.Deceleration * dt
		if player.VX > 0 {
			player.VX -= min(player.VX, decel)
		} else if player.VX < 0 {
			player.VX += min(-player.VX, decel)
		}
	}
}

// handleJump handles jumping
func (s *InputSystem) handleJump(player *entity.Player, input InputState) {
	if player.OnGround && input.Up {
		player.VY -= s.config.Jump.Impulse
	}
}
