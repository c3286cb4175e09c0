package system

import (
	"github.com/younwookim/planetonomy/internal/application/state"
	"github.com/younwookim/planetonomy/internal/domain/entity"
	"github.com/younwookim/planetonomy/internal/infrastructure/config"
)

// PhysicsSystem applies gravity and tile collision to bodies and judges
// the fatal contacts of the player.
type PhysicsSystem struct {
	config    *config.PhysicsConfig
	collision *CollisionSystem
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig, collision *CollisionSystem) *PhysicsSystem {
	return &PhysicsSystem{
		config:    cfg,
		collision: collision,
	}
}

// StepResult describes one physics tick of a body
type StepResult struct {
	Contacts ContactMask
	// ImpactSpeed is the vertical velocity after gravity, before collision
	ImpactSpeed float64
}

// UpdateBody applies gravity and moves the body through the level
func (s *PhysicsSystem) UpdateBody(body *entity.Body, dt float64) StepResult {
	body.VY += s.config.Physics.Gravity * dt
	impact := body.VY

	contacts := s.collision.Resolve(body, dt)
	return StepResult{Contacts: contacts, ImpactSpeed: impact}
}

// Update moves the player, refreshes its ground state and reports a death
// caused by level geometry.
func (s *PhysicsSystem) Update(player *entity.Player, dt float64) (state.Outcome, StepResult) {
	res := s.UpdateBody(&player.Body, dt)

	player.OnGround = res.Contacts&ContactBottom != 0 && player.VY >= 0

	return s.judge(res), res
}

// judge maps the contacts of a tick to an outcome.
// Hazard contact wins over a fatal landing.
func (s *PhysicsSystem) judge(res StepResult) state.Outcome {
	if res.Contacts&ContactHazard != 0 {
		return state.DiedHazard
	}
	if res.Contacts&ContactBottom != 0 && res.ImpactSpeed > s.config.Physics.FatalSpeed {
		return state.DiedFall
	}
	return state.Playing
}
