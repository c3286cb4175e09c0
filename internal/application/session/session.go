// Package session runs the headless simulation of one level: the player,
// the lander and the hazard creatures, advanced one fixed tick at a time.
package session

import (
	"math"

	"go.uber.org/zap"

	"github.com/younwookim/planetonomy/internal/application/state"
	"github.com/younwookim/planetonomy/internal/application/system"
	"github.com/younwookim/planetonomy/internal/domain/entity"
	"github.com/younwookim/planetonomy/internal/infrastructure/config"
)

// Session is a single attempt at a level. It is not safe for concurrent use.
type Session struct {
	cfg    *config.GameConfig
	world  *system.World
	logger *zap.Logger

	physics *system.PhysicsSystem
	input   *system.InputSystem

	outcome state.Outcome
	tick    int
}

// New spawns the actors of level and prepares the systems
func New(level *entity.Level, cfg *config.GameConfig, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	world, err := system.LoadWorld(level, cfg.Entities)
	if err != nil {
		return nil, err
	}

	collision := system.NewCollisionSystem(level.Grid, cfg.Physics.Physics.AutoStepAmount)

	s := &Session{
		cfg:     cfg,
		world:   world,
		logger:  logger,
		physics: system.NewPhysicsSystem(cfg.Physics, collision),
		input:   system.NewInputSystem(cfg.Physics),
	}

	logger.Debug("session started",
		zap.Float64("x", world.Player.X),
		zap.Float64("y", world.Player.Y),
		zap.Int("creatures", len(world.Actors.Creatures())),
		zap.Bool("lander", world.Lander != nil),
	)
	return s, nil
}

// Step advances the simulation by dt seconds with the given held keys.
// Once the player is dead further steps do nothing.
func (s *Session) Step(in system.InputState, dt float64) state.Outcome {
	if s.outcome.IsDead() {
		return s.outcome
	}

	player := s.world.Player
	outcome, res := s.physics.Update(player, dt)
	if outcome == state.Playing && s.world.Actors.TouchesCreature(player.Bounds()) {
		outcome = state.DiedCreature
	}

	s.input.UpdatePlayer(player, in, dt)

	if s.world.Lander != nil {
		s.physics.UpdateBody(s.world.Lander, dt)
	}
	s.world.Actors.Update(dt)

	s.tick++
	s.outcome = outcome

	if outcome.IsDead() {
		s.logger.Info("player died",
			zap.Stringer("reason", outcome),
			zap.Int("tick", s.tick),
			zap.Stringer("contacts", res.Contacts),
			zap.Float64("impact", res.ImpactSpeed),
		)
	}
	return outcome
}

// Outcome returns the result of the last step
func (s *Session) Outcome() state.Outcome {
	return s.outcome
}

// Tick returns the number of simulated steps
func (s *Session) Tick() int {
	return s.tick
}

// Player returns the player body
func (s *Session) Player() *entity.Player {
	return s.world.Player
}

// Lander returns the lander body, or nil when the level has none
func (s *Session) Lander() *entity.Body {
	return s.world.Lander
}

// Creatures returns the hazard creatures
func (s *Session) Creatures() []*entity.Creature {
	return s.world.Actors.Creatures()
}

// Grid returns the tile grid of the level
func (s *Session) Grid() *entity.TileGrid {
	return s.world.Level.Grid
}

// Camera returns the top-left world pixel of the screen the player is on.
// The view flips a whole screen at a time.
func (s *Session) Camera() (x, y int) {
	w, h := s.cfg.Physics.Display.ScreenWidth, s.cfg.Physics.Display.ScreenHeight
	return flip(s.world.Player.PixelX(), w), flip(s.world.Player.PixelY(), h)
}

func flip(v, size int) int {
	return int(math.Floor(float64(v)/float64(size))) * size
}
