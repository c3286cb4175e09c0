// Package gameover provides the screen shown after the player dies.
package gameover

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/younwookim/planetonomy/internal/application/scene"
	"github.com/younwookim/planetonomy/internal/application/state"
	"github.com/younwookim/planetonomy/internal/application/system"
	"github.com/younwookim/planetonomy/internal/infrastructure/render"
)

var (
	colorBorder = color.RGBA{0, 0, 0, 255}
	colorBG     = color.RGBA{90, 0, 0, 255}
)

// GameOver shows why the run ended and waits for the player to quit
type GameOver struct {
	outcome state.Outcome
	stage   string
	ticks   int
	painter *render.Painter
	logger  *zap.Logger
}

// New creates the game over screen for a finished run
func New(outcome state.Outcome, stage string, ticks int, painter *render.Painter, logger *zap.Logger) *GameOver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GameOver{
		outcome: outcome,
		stage:   stage,
		ticks:   ticks,
		painter: painter,
		logger:  logger,
	}
}

// Outcome returns the reason the run ended
func (g *GameOver) Outcome() state.Outcome {
	return g.outcome
}

// Update exits on Escape, Q or Enter (implements scene.Scene)
func (g *GameOver) Update(_ float64) (scene.Command, error) {
	if system.ExitRequested() || system.ConfirmRequested() {
		return scene.Quit(), nil
	}
	return scene.Stay(), nil
}

// Draw renders the death message
func (g *GameOver) Draw(screen *ebiten.Image) {
	g.painter.Begin(screen, colorBorder, colorBG)

	x, y := g.painter.ToTarget(16, 16)
	ebitenutil.DebugPrintAt(screen, g.Message(), int(x), int(y))
}

// Message returns the text shown on screen
func (g *GameOver) Message() string {
	return "GAME OVER\n\n" + g.outcome.Message() + "\n\nPress Enter or Esc to quit"
}

// OnEnter is called when entering this scene
func (g *GameOver) OnEnter() {
	g.logger.Info("game over",
		zap.String("stage", g.stage),
		zap.Stringer("reason", g.outcome),
		zap.Int("ticks", g.ticks),
	)
}

// OnExit is called when leaving this scene
func (g *GameOver) OnExit() {}
