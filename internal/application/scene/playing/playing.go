// Package playing provides the main gameplay scene.
package playing

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/younwookim/planetonomy/internal/application/replay"
	"github.com/younwookim/planetonomy/internal/application/scene"
	"github.com/younwookim/planetonomy/internal/application/scene/gameover"
	"github.com/younwookim/planetonomy/internal/application/session"
	"github.com/younwookim/planetonomy/internal/application/system"
	"github.com/younwookim/planetonomy/internal/domain/entity"
	"github.com/younwookim/planetonomy/internal/infrastructure/config"
	"github.com/younwookim/planetonomy/internal/infrastructure/render"
)

// Colors used when no atlas is loaded
var (
	colorBorder   = color.RGBA{0, 0, 0, 255}
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorWall     = color.RGBA{80, 80, 100, 255}
	colorHazard   = color.RGBA{200, 50, 50, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorLander   = color.RGBA{180, 180, 200, 255}
	colorCreature = color.RGBA{200, 100, 160, 255}
)

// Options configures optional features of the scene
type Options struct {
	// RecordPath enables input recording when not empty
	RecordPath string
	// Replayer drives the session instead of the keyboard
	Replayer *replay.Replayer
	Logger   *zap.Logger
}

// Playing is the main gameplay scene
type Playing struct {
	session  *session.Session
	config   *config.GameConfig
	stageCfg *config.StageConfig
	painter  *render.Painter
	input    *system.InputSystem
	logger   *zap.Logger

	// Input recording and playback
	replayer   *replay.Replayer
	recorder   *replay.Recorder
	recordPath string
	saved      bool
}

// New creates a new Playing scene around a fresh session
func New(sess *session.Session, cfg *config.GameConfig, stageCfg *config.StageConfig, painter *render.Painter, opts Options) *Playing {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &Playing{
		session:    sess,
		config:     cfg,
		stageCfg:   stageCfg,
		painter:    painter,
		input:      system.NewInputSystem(cfg.Physics),
		logger:     logger,
		replayer:   opts.Replayer,
		recordPath: opts.RecordPath,
	}

	if p.recordPath != "" {
		p.recorder = replay.NewRecorder(stageCfg.ID, cfg.Physics.TickDuration())
		logger.Info("recording enabled", zap.String("path", p.recordPath))
	}

	return p
}

// Session returns the running simulation
func (p *Playing) Session() *session.Session {
	return p.session
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Command, error) {
	if system.ExitRequested() {
		return scene.Quit(), nil
	}

	var in system.InputState
	if p.replayer != nil {
		var ok bool
		if in, ok = p.replayer.GetInput(); !ok {
			p.logger.Info("replay finished", zap.Int("frames", p.replayer.TotalFrames()))
			return scene.Quit(), nil
		}
		dt = p.replayer.DT()
	} else {
		in = p.input.GetInput()
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}

	outcome := p.session.Step(in, dt)
	if outcome.IsDead() {
		p.saveRecording()
		return scene.SwitchTo(gameover.New(outcome, p.stageCfg.ID, p.session.Tick(), p.painter, p.logger)), nil
	}

	return scene.Stay(), nil
}

// saveRecording writes the recording once
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.saved {
		return
	}
	p.recorder.Stop()
	p.saved = true

	if err := p.recorder.Save(p.recordPath); err != nil {
		p.logger.Error("failed to save recording", zap.String("path", p.recordPath), zap.Error(err))
		return
	}
	p.logger.Info("recording saved",
		zap.String("path", p.recordPath),
		zap.Int("frames", p.recorder.FrameCount()),
	)
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	p.painter.Begin(screen, colorBorder, colorBG)

	camX, camY := p.session.Camera()

	p.drawTiles(camX, camY)
	p.drawLander(camX, camY)
	p.drawCreatures(camX, camY)
	p.drawPlayer(camX, camY)

	x, y := p.painter.ToTarget(2, 2)
	ebitenutil.DebugPrintAt(screen, p.stageCfg.Name, int(x), int(y))
}

func (p *Playing) drawTiles(camX, camY int) {
	grid := p.session.Grid()
	tw, th := grid.TileWidth(), grid.TileHeight()
	screenW, screenH := p.painter.ScreenSize()

	startX, startY := camX/tw, camY/th
	endX, endY := (camX+screenW)/tw, (camY+screenH)/th

	var shapes []entity.Rect
	for ty := startY; ty <= endY && ty < grid.Height(); ty++ {
		for tx := startX; tx <= endX && tx < grid.Width(); tx++ {
			tile := grid.GetTile(tx, ty)
			if tile.IsEmpty() {
				continue
			}

			x, y := tx*tw-camX, ty*th-camY
			if p.painter.HasAtlas() {
				p.painter.CopyTransformed(tile.SourceRegion, x, y, tile.RenderTransform())
				continue
			}

			c := colorWall
			if tile.Hazardous {
				c = colorHazard
			}
			shapes = tile.AppendCollisionShapes(shapes[:0])
			for _, r := range shapes {
				p.painter.FillRect(r.Translate(x, y), c)
			}
		}
	}
}

func (p *Playing) drawLander(camX, camY int) {
	lander := p.session.Lander()
	if lander == nil {
		return
	}

	view := lander.ViewRect().Translate(-camX, -camY)
	if p.painter.HasAtlas() {
		p.painter.Copy(lander.Source, view.X, view.Y)
		return
	}
	for _, r := range lander.CollisionRects(nil) {
		p.painter.FillRect(r.Translate(-camX, -camY), colorLander)
	}
}

func (p *Playing) drawCreatures(camX, camY int) {
	frames := p.config.Entities.Creatures[entity.HazardCreature.TypeName()].Frames

	for _, c := range p.session.Creatures() {
		if !c.Active {
			continue
		}

		hb := c.Hitbox().Translate(-camX, -camY)
		if !p.painter.HasAtlas() || c.Frame >= len(frames) {
			p.painter.FillRect(hb, colorCreature)
			continue
		}

		// mouth grows upward from the bottom of the hitbox
		src := frames[c.Frame].Entity()
		p.painter.Copy(src, c.X-camX, hb.Y2()+1-src.H)
	}
}

func (p *Playing) drawPlayer(camX, camY int) {
	player := p.session.Player()
	view := player.ViewRect().Translate(-camX, -camY)

	if !p.painter.HasAtlas() {
		p.painter.FillRect(view, colorPlayer)
		return
	}
	p.painter.CopyTransformed(player.Source, view.X, view.Y, entity.RenderTransform{FlipH: !player.FacingRight})
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.logger.Info("stage started",
		zap.String("stage", p.stageCfg.ID),
		zap.String("name", p.stageCfg.Name),
		zap.Bool("replay", p.replayer != nil),
	)
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}
