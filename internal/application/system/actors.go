package system

import (
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/planetonomy/internal/domain/entity"
	"github.com/younwookim/planetonomy/internal/infrastructure/config"
)

// Space tags
const (
	tagCreature = "creature"
	tagPlayer   = "player"
)

// defaultFramePeriod is used when a creature type has no animation config
const defaultFramePeriod = 0.25

// ActorSystem owns the object-layer actors that are not tile geometry:
// hazard creatures, placed in a broad-phase space and animated by tweens.
type ActorSystem struct {
	space     *resolv.Space
	proxy     *resolv.Object // player collision bounds
	creatures []*creatureActor
}

type creatureActor struct {
	creature *entity.Creature
	object   *resolv.Object
	anim     *gween.Sequence
}

// NewActorSystem creates an actor space covering the whole grid
func NewActorSystem(grid *entity.TileGrid) *ActorSystem {
	space := resolv.NewSpace(grid.PixelWidth(), grid.PixelHeight(), grid.TileWidth(), grid.TileHeight())

	proxy := resolv.NewObject(0, 0, 1, 1, tagPlayer)
	proxy.SetShape(resolv.NewRectangle(0, 0, 1, 1))
	space.Add(proxy)

	return &ActorSystem{
		space: space,
		proxy: proxy,
	}
}

// SpawnCreature places a creature for the marker obj using its type config
func (s *ActorSystem) SpawnCreature(obj entity.PlacedObject, cfg config.CreatureConfig) *entity.Creature {
	c := entity.NewCreature(obj)
	if cfg.Hitbox.Width > 0 && cfg.Hitbox.Height > 0 {
		c.HitboxOffsetX = cfg.Hitbox.OffsetX
		c.HitboxOffsetY = cfg.Hitbox.OffsetY
		c.HitboxWidth = cfg.Hitbox.Width
		c.HitboxHeight = cfg.Hitbox.Height
	}

	hb := c.Hitbox()
	o := resolv.NewObject(float64(hb.X), float64(hb.Y), float64(hb.W), float64(hb.H), tagCreature)
	o.SetShape(resolv.NewRectangle(0, 0, float64(hb.W), float64(hb.H)))
	o.Data = c
	s.space.Add(o)

	period := cfg.FramePeriod
	if period <= 0 {
		period = defaultFramePeriod
	}
	s.creatures = append(s.creatures, &creatureActor{
		creature: c,
		object:   o,
		anim:     newMouthAnimation(period),
	})
	return c
}

// newMouthAnimation opens and closes the mouth forever: frames 0,1,2,2,1,0,...
func newMouthAnimation(period float64) *gween.Sequence {
	span := float32(period * entity.CreatureFrames)
	seq := gween.NewSequence(
		gween.New(0, entity.CreatureFrames, span, ease.Linear),
		gween.New(entity.CreatureFrames, 0, span, ease.Linear),
	)
	seq.SetLoop(-1)
	return seq
}

// Update advances creature animations by dt seconds
func (s *ActorSystem) Update(dt float64) {
	for _, a := range s.creatures {
		v, _, _ := a.anim.Update(float32(dt))
		a.creature.SetFrame(int(v))
	}
}

// Creatures returns the spawned creatures in spawn order
func (s *ActorSystem) Creatures() []*entity.Creature {
	out := make([]*entity.Creature, len(s.creatures))
	for i, a := range s.creatures {
		out[i] = a.creature
	}
	return out
}

// TouchesCreature reports whether the world rectangle r overlaps any
// active creature hitbox.
func (s *ActorSystem) TouchesCreature(r entity.Rect) bool {
	if r.Empty() || len(s.creatures) == 0 {
		return false
	}

	s.proxy.X = float64(r.X)
	s.proxy.Y = float64(r.Y)
	s.proxy.W = float64(r.W)
	s.proxy.H = float64(r.H)
	s.proxy.Update()

	check := s.proxy.Check(0, 0, tagCreature)
	if check == nil {
		return false
	}
	// broad phase works on cells, confirm with exact rectangles
	for _, o := range check.ObjectsByTags(tagCreature) {
		if c, ok := o.Data.(*entity.Creature); ok && c.Touches(r) {
			return true
		}
	}
	return false
}
