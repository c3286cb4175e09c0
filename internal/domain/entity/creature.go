package entity

// CreatureFrames is the number of animation frames of a hazard creature
const CreatureFrames = 3

// Creature is a stationary hazard placed from the object layer.
// Touching its hitbox is fatal.
type Creature struct {
	ID     uint32
	X, Y   int
	Active bool

	// Hitbox, relative to X, Y
	HitboxOffsetX int
	HitboxOffsetY int
	HitboxWidth   int
	HitboxHeight  int

	// Frame is the current animation frame in [0, CreatureFrames)
	Frame int
}

// NewCreature creates a creature occupying the marker rectangle
func NewCreature(obj PlacedObject) *Creature {
	return &Creature{
		ID:           obj.ID,
		X:            obj.Rect.X,
		Y:            obj.Rect.Y,
		Active:       true,
		HitboxWidth:  obj.Rect.W,
		HitboxHeight: obj.Rect.H,
	}
}

// Hitbox returns the hitbox in world coordinates
func (c *Creature) Hitbox() Rect {
	return Rect{
		X: c.X + c.HitboxOffsetX,
		Y: c.Y + c.HitboxOffsetY,
		W: c.HitboxWidth,
		H: c.HitboxHeight,
	}
}

// SetFrame stores an animation frame, clamped to the valid range
func (c *Creature) SetFrame(f int) {
	c.Frame = max(0, min(f, CreatureFrames-1))
}

// Touches reports whether r overlaps an active creature's hitbox
func (c *Creature) Touches(r Rect) bool {
	return c.Active && c.Hitbox().Intersects(r)
}
