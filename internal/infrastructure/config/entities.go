package config

import "github.com/younwookim/planetonomy/internal/domain/entity"

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player    PlayerConfig              `json:"player"`
	Lander    LanderConfig              `json:"lander"`
	Creatures map[string]CreatureConfig `json:"creatures"`
}

type PlayerConfig struct {
	ID     string `json:"id"`
	Sprite Rect   `json:"sprite"`
	// CollisionInset trims the collision rectangle from the top of the sprite
	CollisionInset int `json:"collisionInset"`
}

type LanderConfig struct {
	MetaTile string `json:"metaTile"`
}

type CreatureConfig struct {
	Frames []Rect `json:"frames"`
	// FramePeriod is the time in seconds spent between two frames
	FramePeriod float64 `json:"framePeriod"`
	Hitbox      Hitbox  `json:"hitbox"`
}

// Rect is an atlas region
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"w"`
	Height int `json:"h"`
}

// Entity converts the region to the domain rectangle
func (r Rect) Entity() entity.Rect {
	return entity.Rect{X: r.X, Y: r.Y, W: r.Width, H: r.Height}
}

// Hitbox shrinks an object rectangle
type Hitbox struct {
	OffsetX int `json:"offsetX"`
	OffsetY int `json:"offsetY"`
	Width   int `json:"width"`
	Height  int `json:"height"`
}
