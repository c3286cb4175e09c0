package system

import (
	"fmt"

	"github.com/younwookim/planetonomy/internal/domain/entity"
	"github.com/younwookim/planetonomy/internal/infrastructure/config"
)

// World holds the live actors spawned from a level's object layer
type World struct {
	Level  *entity.Level
	Player *entity.Player
	Lander *entity.Body
	Actors *ActorSystem
}

// LoadWorld spawns the player, the lander and every hazard creature of
// level using the entity configuration.
func LoadWorld(level *entity.Level, cfg *config.EntitiesConfig) (*World, error) {
	spawn, err := level.GetObject(entity.PlayerSpawn)
	if err != nil {
		return nil, err
	}

	w := &World{
		Level:  level,
		Player: spawnPlayer(spawn, cfg.Player),
		Actors: NewActorSystem(level.Grid),
	}

	if landerObj, err := level.GetObject(entity.LanderSpawn); err == nil {
		mt, err := level.Grid.GetMetaTile(cfg.Lander.MetaTile)
		if err != nil {
			return nil, fmt.Errorf("spawn lander: %w", err)
		}
		w.Lander = entity.NewMetaTileBody(float64(landerObj.Rect.X), float64(landerObj.Rect.Y), mt)
	}

	creatureCfg := cfg.Creatures[entity.HazardCreature.TypeName()]
	for _, obj := range level.ObjectsOfKind(entity.HazardCreature) {
		w.Actors.SpawnCreature(obj, creatureCfg)
	}

	return w, nil
}

// spawnPlayer stands the player on the bottom edge of the marker,
// horizontally centred. The anchor is the sprite's bottom pixel row.
func spawnPlayer(spawn entity.PlacedObject, cfg config.PlayerConfig) *entity.Player {
	sprite := cfg.Sprite.Entity()
	view := entity.Rect{
		X: -sprite.W / 2,
		Y: -sprite.H + 1,
		W: sprite.W,
		H: sprite.H,
	}

	x := spawn.Rect.X + spawn.Rect.W/2
	y := spawn.Rect.Y2()
	return entity.NewPlayer(float64(x), float64(y), view, sprite, cfg.CollisionInset)
}
