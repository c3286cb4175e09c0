package system

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/planetonomy/internal/domain/entity"
	"github.com/younwookim/planetonomy/internal/infrastructure/config"
)

func createTestEntitiesConfig() *config.EntitiesConfig {
	return &config.EntitiesConfig{
		Player: config.PlayerConfig{
			ID:             "player",
			Sprite:         config.Rect{X: 1, Y: 239, Width: 7, Height: 16},
			CollisionInset: 1,
		},
		Lander: config.LanderConfig{MetaTile: "lander"},
		Creatures: map[string]config.CreatureConfig{
			"mouth_monster": createTestCreatureConfig(),
		},
	}
}

func createTestLevel(t *testing.T, objects ...entity.PlacedObject) *entity.Level {
	t.Helper()

	cells := make([]entity.Cell, 8*4)
	for x := 0; x < 8; x++ {
		cells[3*8+x] = entity.NewCell(1, 0)
	}
	metas := map[string]entity.MetaTileInfo{
		"lander": {
			Name:            "lander",
			Width:           2,
			Height:          2,
			SourceRegion:    entity.Rect{X: 0, Y: 32, W: 32, H: 32},
			CollisionShapes: []entity.Rect{{X: 0, Y: 4, W: 32, H: 28}},
		},
	}
	g, err := entity.NewTileGrid(8, 4, testTile, testTile, cells, createTestCatalogue(), metas)
	require.NoError(t, err)

	return &entity.Level{Grid: g, Objects: objects}
}

func TestLoadWorld(t *testing.T) {
	level := createTestLevel(t,
		entity.PlacedObject{ID: 1, Kind: entity.LanderSpawn, Rect: entity.Rect{X: 0, Y: 16, W: 32, H: 32}},
		entity.PlacedObject{ID: 2, Kind: entity.PlayerSpawn, Rect: entity.Rect{X: 40, Y: 32, W: 8, H: 16}},
		entity.PlacedObject{ID: 3, Kind: entity.HazardCreature, Rect: entity.Rect{X: 64, Y: 32, W: 32, H: 16}},
		entity.PlacedObject{ID: 4, Kind: entity.HazardCreature, Rect: entity.Rect{X: 96, Y: 32, W: 32, H: 16}},
	)

	w, err := LoadWorld(level, createTestEntitiesConfig())
	require.NoError(t, err)

	t.Run("player stands on the marker bottom", func(t *testing.T) {
		p := w.Player
		assert.Equal(t, 44, p.PixelX())
		assert.Equal(t, 47, p.PixelY())
		assert.Equal(t, entity.Rect{X: 41, Y: 32, W: 7, H: 16}, p.ViewRect())
		assert.Equal(t, entity.Rect{X: 41, Y: 33, W: 7, H: 15}, p.Bounds())
		assert.Equal(t, entity.Rect{X: 1, Y: 239, W: 7, H: 16}, p.Source)
		assert.True(t, p.FacingRight)
	})

	t.Run("player rests on the floor", func(t *testing.T) {
		s := NewCollisionSystem(level.Grid, 2)
		assert.Equal(t, ContactBottom, s.Probe(&w.Player.Body, 0))
	})

	t.Run("lander uses the metatile", func(t *testing.T) {
		require.NotNil(t, w.Lander)
		assert.Equal(t, 0, w.Lander.PixelX())
		assert.Equal(t, 16, w.Lander.PixelY())
		assert.Equal(t, entity.Rect{X: 0, Y: 20, W: 32, H: 28}, w.Lander.Bounds())
	})

	t.Run("creatures spawned in map order", func(t *testing.T) {
		creatures := w.Actors.Creatures()
		require.Len(t, creatures, 2)
		assert.Equal(t, uint32(3), creatures[0].ID)
		assert.Equal(t, uint32(4), creatures[1].ID)
		assert.Equal(t, entity.Rect{X: 66, Y: 38, W: 28, H: 10}, creatures[0].Hitbox())
	})
}

func TestLoadWorld_Errors(t *testing.T) {
	t.Run("missing player spawn", func(t *testing.T) {
		level := createTestLevel(t)
		_, err := LoadWorld(level, createTestEntitiesConfig())

		var notFound *entity.RequiredObjectNotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, entity.PlayerSpawn, notFound.Kind)
	})

	t.Run("unknown lander metatile", func(t *testing.T) {
		level := createTestLevel(t,
			entity.PlacedObject{ID: 1, Kind: entity.LanderSpawn, Rect: entity.Rect{W: 32, H: 32}},
			entity.PlacedObject{ID: 2, Kind: entity.PlayerSpawn, Rect: entity.Rect{X: 40, Y: 32, W: 8, H: 16}},
		)
		cfg := createTestEntitiesConfig()
		cfg.Lander.MetaTile = "rocket"

		_, err := LoadWorld(level, cfg)
		var unknown *entity.UnknownMetaTileError
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, "rocket", unknown.Name)
	})

	t.Run("lander is optional", func(t *testing.T) {
		level := createTestLevel(t,
			entity.PlacedObject{ID: 2, Kind: entity.PlayerSpawn, Rect: entity.Rect{X: 40, Y: 32, W: 8, H: 16}},
		)
		w, err := LoadWorld(level, createTestEntitiesConfig())
		require.NoError(t, err)
		assert.Nil(t, w.Lander)
	})
}
