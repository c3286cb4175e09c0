package config

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configDir = "../../../cmd/game/configs"

func TestLoader_LoadPhysics(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)

	assert.Equal(t, 320, cfg.Display.ScreenWidth)
	assert.Equal(t, 200, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 100.0, cfg.Physics.Gravity)
	assert.Equal(t, 210.0, cfg.Physics.FatalSpeed)
	assert.Equal(t, 2, cfg.Physics.AutoStepAmount)
	assert.Equal(t, 300.0, cfg.Movement.Acceleration)
	assert.Equal(t, 600.0, cfg.Movement.Deceleration)
	assert.Equal(t, 40.0, cfg.Movement.MaxSpeed)
	assert.Equal(t, 0.2, cfg.Movement.AirControl)
	assert.Equal(t, 58.0, cfg.Jump.Impulse)
	assert.InDelta(t, 1.0/60, cfg.TickDuration(), 1e-12)
}

func TestLoader_LoadEntities(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadEntities()
	require.NoError(t, err)

	assert.Equal(t, "player", cfg.Player.ID)
	assert.Equal(t, Rect{X: 1, Y: 239, Width: 7, Height: 16}, cfg.Player.Sprite)
	assert.Equal(t, 1, cfg.Player.CollisionInset)
	assert.Equal(t, "lander", cfg.Lander.MetaTile)

	mouth, ok := cfg.Creatures["mouth_monster"]
	require.True(t, ok)
	assert.Len(t, mouth.Frames, 3)
	assert.Equal(t, 13, mouth.Frames[2].Height)
	assert.Greater(t, mouth.FramePeriod, 0.0)
}

func TestLoader_LoadStage(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadStage("demo")
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.ID)
	assert.Equal(t, "maps/demo.tmx", cfg.Map)
	assert.Equal(t, "Objects", cfg.ObjectLayer)

	_, err = loader.LoadStage("nowhere")
	assert.Error(t, err)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Physics)
	assert.NotNil(t, cfg.Entities)
}

func TestLoader_FS(t *testing.T) {
	fsys := fstest.MapFS{
		"physics.json":      {Data: []byte(`{"display":{"screenWidth":320,"screenHeight":200,"scale":2,"framerate":30}}`)},
		"stages/empty.json": {Data: []byte(`{"id":"empty"}`)},
		"stages/bad.json":   {Data: []byte(`{"id":`)},
	}
	loader := NewFSLoader(fsys, "mem")

	assert.Equal(t, "mem", loader.BasePath())

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)
	assert.InDelta(t, 1.0/30, cfg.TickDuration(), 1e-12)

	_, err = loader.LoadStage("empty")
	var invalid *InvalidValueError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "map", invalid.Field)

	_, err = loader.LoadStage("bad")
	assert.Error(t, err)

	_, err = loader.LoadEntities()
	assert.Error(t, err)
}

func TestPhysicsConfig_Validate(t *testing.T) {
	valid := func() PhysicsConfig {
		return PhysicsConfig{
			Display:  DisplayConfig{ScreenWidth: 320, ScreenHeight: 200, Scale: 3, Framerate: 60},
			Physics:  PhysicsSettings{Gravity: 100, AutoStepAmount: 2},
			Movement: MovementConfig{MaxSpeed: 40},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *PhysicsConfig)
		field  string
	}{
		{"valid", func(c *PhysicsConfig) {}, ""},
		{"no screen", func(c *PhysicsConfig) { c.Display.ScreenWidth = 0 }, "display.screenWidth/screenHeight"},
		{"no scale", func(c *PhysicsConfig) { c.Display.Scale = 0 }, "display.scale"},
		{"no framerate", func(c *PhysicsConfig) { c.Display.Framerate = 0 }, "display.framerate"},
		{"negative autostep", func(c *PhysicsConfig) { c.Physics.AutoStepAmount = -1 }, "physics.autoStepAmount"},
		{"negative speed", func(c *PhysicsConfig) { c.Movement.MaxSpeed = -1 }, "movement.maxSpeed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var invalid *InvalidValueError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.field, invalid.Field)
		})
	}
}

func TestRect_Entity(t *testing.T) {
	r := Rect{X: 1, Y: 209, Width: 32, Height: 5}
	e := r.Entity()
	assert.Equal(t, 1, e.X)
	assert.Equal(t, 209, e.Y)
	assert.Equal(t, 32, e.W)
	assert.Equal(t, 5, e.H)
}
