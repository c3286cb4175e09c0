package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/planetonomy/internal/application/state"
	"github.com/younwookim/planetonomy/internal/application/system"
	"github.com/younwookim/planetonomy/internal/domain/entity"
	"github.com/younwookim/planetonomy/internal/infrastructure/config"
)

func loadDemo(t *testing.T) *Session {
	t.Helper()

	loader := config.NewLoader(configDir)
	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	level, stage, err := LoadStage(loader, "demo", nil)
	require.NoError(t, err)
	assert.Equal(t, "demo", stage.ID)

	s, err := New(level, cfg, nil)
	require.NoError(t, err)
	return s
}

func TestLoadStage_Demo(t *testing.T) {
	s := loadDemo(t)

	assert.Equal(t, 40, s.Grid().Width())
	assert.Equal(t, 12, s.Grid().Height())
	assert.NotNil(t, s.Lander())
	assert.Len(t, s.Creatures(), 2)

	// standing on the floor row
	assert.Equal(t, 60, s.Player().PixelX())
	assert.Equal(t, 175, s.Player().PixelY())
}

func TestLoadStage_Errors(t *testing.T) {
	loader := config.NewLoader(configDir)

	_, _, err := LoadStage(loader, "missing", nil)
	require.Error(t, err)

	var formatErr *entity.MapFormatError
	assert.False(t, errors.As(err, &formatErr))
}

func TestSession_Demo_Idle(t *testing.T) {
	s := loadDemo(t)

	for i := 0; i < 300; i++ {
		require.Equal(t, state.Playing, s.Step(system.InputState{}, testDT), "tick %d", i)
	}
	assert.True(t, s.Player().OnGround)
	assert.Equal(t, 175, s.Player().PixelY())
}

func TestSession_Demo_WalkIntoSpikes(t *testing.T) {
	s := loadDemo(t)

	right := system.InputState{Right: true}
	steppedUp := false
	outcome := state.Playing
	for i := 0; i < 1200 && !outcome.IsDead(); i++ {
		outcome = s.Step(right, testDT)
		if s.Player().PixelY() < 175 {
			steppedUp = true
		}
	}

	assert.Equal(t, state.DiedHazard, outcome)
	assert.True(t, steppedUp, "walked over the bumps")
	assert.GreaterOrEqual(t, s.Player().PixelX(), 320)
}

// trajectory replays a fixed input script and records the player position
func trajectory(t *testing.T, script []system.InputState) [][2]float64 {
	s := loadDemo(t)

	out := make([][2]float64, 0, len(script))
	for _, in := range script {
		s.Step(in, testDT)
		out = append(out, [2]float64{s.Player().X, s.Player().Y})
	}
	return out
}

func TestSession_Deterministic(t *testing.T) {
	var script []system.InputState
	for i := 0; i < 600; i++ {
		in := system.InputState{Right: i%200 < 150, Left: i%200 >= 180}
		in.Up = i%90 == 0
		script = append(script, in)
	}

	first := trajectory(t, script)
	second := trajectory(t, script)
	assert.Equal(t, first, second)
}
