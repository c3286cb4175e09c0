package gameover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/younwookim/planetonomy/internal/application/scene"
	"github.com/younwookim/planetonomy/internal/application/state"
	"github.com/younwookim/planetonomy/internal/infrastructure/render"
)

func TestGameOver_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*GameOver)(nil)
}

func TestGameOver_Update_Stays(t *testing.T) {
	g := New(state.DiedFall, "demo", 42, render.NewPainter(nil, 320, 200), nil)

	cmd, err := g.Update(1.0 / 60)
	require.NoError(t, err)
	assert.Equal(t, scene.Continue, cmd.Kind)
	assert.Equal(t, state.DiedFall, g.Outcome())
}

func TestGameOver_Message(t *testing.T) {
	tests := []struct {
		outcome state.Outcome
		want    string
	}{
		{state.DiedHazard, "You touched something deadly"},
		{state.DiedFall, "You fell too fast"},
		{state.DiedCreature, "You were eaten"},
	}

	for _, tt := range tests {
		t.Run(tt.outcome.String(), func(t *testing.T) {
			g := New(tt.outcome, "demo", 0, render.NewPainter(nil, 320, 200), nil)
			assert.Contains(t, g.Message(), "GAME OVER")
			assert.Contains(t, g.Message(), tt.want)
		})
	}
}

func TestGameOver_OnEnterLogsReason(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	g := New(state.DiedCreature, "demo", 300, render.NewPainter(nil, 320, 200), zap.New(core))

	g.OnEnter()

	entries := logs.FilterMessage("game over").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "DiedCreature", fields["reason"])
	assert.Equal(t, "demo", fields["stage"])
	assert.Equal(t, int64(300), fields["ticks"])
}
