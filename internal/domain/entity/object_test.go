package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseObjectKind(t *testing.T) {
	tests := []struct {
		in     string
		want   ObjectKind
		wantOK bool
	}{
		{"player_start", PlayerSpawn, true},
		{"lander", LanderSpawn, true},
		{"mouth_monster", HazardCreature, true},
		{"Player_Start", 0, false},
		{"", 0, false},
		{"treasure", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseObjectKind(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestObjectKind_String(t *testing.T) {
	assert.Equal(t, "PlayerSpawn", PlayerSpawn.String())
	assert.Equal(t, "LanderSpawn", LanderSpawn.String())
	assert.Equal(t, "HazardCreature", HazardCreature.String())
	assert.Equal(t, "Unknown", ObjectKind(42).String())
}

func TestObjectKind_TypeName(t *testing.T) {
	for _, k := range []ObjectKind{LanderSpawn, PlayerSpawn, HazardCreature} {
		got, ok := ParseObjectKind(k.TypeName())
		require.True(t, ok, k.String())
		assert.Equal(t, k, got)
	}
	assert.Empty(t, ObjectKind(42).TypeName())
}

func createTestLevel() *Level {
	return &Level{
		Objects: []PlacedObject{
			{ID: 1, Kind: HazardCreature, Rect: Rect{X: 10, Y: 10, W: 16, H: 16}},
			{ID: 2, Kind: PlayerSpawn, Rect: Rect{X: 32, Y: 48, W: 8, H: 16}},
			{ID: 3, Kind: HazardCreature, Rect: Rect{X: 90, Y: 10, W: 16, H: 16}},
		},
	}
}

func TestLevel_GetObject(t *testing.T) {
	l := createTestLevel()

	obj, err := l.GetObject(PlayerSpawn)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), obj.ID)

	obj, err = l.GetObject(HazardCreature)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), obj.ID, "first in map order")

	_, err = l.GetObject(LanderSpawn)
	require.Error(t, err)
	var notFound *RequiredObjectNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, LanderSpawn, notFound.Kind)
}

func TestLevel_ObjectsOfKind(t *testing.T) {
	l := createTestLevel()

	creatures := l.ObjectsOfKind(HazardCreature)
	require.Len(t, creatures, 2)
	assert.Equal(t, uint32(1), creatures[0].ID)
	assert.Equal(t, uint32(3), creatures[1].ID)

	assert.Empty(t, l.ObjectsOfKind(LanderSpawn))
}

func TestLevel_ForeachObject(t *testing.T) {
	l := createTestLevel()

	var ids []uint32
	l.ForeachObject(func(o PlacedObject) {
		ids = append(ids, o.ID)
	})
	assert.Equal(t, []uint32{1, 2, 3}, ids)
}

func TestErrors_Messages(t *testing.T) {
	inner := errors.New("boom")
	err := &MapFormatError{Reason: "parse tmx", Err: inner}
	assert.Equal(t, "map format: parse tmx: boom", err.Error())
	assert.ErrorIs(t, err, inner)

	assert.Equal(t, "map format: bad", (&MapFormatError{Reason: "bad"}).Error())
	assert.Equal(t, `unknown metatile "x"`, (&UnknownMetaTileError{Name: "x"}).Error())
	assert.Equal(t, "required object PlayerSpawn not found", (&RequiredObjectNotFoundError{Kind: PlayerSpawn}).Error())
	assert.Equal(t, `unknown object type "ufo" (object 9)`, (&UnknownObjectTypeWarning{Type: "ufo", ID: 9}).Error())
}
