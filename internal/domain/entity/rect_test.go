package entity

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Intersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 16, H: 16}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{X: 8, Y: 8, W: 16, H: 16}, true},
		{"contained", Rect{X: 4, Y: 4, W: 2, H: 2}, true},
		{"single pixel corner", Rect{X: 15, Y: 15, W: 1, H: 1}, true},
		{"touching right edge", Rect{X: 16, Y: 0, W: 4, H: 4}, false},
		{"touching bottom edge", Rect{X: 0, Y: 16, W: 4, H: 4}, false},
		{"left of", Rect{X: -5, Y: 0, W: 5, H: 4}, false},
		{"zero width", Rect{X: 4, Y: 4, W: 0, H: 4}, false},
		{"negative height", Rect{X: 4, Y: 4, W: 4, H: -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(base), "symmetric")
		})
	}
}

func TestRect_Geometry(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 5}

	assert.Equal(t, 5, r.X2())
	assert.Equal(t, 7, r.Y2())
	assert.Equal(t, Rect{X: 12, Y: 1, W: 4, H: 5}, r.Translate(10, -2))
	assert.Equal(t, Rect{X: 1, Y: 2, W: 6, H: 7}, r.Grow(1))
	assert.Equal(t, image.Rect(2, 3, 6, 8), r.Image())
	assert.False(t, r.Empty())
	assert.True(t, Rect{W: 3}.Empty())
}

func TestRect_Union(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 4, H: 4}
	b := Rect{X: 10, Y: -2, W: 2, H: 2}

	assert.Equal(t, Rect{X: 0, Y: -2, W: 12, H: 6}, a.Union(b))
	assert.Equal(t, a, a.Union(Rect{}))
	assert.Equal(t, b, Rect{}.Union(b))
}
