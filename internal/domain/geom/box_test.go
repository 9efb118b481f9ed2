package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2_SetTranslate(t *testing.T) {
	v := Vec(1, 2)
	v.Translate(3, -4)
	assert.Equal(t, Vec(4, -2), v)

	v.Set(10, 20)
	assert.Equal(t, 10.0, v.X)
	assert.Equal(t, 20.0, v.Y)
}

func TestNewBox_ClampsNegativeSize(t *testing.T) {
	b := NewBox(5, 5, -10, -1)

	assert.Equal(t, 0.0, b.W())
	assert.Equal(t, 0.0, b.H())
	assert.Equal(t, 5.0, b.Right())
	assert.Equal(t, 5.0, b.Bottom())
	assert.True(t, b.Intersects(NewBox(0, 0, 10, 10)), "degenerate box still overlaps deterministically")
}

func TestBox_TranslateKeepsSingleStepHistory(t *testing.T) {
	b := NewBox(10, 10, 20, 20)
	assert.Equal(t, Vec(10, 10), b.Prev())

	b.Translate(5, 0)
	assert.Equal(t, Vec(15, 10), b.Origin())
	assert.Equal(t, Vec(10, 10), b.Prev())

	b.Translate(1, 1)
	assert.Equal(t, Vec(16, 11), b.Origin())
	assert.Equal(t, Vec(15, 10), b.Prev(), "history is overwritten, not stacked")

	b.Move(0, 0)
	assert.Equal(t, Vec(15, 10), b.Prev(), "Move does not record history")
}

func TestBox_Contains(t *testing.T) {
	main := NewBox(100, 100, 200, 200)

	tests := []struct {
		name string
		box  Box
		want bool
	}{
		{"within", NewBox(110, 110, 180, 180), true},
		{"same size", NewBox(100, 100, 200, 200), true},
		{"touching inner edges", NewBox(100, 100, 10, 10), true},
		{"overlap top-left", NewBox(99, 99, 100, 100), false},
		{"overlap bottom-right", NewBox(250, 250, 100, 100), false},
		{"outside", NewBox(100, 10, 10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, main.Contains(tt.box))
		})
	}
}

func TestBox_ContainsAfterTranslate(t *testing.T) {
	main := NewBox(100, 100, 200, 200)
	test := NewBox(110, 110, 180, 180)

	test.Translate(5, 5)
	assert.True(t, main.Contains(test))
	test.Translate(-10, -10)
	assert.True(t, main.Contains(test))
	test.Translate(-5, -5)
	assert.True(t, main.Contains(test))
	test.Translate(-1, -1)
	assert.False(t, main.Contains(test))
}

func TestBox_Intersects(t *testing.T) {
	main := NewBox(100, 100, 200, 200)

	tests := []struct {
		name string
		box  Box
		want bool
	}{
		{"within", NewBox(110, 110, 180, 180), true},
		{"same size", NewBox(100, 100, 200, 200), true},
		{"overlap top-left", NewBox(99, 99, 100, 100), true},
		{"overlap bottom-right", NewBox(250, 250, 100, 100), true},
		{"overlap right", NewBox(250, 99, 100, 100), true},
		{"above", NewBox(100, 10, 10, 10), false},
		{"below", NewBox(100, 310, 10, 10), false},
		{"left", NewBox(0, 150, 50, 10), false},
		{"touching right edge", NewBox(300, 150, 10, 10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, main.Intersects(tt.box))
			assert.Equal(t, tt.want, tt.box.Intersects(main), "intersection is symmetric")
		})
	}
}

func TestBox_EdgeTouchingIntersects(t *testing.T) {
	a := NewBox(0, 0, 10, 10)
	b := NewBox(10, 0, 10, 10)

	assert.True(t, a.Intersects(b))
	assert.True(t, b.Intersects(a))
}

func TestBox_ContainmentImpliesIntersection(t *testing.T) {
	boxes := []Box{
		NewBox(0, 0, 10, 10),
		NewBox(2, 2, 3, 3),
		NewBox(0, 0, 0, 0),
		NewBox(10, 10, 0, 5),
		NewBox(-5, -5, 30, 30),
		NewBox(20, 0, 1, 1),
	}

	for _, a := range boxes {
		for _, b := range boxes {
			assert.Equal(t, a.Intersects(b), b.Intersects(a), "%s vs %s", a, b)
			if a.Contains(b) {
				assert.True(t, a.Intersects(b), "%s contains %s", a, b)
			}
		}
	}
}
