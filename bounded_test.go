package melodine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBounded(t *testing.T) {
	t.Run("value inside bounds is kept", func(t *testing.T) {
		b := NewBounded(25, 1, 50)
		assert.Equal(t, 25, b.Value())
		assert.Equal(t, 1, b.Min())
		assert.Equal(t, 50, b.Max())
	})

	t.Run("value below min clamps to min", func(t *testing.T) {
		b := NewBounded(-10, 1, 50)
		assert.Equal(t, 1, b.Value())
	})

	t.Run("value above max clamps to max", func(t *testing.T) {
		b := NewBounded(999, 1, 50)
		assert.Equal(t, 50, b.Value())
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		assert.Equal(t, 1, NewBounded(1, 1, 50).Value())
		assert.Equal(t, 50, NewBounded(50, 1, 50).Value())
	})

	t.Run("inverted bounds are swapped", func(t *testing.T) {
		b := NewBounded(25, 50, 1)
		assert.Equal(t, 1, b.Min())
		assert.Equal(t, 50, b.Max())
		assert.Equal(t, 25, b.Value())
	})

	t.Run("equal bounds pin the value", func(t *testing.T) {
		b := NewBounded(10, 7, 7)
		assert.Equal(t, 7, b.Value())
	})
}

func TestNewLimit(t *testing.T) {
	assert.Equal(t, MinLimit, NewLimit(0).Value())
	assert.Equal(t, 20, NewLimit(20).Value())
	assert.Equal(t, MaxLimit, NewLimit(100).Value())
}

func TestNewVolume(t *testing.T) {
	assert.Equal(t, MinVolume, NewVolume(-5).Value())
	assert.Equal(t, 70, NewVolume(70).Value())
	assert.Equal(t, MaxVolume, NewVolume(150).Value())
}
