package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRampAt(t *testing.T) {
	assert.Equal(t, reds[0], reds.at(0))
	assert.Equal(t, reds[len(reds)-1], reds.at(1))
	assert.Equal(t, reds[0], reds.at(-3))
	assert.Equal(t, reds[len(reds)-1], reds.at(7))
	assert.Equal(t, reds[0], reds.at(math.NaN()))

	mid := reds.at(0.5)
	assert.Equal(t, reds[2], mid)
}

func TestRampHex(t *testing.T) {
	assert.Equal(t, "#fff5f0", reds.hex(0))
	assert.Equal(t, "#67000d", reds.hex(1))
	assert.Equal(t, "#800026", ylOrRd.hex(1))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, 0.0, normalize(2, 2, 10))
	assert.Equal(t, 1.0, normalize(10, 2, 10))
	assert.Equal(t, 0.5, normalize(6, 2, 10))

	// Degenerate range: every value maps to the midpoint.
	assert.Equal(t, 0.5, normalize(5, 5, 5))
	assert.Equal(t, 0.5, normalize(5, 10, 2))
}
