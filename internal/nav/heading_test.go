package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampHeading(t *testing.T) {
	assert.Equal(t, int32(0), ClampHeading(0, 8))
	assert.Equal(t, int32(7), ClampHeading(7, 8))
	assert.Equal(t, int32(7), ClampHeading(-1, 8))
	assert.Equal(t, int32(0), ClampHeading(8, 8))
	assert.Equal(t, int32(1), ClampHeading(9, 8))
}

func TestOppositeHeading(t *testing.T) {
	assert.Equal(t, int32(4), OppositeHeading(0, 8))
	assert.Equal(t, int32(0), OppositeHeading(4, 8))
	assert.Equal(t, int32(6), OppositeHeading(2, 8))
	assert.Equal(t, int32(1), OppositeHeading(9, 16))
}

func TestHeadingDistance(t *testing.T) {
	assert.Equal(t, int32(0), HeadingDistance(3, 3, 8))
	assert.Equal(t, int32(1), HeadingDistance(0, 1, 8))
	assert.Equal(t, int32(1), HeadingDistance(0, 7, 8))
	assert.Equal(t, int32(4), HeadingDistance(0, 4, 8))
	assert.Equal(t, int32(3), HeadingDistance(7, 2, 8))
}

func TestHeadingOffsetEightIncrements(t *testing.T) {
	// 8 increments of 45 degrees map onto the 8 compass neighbors.
	want := []Offset{
		{1, 0}, {1, 1}, {0, 1}, {-1, 1},
		{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
	}
	for h, expected := range want {
		assert.Equal(t, expected, headingOffset(int32(h), 8), "heading %d", h)
	}
}

func TestHeadingOffsetNeverZero(t *testing.T) {
	for _, maxIncrements := range []int32{4, 8, 16, 32} {
		for h := int32(0); h < maxIncrements; h++ {
			off := headingOffset(h, maxIncrements)
			assert.NotEqual(t, Offset{}, off, "heading %d of %d", h, maxIncrements)
		}
	}
}
