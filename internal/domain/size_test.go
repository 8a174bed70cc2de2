package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrientationOf_Portrait(t *testing.T) {
	assert.Equal(t, OrientationPortrait, OrientationOf("6x8"))
	assert.Equal(t, OrientationPortrait, OrientationOf("8x10"))
	assert.Equal(t, OrientationPortrait, OrientationOf("12x18"))
	assert.Equal(t, OrientationPortrait, OrientationOf("20x30"))
}

func TestOrientationOf_Landscape(t *testing.T) {
	assert.Equal(t, OrientationLandscape, OrientationOf("8x6"))
	assert.Equal(t, OrientationLandscape, OrientationOf("18x12"))
	assert.Equal(t, OrientationLandscape, OrientationOf("30x20"))
}

func TestOrientationOf_EqualDimensionsAreLandscape(t *testing.T) {
	// Width is not strictly less than height, so square sizes classify
	// landscape.
	assert.Equal(t, OrientationLandscape, OrientationOf("10x10"))
	assert.Equal(t, OrientationLandscape, OrientationOf("12x12"))
}

func TestOrientationOf_Unparseable(t *testing.T) {
	assert.Equal(t, OrientationLandscape, OrientationOf(SpecialSize))
	assert.Equal(t, OrientationLandscape, OrientationOf(""))
	assert.Equal(t, OrientationLandscape, OrientationOf("axb"))
}

func TestParseOrientation(t *testing.T) {
	o, ok := ParseOrientation("portrait")
	assert.True(t, ok)
	assert.Equal(t, OrientationPortrait, o)

	o, ok = ParseOrientation("landscape")
	assert.True(t, ok)
	assert.Equal(t, OrientationLandscape, o)

	_, ok = ParseOrientation("diagonal")
	assert.False(t, ok)
}
