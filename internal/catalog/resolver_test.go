package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artistic-unity/internal/domain"
)

func TestCollageImagesFor_ExactMatch(t *testing.T) {
	c := loadTestCatalog(t)

	refs := c.CollageImagesFor("6x8", "Artistic collages")
	require.Len(t, refs, 4)
	assert.Equal(t, "/images/Collage_Gallery/10 x 12/Artistic Collages/10 x 12.jpg", refs[0])
}

func TestCollageImagesFor_MissingSizeFallsBackToSameOrientation(t *testing.T) {
	c := loadTestCatalog(t)

	// 10x15 is a valid portrait size with no gallery entry of its own, so
	// the resolver walks declared entries and lands on the first portrait
	// size that has one (6x8).
	fallback := c.CollageImagesFor("10x15", "Artistic collages")
	expected := c.CollageImagesFor("6x8", "Artistic collages")
	assert.Equal(t, expected, fallback)
}

func TestCollageImagesFor_LandscapeFallback(t *testing.T) {
	c := loadTestCatalog(t)

	// 15x10 is landscape; the first declared landscape entry is 8x6.
	fallback := c.CollageImagesFor("15x10", "Minimalistic collages")
	expected := c.CollageImagesFor("8x6", "Minimalistic collages")
	assert.Equal(t, expected, fallback)
}

func TestCollageImagesFor_FallbackIsDeterministic(t *testing.T) {
	c := loadTestCatalog(t)

	first := c.CollageImagesFor("20x30", "Shape inspired collages")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.CollageImagesFor("20x30", "Shape inspired collages"))
	}
}

func TestCollageImagesFor_UnknownCategoryYieldsPlaceholders(t *testing.T) {
	c := loadTestCatalog(t)

	refs := c.CollageImagesFor("6x8", "Abstract collages")
	require.Len(t, refs, 4)
	for _, ref := range refs {
		assert.Equal(t, "/placeholder.svg?height=400&width=300", ref)
	}
}

func TestCollageImagesFor_EmptyInputs(t *testing.T) {
	c := loadTestCatalog(t)

	assert.Empty(t, c.CollageImagesFor("", "Artistic collages"))
	assert.Empty(t, c.CollageImagesFor("6x8", ""))
}

func TestCustomizationImagesFor_MountFrame(t *testing.T) {
	c := loadTestCatalog(t)
	frame, err := c.FrameByID("103")
	require.NoError(t, err)

	buckets := c.CustomizationImagesFor(frame, "12x18", domain.OrientationLandscape)
	require.Len(t, buckets, 3)
	for _, label := range []string{"Mount Thin", "Mount Mix", "Mount Fat"} {
		refs, ok := buckets[label]
		require.True(t, ok, "missing bucket %s", label)
		assert.NotEmpty(t, refs, "bucket %s", label)
	}
}

func TestCustomizationImagesFor_MountFrame_UnsupportedBucket(t *testing.T) {
	c := loadTestCatalog(t)
	frame, err := c.FrameByID("103")
	require.NoError(t, err)

	buckets := c.CustomizationImagesFor(frame, "6x8", domain.OrientationPortrait)
	assert.Empty(t, buckets)
}

func TestCustomizationImagesFor_MountFrame_TwinSizesShareBucket(t *testing.T) {
	c := loadTestCatalog(t)
	frame, err := c.FrameByID("103")
	require.NoError(t, err)

	a := c.CustomizationImagesFor(frame, "12x18", domain.OrientationPortrait)
	b := c.CustomizationImagesFor(frame, "18x12", domain.OrientationPortrait)
	assert.Equal(t, a, b)

	a = c.CustomizationImagesFor(frame, "10x12", domain.OrientationLandscape)
	b = c.CustomizationImagesFor(frame, "12x10", domain.OrientationLandscape)
	assert.Equal(t, a, b)
}

func TestCustomizationImagesFor_TraditionalFrameUsesGeneralLabels(t *testing.T) {
	c := loadTestCatalog(t)
	frame, err := c.FrameByID("102")
	require.NoError(t, err)

	buckets := c.CustomizationImagesFor(frame, "10x12", domain.OrientationPortrait)
	require.Len(t, buckets, 3)
	for _, label := range []string{"General Thin", "General Mix", "General Fat"} {
		assert.NotEmpty(t, buckets[label], "bucket %s", label)
	}
}

func TestCustomizationImagesFor_FloatingKeyedByOrientation(t *testing.T) {
	c := loadTestCatalog(t)
	frame, err := c.FrameByID("302")
	require.NoError(t, err)

	portrait := c.CustomizationImagesFor(frame, "", domain.OrientationPortrait)
	require.Len(t, portrait, 1)
	assert.Len(t, portrait["Floating Frames"], 3)

	landscape := c.CustomizationImagesFor(frame, "", domain.OrientationLandscape)
	assert.NotEqual(t, portrait["Floating Frames"], landscape["Floating Frames"])
}

func TestCustomizationImagesFor_DisplayIsUnfiltered(t *testing.T) {
	c := loadTestCatalog(t)
	frame, err := c.FrameByID("303")
	require.NoError(t, err)

	withSelections := c.CustomizationImagesFor(frame, "12x18", domain.OrientationLandscape)
	withoutSelections := c.CustomizationImagesFor(frame, "", "")
	assert.Equal(t, withSelections, withoutSelections)
	assert.Len(t, withSelections["Display Frames"], 5)
}

func TestCustomizationImagesFor_CompoundIsUnfiltered(t *testing.T) {
	c := loadTestCatalog(t)
	frame, err := c.FrameByID("204")
	require.NoError(t, err)

	buckets := c.CustomizationImagesFor(frame, "", "")
	require.Len(t, buckets, 1)
	assert.Len(t, buckets["Compound Frames"], 2)
}

func TestCustomizationImagesFor_EmbossGatedOnBothSelections(t *testing.T) {
	c := loadTestCatalog(t)
	frame, err := c.FrameByID("203")
	require.NoError(t, err)

	assert.Empty(t, c.CustomizationImagesFor(frame, "", domain.OrientationPortrait))
	assert.Empty(t, c.CustomizationImagesFor(frame, "10x12", ""))

	buckets := c.CustomizationImagesFor(frame, "10x12", domain.OrientationPortrait)
	require.Len(t, buckets, 1)
	assert.Len(t, buckets["Emboss Frames"], 5)
}

func TestCustomizationImagesFor_PlymountAndRotatingHaveNone(t *testing.T) {
	c := loadTestCatalog(t)

	for _, id := range []string{"202", "301"} {
		frame, err := c.FrameByID(id)
		require.NoError(t, err)
		assert.Empty(t, c.CustomizationImagesFor(frame, "12x18", domain.OrientationLandscape), "frame %s", id)
	}
}
