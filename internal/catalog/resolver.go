package catalog

import (
	"artistic-unity/internal/domain"
)

// placeholderImages is the last-resort collage set when no size shares the
// requested orientation.
var placeholderImages = []string{
	"/placeholder.svg?height=400&width=300",
	"/placeholder.svg?height=400&width=300",
	"/placeholder.svg?height=400&width=300",
	"/placeholder.svg?height=400&width=300",
}

// CollageImagesFor resolves the gallery images for a size and category.
// Resolution order: the exact (size, category) entry; failing that, the
// first declared size with the same orientation that has a non-empty entry;
// failing that, the fixed placeholder set.
func (c *Catalog) CollageImagesFor(size, category string) []string {
	if size == "" || category == "" {
		return nil
	}

	for _, entry := range c.collageEntries {
		if entry.Size == size {
			if refs := entry.Categories[category]; len(refs) > 0 {
				return refs
			}
			break
		}
	}

	orientation := domain.OrientationOf(size)
	for _, entry := range c.collageEntries {
		if domain.OrientationOf(entry.Size) != orientation {
			continue
		}
		if refs := entry.Categories[category]; len(refs) > 0 {
			return refs
		}
	}

	return placeholderImages
}

// CustomizationImagesFor resolves the customization buckets for a frame
// given the current collage size and orientation. An empty map means
// customization is not (yet) selectable for this combination; downstream
// code treats "map has keys" as the availability signal.
func (c *Catalog) CustomizationImagesFor(frame domain.Frame, collageSize string, orientation domain.Orientation) map[string][]string {
	switch frame.Subtype {
	case domain.SubtypeMount:
		return c.generalFamilyBuckets(c.custom.Mount, "Mount", collageSize, orientation)
	case domain.SubtypeTraditional:
		return c.generalFamilyBuckets(c.custom.General, "General", collageSize, orientation)
	case domain.SubtypeFloating:
		if orientation == "" {
			return map[string][]string{}
		}
		return map[string][]string{
			"Floating Frames": c.custom.Floating[string(orientation)],
		}
	case domain.SubtypeDisplay:
		return map[string][]string{
			"Display Frames": c.custom.Display,
		}
	case domain.SubtypeCompound:
		return map[string][]string{
			"Compound Frames": c.custom.Compound,
		}
	case domain.SubtypeEmboss:
		// Emboss customization only unlocks once both size and orientation
		// are chosen; the empty map gates the UI sequencing.
		if collageSize == "" || orientation == "" {
			return map[string][]string{}
		}
		return map[string][]string{
			"Emboss Frames": c.custom.Emboss,
		}
	default:
		return map[string][]string{}
	}
}

// structuralSizeBucket maps a collage size onto the two bucket sizes the
// general-family customization images are produced in: 12x18 absorbs
// 12x18/18x12 and 10x12 absorbs 10x12/12x10. Everything else is unsupported.
func structuralSizeBucket(collageSize string) string {
	switch collageSize {
	case "12x18", "18x12":
		return "12x18"
	case "10x12", "12x10":
		return "10x12"
	default:
		return ""
	}
}

func (c *Catalog) generalFamilyBuckets(buckets subtypeBuckets, labelPrefix, collageSize string, orientation domain.Orientation) map[string][]string {
	if collageSize == "" || orientation == "" {
		return map[string][]string{}
	}
	sizeKey := structuralSizeBucket(collageSize)
	if sizeKey == "" {
		return map[string][]string{}
	}

	result := make(map[string][]string, 3)
	for _, sub := range []struct{ key, label string }{
		{"thin", "Thin"},
		{"mix", "Mix"},
		{"fat", "Fat"},
	} {
		var refs []string
		if bySize, ok := buckets[sub.key]; ok {
			if byOrientation, ok := bySize[sizeKey]; ok {
				refs = byOrientation[string(orientation)]
			}
		}
		result[labelPrefix+" "+sub.label] = refs
	}
	return result
}
