package domain

import (
	"strconv"
	"strings"
)

type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

// OrientationOf classifies a "<width>x<height>" size label. Orientation is
// always derived, never stored: width < height means portrait, anything
// else (including square sizes and labels that do not parse) is landscape.
func OrientationOf(size string) Orientation {
	parts := strings.SplitN(size, "x", 2)
	if len(parts) != 2 {
		return OrientationLandscape
	}
	width, werr := strconv.Atoi(strings.TrimSpace(parts[0]))
	height, herr := strconv.Atoi(strings.TrimSpace(parts[1]))
	if werr != nil || herr != nil {
		return OrientationLandscape
	}
	if width < height {
		return OrientationPortrait
	}
	return OrientationLandscape
}

// ParseOrientation validates a client-provided orientation string.
func ParseOrientation(s string) (Orientation, bool) {
	switch Orientation(s) {
	case OrientationPortrait:
		return OrientationPortrait, true
	case OrientationLandscape:
		return OrientationLandscape, true
	default:
		return "", false
	}
}
