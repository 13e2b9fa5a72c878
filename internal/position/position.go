// Package position keeps the calendar overlay inside the viewport.
package position

import (
	"fmt"
	"strings"
)

// AnchorDirection is the side of the trigger the overlay is pinned to.
type AnchorDirection string

const (
	AnchorLeft  AnchorDirection = "left"
	AnchorRight AnchorDirection = "right"
)

func ParseAnchorDirection(s string) (AnchorDirection, error) {
	switch AnchorDirection(strings.ToLower(strings.TrimSpace(s))) {
	case "", AnchorLeft:
		return AnchorLeft, nil
	case AnchorRight:
		return AnchorRight, nil
	}
	return AnchorLeft, fmt.Errorf("unknown anchor direction %q", s)
}

// PositionStyles is the translation applied to the overlay. Offset is never
// positive: it only ever pulls the overlay back towards the viewport.
type PositionStyles struct {
	Offset    int
	Direction AnchorDirection
}

// Geometry is one measurement of the rendered overlay, in columns.
// OverlayLeft and OverlayRight are the rendered edges, already shifted by
// CurrentOffset.
type Geometry struct {
	Direction     AnchorDirection
	Margin        int
	ViewportWidth int
	OverlayLeft   int
	OverlayRight  int
	CurrentOffset int
	Mounted       bool
}

// Responsivize computes the next offset. It reports false, and computes
// nothing, when the overlay has not been measured yet.
//
// Anchored left the overlay can only spill past the right edge of the
// viewport; anchored right, past the left edge. The free space between the
// far edge and that boundary, minus the margin, is added to the current
// offset and the result is clamped to zero, so an overflowing overlay is
// pulled in by exactly its overflow and a fitting one stays where it is.
func Responsivize(g Geometry) (PositionStyles, bool) {
	if !g.Mounted || g.ViewportWidth <= 0 {
		return PositionStyles{}, false
	}
	dir := g.Direction
	if dir != AnchorRight {
		dir = AnchorLeft
	}
	margin := g.Margin
	if margin < 0 {
		margin = 0
	}

	var space int
	if dir == AnchorLeft {
		space = g.ViewportWidth - g.OverlayRight
	} else {
		space = g.OverlayLeft
	}
	return PositionStyles{
		Offset:    min(g.CurrentOffset+space-margin, 0),
		Direction: dir,
	}, true
}

// Place converts styles into the overlay's left column for a trigger that
// spans [anchorLeft, anchorRight) and an overlay of the given width.
func Place(anchorLeft, anchorRight, width int, styles PositionStyles) int {
	if styles.Direction == AnchorRight {
		return anchorRight - width - styles.Offset
	}
	return anchorLeft + styles.Offset
}

// Measure returns the geometry of an overlay placed by styles.
func Measure(anchorLeft, anchorRight, width, viewportWidth, margin int, styles PositionStyles) Geometry {
	left := Place(anchorLeft, anchorRight, width, styles)
	return Geometry{
		Direction:     styles.Direction,
		Margin:        margin,
		ViewportWidth: viewportWidth,
		OverlayLeft:   left,
		OverlayRight:  left + width,
		CurrentOffset: styles.Offset,
		Mounted:       width > 0,
	}
}

// Orientation is how multiple months are stacked.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

func ParseOrientation(s string) (Orientation, error) {
	switch Orientation(strings.ToLower(strings.TrimSpace(s))) {
	case "", Horizontal:
		return Horizontal, nil
	case Vertical:
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("unknown orientation %q", s)
}
