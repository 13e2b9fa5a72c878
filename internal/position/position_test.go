package position

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResponsivizeLeftOverflow(t *testing.T) {
	got, ok := Responsivize(Geometry{
		Direction:     AnchorLeft,
		ViewportWidth: 900,
		OverlayLeft:   350,
		OverlayRight:  950,
		Mounted:       true,
	})
	require.True(t, ok)
	require.Equal(t, PositionStyles{Offset: -50, Direction: AnchorLeft}, got)
}

func TestResponsivizeRightOverflow(t *testing.T) {
	got, ok := Responsivize(Geometry{
		Direction:     AnchorRight,
		Margin:        4,
		ViewportWidth: 80,
		OverlayLeft:   -6,
		OverlayRight:  40,
		Mounted:       true,
	})
	require.True(t, ok)
	require.Equal(t, -10, got.Offset)
	require.Equal(t, AnchorRight, got.Direction)
}

func TestResponsivizeFitsWithinMargin(t *testing.T) {
	g := Geometry{Direction: AnchorLeft, Margin: 10, ViewportWidth: 100, OverlayLeft: 0, OverlayRight: 60, Mounted: true}
	got, ok := Responsivize(g)
	require.True(t, ok)
	require.Equal(t, 0, got.Offset)
}

func TestResponsivizeNotMounted(t *testing.T) {
	_, ok := Responsivize(Geometry{Direction: AnchorLeft, ViewportWidth: 900, OverlayRight: 950})
	require.False(t, ok)

	_, ok = Responsivize(Geometry{Direction: AnchorLeft, OverlayRight: 950, Mounted: true})
	require.False(t, ok)
}

func TestResponsivizeIdempotent(t *testing.T) {
	g := Geometry{Direction: AnchorLeft, Margin: 2, ViewportWidth: 70, OverlayLeft: 10, OverlayRight: 90, Mounted: true}
	first, _ := Responsivize(g)
	second, _ := Responsivize(g)
	require.Equal(t, first, second)
}

// Re-measuring after applying the offset must not drift, for either anchor.
func TestResponsivizeConvergesAfterApplying(t *testing.T) {
	for _, dir := range []AnchorDirection{AnchorLeft, AnchorRight} {
		for _, width := range []int{20, 44, 79, 120} {
			styles := PositionStyles{Direction: dir}
			for i := 0; i < 5; i++ {
				next, ok := Responsivize(Measure(10, 70, width, 80, 2, styles))
				require.True(t, ok)
				if i > 0 {
					require.Equal(t, styles, next, "dir=%s width=%d iteration=%d", dir, width, i)
				}
				styles = next
			}
			g := Measure(10, 70, width, 80, 2, styles)
			if width+2 <= 80-10 && dir == AnchorLeft {
				require.LessOrEqual(t, g.OverlayRight, 78)
			}
			if width+2 <= 70 && dir == AnchorRight {
				require.GreaterOrEqual(t, g.OverlayLeft, 2)
			}
		}
	}
}

func TestResponsivizeRelaxesWhenViewportGrows(t *testing.T) {
	styles, _ := Responsivize(Measure(0, 40, 60, 50, 0, PositionStyles{Direction: AnchorLeft}))
	require.Equal(t, -10, styles.Offset)

	styles, _ = Responsivize(Measure(0, 40, 60, 200, 0, styles))
	require.Equal(t, 0, styles.Offset)
}

func TestPlace(t *testing.T) {
	require.Equal(t, 5, Place(10, 30, 40, PositionStyles{Direction: AnchorLeft, Offset: -5}))
	require.Equal(t, -10, Place(10, 30, 40, PositionStyles{Direction: AnchorRight}))
	require.Equal(t, 0, Place(10, 30, 40, PositionStyles{Direction: AnchorRight, Offset: -10}))
}

func TestParseAnchorDirection(t *testing.T) {
	d, err := ParseAnchorDirection("")
	require.NoError(t, err)
	require.Equal(t, AnchorLeft, d)

	d, err = ParseAnchorDirection(" RIGHT ")
	require.NoError(t, err)
	require.Equal(t, AnchorRight, d)

	_, err = ParseAnchorDirection("up")
	require.Error(t, err)
}

func TestParseOrientation(t *testing.T) {
	o, err := ParseOrientation("")
	require.NoError(t, err)
	require.Equal(t, Horizontal, o)

	o, err = ParseOrientation("Vertical")
	require.NoError(t, err)
	require.Equal(t, Vertical, o)

	_, err = ParseOrientation("diagonal")
	require.Error(t, err)
}
