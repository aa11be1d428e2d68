package charrom

import (
	"reflect"
	"testing"
)

func TestScaleIdentity(t *testing.T) {
	t.Parallel()

	c := randomCharacter(8, 8, 11)
	for _, algo := range []ScaleAlgorithm{ScaleNearest, ScaleThreshold} {
		got := ScaleCharacter(c, 1, AnchorMiddleCenter, algo)
		if !reflect.DeepEqual(got, c) {
			t.Errorf("%s: scale 1 should be the identity", algo)
		}
	}
}

func TestScaleNearestUp(t *testing.T) {
	t.Parallel()

	// One lit pixel at the origin doubled with a top-left anchor:
	// the 2x2 scaled block fills the whole original frame.
	c := NewCharacter(2, 2)
	c.Pixels[0][0] = true
	got := ScaleCharacter(c, 2, AnchorTopLeft, ScaleNearest)
	if !got.Equal(FillCharacter(2, 2)) {
		t.Error("expected doubled origin pixel to fill the 2x2 frame")
	}
}

func TestScaleNearestUpClips(t *testing.T) {
	t.Parallel()

	// Output keeps the original dimensions: doubling does not grow
	// the character, it clips.
	c := randomCharacter(4, 4, 17)
	got := ScaleCharacter(c, 2, AnchorTopLeft, ScaleNearest)
	if got.Width() != 4 || got.Height() != 4 {
		t.Fatalf("expected 4x4 output, got %dx%d", got.Width(), got.Height())
	}
	// Top-left anchored, each output pixel samples src[r/2][c/2].
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got.Pixels[y][x] != c.Pixels[y/2][x/2] {
				t.Fatalf("pixel (%d,%d) should sample source (%d,%d)", y, x, y/2, x/2)
			}
		}
	}
}

func TestScaleNearestDown(t *testing.T) {
	t.Parallel()

	// Halving samples every other source pixel.
	c := NewCharacter(4, 4)
	c.Pixels[0][0] = true
	c.Pixels[0][2] = true
	got := ScaleCharacter(c, 0.5, AnchorTopLeft, ScaleNearest)
	if got.Width() != 4 || got.Height() != 4 {
		t.Fatalf("expected 4x4 frame, got %dx%d", got.Width(), got.Height())
	}
	if !got.Pixels[0][0] || !got.Pixels[0][1] {
		t.Error("expected sampled pixels at (0,0) and (0,1)")
	}
	if got.Pixels[1][0] || got.Pixels[0][2] {
		t.Error("expected background outside the scaled canvas samples")
	}
}

func TestScaleThresholdDown(t *testing.T) {
	t.Parallel()

	// Left half lit, halved with a centered anchor. Both output
	// pixels covering the lit half reach full coverage; the scaled
	// 2x2 canvas then sits at offset (1,1) in the 4x4 frame.
	c := charFromStrings(
		"##..",
		"##..",
		"##..",
		"##..",
	)
	got := ScaleCharacter(c, 0.5, AnchorMiddleCenter, ScaleThreshold)
	want := charFromStrings(
		"....",
		".#..",
		".#..",
		"....",
	)
	if !got.Equal(want) {
		t.Error("threshold downscale mismatch")
	}
}

func TestScaleThresholdCoverageBoundary(t *testing.T) {
	t.Parallel()

	// Halving a 2x2 block folds its four pixels into one output
	// pixel. Two lit pixels give exactly 50% coverage, which meets
	// the default threshold; one lit pixel (25%) does not.
	half := charFromStrings(
		"##",
		"..",
	)
	got := ScaleCharacter(half, 0.5, AnchorTopLeft, ScaleThreshold)
	if !got.Pixels[0][0] {
		t.Error("50% coverage should reach the 0.5 threshold")
	}

	quarter := charFromStrings(
		"#.",
		"..",
	)
	got = ScaleCharacter(quarter, 0.5, AnchorTopLeft, ScaleThreshold)
	if got.Pixels[0][0] {
		t.Error("25% coverage should stay below the 0.5 threshold")
	}
}

func TestScaleThresholdRetainsBlockWhenShrinking(t *testing.T) {
	t.Parallel()

	// Halving a solid centered block: the output pixel whose
	// footprint lies fully inside the block must stay lit.
	c := charFromStrings(
		".....",
		".###.",
		".###.",
		".###.",
		".....",
	)
	got := ScaleCharacter(c, 0.5, AnchorTopLeft, ScaleThreshold)
	// round(5*0.5) = 3, so the scaled canvas is 3x3; its center
	// pixel covers source rows 2-3, cols 2-3, all lit.
	if !got.Pixels[1][1] {
		t.Error("fully covered output pixel should be lit")
	}
	if GetBoundingBox(got) == nil {
		t.Error("threshold scaling should retain the block")
	}
}
