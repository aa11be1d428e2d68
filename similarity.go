package charrom

import "sort"

// Cross-set similarity scoring. Characters are compared after
// trimming to their foreground bounding box and centering, so the
// same glyph shape at different absolute placements compares as
// identical.

// TrimCharacter crops a character to its foreground bounding box. An
// entirely empty character trims to a 1x1 background grid: a minimal
// sentinel, never an empty grid, so downstream size math stays safe.
func TrimCharacter(c Character) Character {
	box := GetBoundingBox(c)
	if box == nil {
		return NewCharacter(1, 1)
	}
	out := NewCharacter(box.MaxCol-box.MinCol+1, box.MaxRow-box.MinRow+1)
	for row := box.MinRow; row <= box.MaxRow; row++ {
		for col := box.MinCol; col <= box.MaxCol; col++ {
			out.Pixels[row-box.MinRow][col-box.MinCol] = c.Pixels[row][col]
		}
	}
	return out
}

// Comparison is a per-pixel mismatch count between two trimmed,
// centered characters over their common canvas.
type Comparison struct {
	DifferingPixels int
	TotalPixels     int
}

// Difference returns the mismatch fraction in [0, 1].
func (c Comparison) Difference() float64 {
	if c.TotalPixels == 0 {
		return 0
	}
	return float64(c.DifferingPixels) / float64(c.TotalPixels)
}

// CompareTrimmedCharacters trims both operands, centers each trimmed
// box inside a canvas sized to the larger of the two in each
// dimension, and counts per-pixel mismatches over that whole canvas.
func CompareTrimmedCharacters(a, b Character) Comparison {
	ta, tb := TrimCharacter(a), TrimCharacter(b)
	maxW := ta.Width()
	if tb.Width() > maxW {
		maxW = tb.Width()
	}
	maxH := ta.Height()
	if tb.Height() > maxH {
		maxH = tb.Height()
	}

	offAX := floorDiv(maxW-ta.Width(), 2)
	offAY := floorDiv(maxH-ta.Height(), 2)
	offBX := floorDiv(maxW-tb.Width(), 2)
	offBY := floorDiv(maxH-tb.Height(), 2)

	differing := 0
	for row := 0; row < maxH; row++ {
		for col := 0; col < maxW; col++ {
			pa := ta.At(row-offAY, col-offAX)
			pb := tb.At(row-offBY, col-offBX)
			if pa != pb {
				differing++
			}
		}
	}
	return Comparison{DifferingPixels: differing, TotalPixels: maxW * maxH}
}

// SimilarityResult scores one library set against the source set.
type SimilarityResult struct {
	ID                string
	Name              string
	ComparedPairs     int
	AverageDifference float64
	MatchPercentage   float64
}

// CalculateSimilarities compares the source characters against every
// library set (skipping excludeID when non-empty), pairing up to
// min(source, candidate) characters by index. Results come back
// sorted ascending by average difference, most similar first. Library
// sets that fail to deserialize are skipped rather than aborting the
// whole scan.
func CalculateSimilarities(source []Character, librarySets []SerializedCharacterSet, excludeID string) []SimilarityResult {
	results := make([]SimilarityResult, 0, len(librarySets))
	for _, stored := range librarySets {
		if excludeID != "" && stored.Metadata.ID == excludeID {
			continue
		}
		candidate, err := Deserialize(stored)
		if err != nil {
			continue
		}

		pairs := len(source)
		if len(candidate.Characters) < pairs {
			pairs = len(candidate.Characters)
		}
		var sum float64
		for i := 0; i < pairs; i++ {
			sum += CompareTrimmedCharacters(source[i], candidate.Characters[i]).Difference()
		}
		avg := 0.0
		if pairs > 0 {
			avg = sum / float64(pairs)
		}

		results = append(results, SimilarityResult{
			ID:                stored.Metadata.ID,
			Name:              stored.Metadata.Name,
			ComparedPairs:     pairs,
			AverageDifference: avg,
			MatchPercentage:   100 * (1 - avg),
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].AverageDifference < results[j].AverageDifference
	})
	return results
}
