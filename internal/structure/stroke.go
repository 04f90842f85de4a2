package structure

import "ChanStruct/internal/model"

// BuildStrokes connects alternating turning points into directional strokes.
// A greedy forward scan holds an anchor point and tests each later candidate
// against three filters: the candidate must break past the anchor's price in
// the direction forced by the anchor's type, the two point ranges must not
// contain one another, and the stroke must span at least minBars merged
// bars. Rejected candidates are discarded for good; the anchor never
// retreats. Returns an empty result for fewer than 2 points.
//
// Emitted strokes reference elements of points; the caller must not mutate
// or reallocate the slice afterwards.
func BuildStrokes(points []model.TurningPoint, minBars int) []model.Stroke {
	return buildStrokes(points, minBars, nil)
}

func buildStrokes(points []model.TurningPoint, minBars int, tr *Trace) []model.Stroke {
	if len(points) < 2 {
		return nil
	}

	var out []model.Stroke
	anchor := 0
	for i := 1; i < len(points); i++ {
		cur := &points[anchor]
		next := &points[i]

		dir := model.DirDown
		if cur.Type == model.Trough {
			dir = model.DirUp
		}

		if (dir == model.DirUp && next.Price <= cur.Price) ||
			(dir == model.DirDown && next.Price >= cur.Price) {
			tr.rejectStroke(anchor, i, RejectNoBreak)
			continue
		}
		if pointRangesContain(cur, next) {
			tr.rejectStroke(anchor, i, RejectContainment)
			continue
		}
		span := next.Index - cur.Index + 1
		if span < minBars {
			tr.rejectStroke(anchor, i, RejectTooShort)
			continue
		}

		out = append(out, model.Stroke{
			Start:     cur,
			End:       next,
			Direction: dir,
			BarSpan:   span,
		})
		anchor = i
	}
	return out
}

// pointRangesContain reports whether either point's bar range encloses the
// other's. Ranges are normalized to [min(high,low), max(high,low)].
func pointRangesContain(a, b *model.TurningPoint) bool {
	aLo, aHi := minOf(a.High, a.Low), maxOf(a.High, a.Low)
	bLo, bHi := minOf(b.High, b.Low), maxOf(b.High, b.Low)
	return (aHi >= bHi && aLo <= bLo) || (bHi >= aHi && bLo <= aLo)
}
