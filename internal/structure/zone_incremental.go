package structure

import "ChanStruct/internal/model"

// IncrementalDetector is the dynamic-boundary strategy: instead of fixing
// the band up front it narrows it one stroke at a time. UP strokes raise the
// lower bound (zg, from their lowest endpoint price), DOWN strokes lower the
// upper bound (zd, from their highest endpoint price), and accumulation
// stops as soon as a stroke would invert the band. Zones come out tighter
// than the anchor strategy's as a rule.
type IncrementalDetector struct{}

// NewIncrementalDetector creates the dynamic-boundary zone detector.
func NewIncrementalDetector() *IncrementalDetector { return &IncrementalDetector{} }

func (d *IncrementalDetector) Name() string { return "incremental" }

// Detect scans strokes left to right. From each start position it
// accumulates strokes until one is rejected, then validates the run: at
// least minStrokes strokes, both bounds set, and a strictly positive band
// height. On success the scan resumes past the zone; otherwise it advances
// by one stroke.
func (d *IncrementalDetector) Detect(strokes []model.Stroke, minStrokes int) []model.ConsolidationZone {
	if minStrokes < 1 || len(strokes) < minStrokes {
		return nil
	}

	var zones []model.ConsolidationZone
	i := 0
	for i < len(strokes) {
		var zg, zd float64
		var hasZG, hasZD bool
		count := 0

		for j := i; j < len(strokes); j++ {
			s := strokes[j]
			if s.Direction == model.DirUp {
				low := s.PriceLow()
				if !hasZG {
					zg, hasZG = low, true
				} else {
					cand := maxOf(zg, low)
					if hasZD && cand > zd {
						break
					}
					zg = cand
				}
			} else {
				high := s.PriceHigh()
				if !hasZD {
					zd, hasZD = high, true
				} else {
					cand := minOf(zd, high)
					if hasZG && cand < zg {
						break
					}
					zd = cand
				}
			}
			count++
		}

		if count >= minStrokes && hasZG && hasZD && zd > zg {
			zones = append(zones, model.ConsolidationZone{
				Upper:       zd,
				Lower:       zg,
				FirstStroke: i,
				StrokeCount: count,
				HeightPct:   heightPct(zd, zg),
			})
			i += count
		} else {
			i++
		}
	}
	return zones
}
