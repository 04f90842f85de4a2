package structure

import (
	"math"

	"ChanStruct/internal/model"
)

// AnchorDetector is the static Anchor-3 strategy: it fixes the zone bounds
// from the first minStrokes strokes (ZG = lowest stroke high, ZD = highest
// stroke low) and then extends the zone with every following stroke that
// still intersects the fixed band.
type AnchorDetector struct{}

// NewAnchorDetector creates the static Anchor-3 zone detector.
func NewAnchorDetector() *AnchorDetector { return &AnchorDetector{} }

func (d *AnchorDetector) Name() string { return "anchor" }

// Detect scans strokes left to right. At each start position it derives the
// candidate band from the first minStrokes strokes; if the band is valid and
// every seed stroke intersects it, the zone is extended greedily and the
// scan resumes past it, so emitted zones never share strokes.
func (d *AnchorDetector) Detect(strokes []model.Stroke, minStrokes int) []model.ConsolidationZone {
	if minStrokes < 1 || len(strokes) < minStrokes {
		return nil
	}

	var zones []model.ConsolidationZone
	i := 0
	for i <= len(strokes)-minStrokes {
		zg := math.Inf(1)  // lowest high across the seed strokes
		zd := math.Inf(-1) // highest low
		for _, s := range strokes[i : i+minStrokes] {
			zg = minOf(zg, s.PriceHigh())
			zd = maxOf(zd, s.PriceLow())
		}
		if zg <= zd {
			i++
			continue
		}

		ok := true
		for _, s := range strokes[i : i+minStrokes] {
			if !intersectsBand(s, zd, zg) {
				ok = false
				break
			}
		}
		if !ok {
			i++
			continue
		}

		count := minStrokes
		for j := i + minStrokes; j < len(strokes); j++ {
			if !intersectsBand(strokes[j], zd, zg) {
				break
			}
			count++
		}

		zones = append(zones, model.ConsolidationZone{
			Upper:       zg,
			Lower:       zd,
			FirstStroke: i,
			StrokeCount: count,
			HeightPct:   heightPct(zg, zd),
		})
		i += count
	}
	return zones
}

// intersectsBand reports whether the stroke's price range is nested inside
// the band [zd, zg] or spans it entirely. A range crossing only one bound
// does not qualify.
func intersectsBand(s model.Stroke, zd, zg float64) bool {
	hi, lo := s.PriceHigh(), s.PriceLow()
	nested := hi <= zg && lo >= zd
	spans := hi >= zg && lo <= zd
	return nested || spans
}
