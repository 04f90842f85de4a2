package structure

import (
	"fmt"

	"ChanStruct/internal/model"
)

// ZoneDetector groups consecutive overlapping strokes into consolidation
// zones. The two implementations apply materially different boundary rules
// and can legitimately disagree on zone count and bounds for the same stroke
// sequence; callers pick one or run both for comparison. Detect never
// errors: fewer than minStrokes strokes yields an empty result.
type ZoneDetector interface {
	Name() string
	Detect(strokes []model.Stroke, minStrokes int) []model.ConsolidationZone
}

// NewZoneDetector returns the detector registered under name
// ("anchor" or "incremental").
func NewZoneDetector(name string) (ZoneDetector, error) {
	switch name {
	case "anchor", "":
		return NewAnchorDetector(), nil
	case "incremental":
		return NewIncrementalDetector(), nil
	}
	return nil, fmt.Errorf("unknown zone strategy %q", name)
}

// heightPct returns the zone height as a percentage of its midpoint price.
func heightPct(upper, lower float64) float64 {
	mid := (upper + lower) / 2
	if mid == 0 {
		return 0
	}
	return (upper - lower) / mid * 100
}
