package model

import "time"

// MergedBar is one or more consecutive Bars with containment resolved.
// Time is the time of the first contributing bar. Direction records which
// extremum rule produced the bar relative to its finalized predecessor.
type MergedBar struct {
	Time       time.Time
	High       float64
	Low        float64
	Close      float64
	MergeCount int
	Direction  Direction
}

// Contains reports whether m's [Low, High] range fully encloses o's.
func (m MergedBar) Contains(o MergedBar) bool {
	return m.High >= o.High && m.Low <= o.Low
}

// PointType classifies a turning point.
type PointType string

const (
	Peak   PointType = "PEAK"
	Trough PointType = "TROUGH"
)

// TurningPoint is a local price extremum spanning three consecutive merged
// bars. Index is the position in the merged-bar sequence. Price is the high
// for a PEAK and the low for a TROUGH; High/Low carry the full bar range.
type TurningPoint struct {
	Type  PointType
	Index int
	Price float64
	High  float64
	Low   float64
	Time  time.Time
}

// Stroke is a directional price move connecting two alternating turning
// points. Start and End reference the detector's points; they are not copies.
type Stroke struct {
	Start     *TurningPoint
	End       *TurningPoint
	Direction Direction
	BarSpan   int
}

// PriceHigh returns the higher of the stroke's endpoint prices.
func (s Stroke) PriceHigh() float64 {
	if s.Start.Price > s.End.Price {
		return s.Start.Price
	}
	return s.End.Price
}

// PriceLow returns the lower of the stroke's endpoint prices.
func (s Stroke) PriceLow() float64 {
	if s.Start.Price < s.End.Price {
		return s.Start.Price
	}
	return s.End.Price
}

// ConsolidationZone is a price band where three or more consecutive strokes
// overlap. Upper is the ZG bound, Lower the ZD bound; Upper > Lower always.
type ConsolidationZone struct {
	Upper       float64
	Lower       float64
	FirstStroke int
	StrokeCount int
	HeightPct   float64
}
