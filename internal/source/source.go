package source

import (
	"time"

	"ChanStruct/internal/model"
)

// BarSource loads an ordered bar sequence from an external store. The
// contract is array-of-struct only; schema and retrieval belong to the
// store, not to this module.
type BarSource interface {
	Load() ([]model.Bar, error)
	Name() string
}

// MockSource generates a deterministic zig-zag series for development and
// testing: a triangle wave around Base with a slow upward drift, so merging,
// fractals, strokes and zones all get exercised.
type MockSource struct {
	Base  float64
	Count int
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) Load() ([]model.Bar, error) {
	base := m.Base
	if base == 0 {
		base = 100
	}
	count := m.Count
	if count == 0 {
		count = 120
	}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		// Triangle wave with period 14, amplitude 4% of base.
		phase := i % 14
		if phase > 7 {
			phase = 14 - phase
		}
		p := base * (1 + 0.04*float64(phase-3)/7 + 0.0005*float64(i))
		bars[i] = model.Bar{
			Time:   start.Add(time.Duration(i) * time.Hour),
			Open:   p * 0.998,
			High:   p * 1.004,
			Low:    p * 0.996,
			Close:  p,
			Volume: 1000,
		}
	}
	return bars, nil
}
