package model

import "time"

// Direction of a merged bar or stroke.
type Direction string

const (
	DirUp      Direction = "UP"
	DirDown    Direction = "DOWN"
	DirUnknown Direction = "UNKNOWN"
)

// Bar represents a single OHLC candlestick bar. Bars are input records and
// are never mutated; callers supply them in strictly ascending time order.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}
