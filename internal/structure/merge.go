package structure

import (
	"errors"
	"fmt"

	"ChanStruct/internal/model"
)

// MergeRule selects how a containment merge combines the highs and lows of
// the two bars involved.
type MergeRule int

const (
	// RuleExtremum pulls both bounds toward the merge direction's extremum:
	// UP takes max(high)/max(low), DOWN takes min(high)/min(low). This is the
	// rule the downstream fractal detection was tuned against.
	RuleExtremum MergeRule = iota
	// RuleEnvelope keeps the bounding envelope instead: UP takes
	// max(high)/min(low), DOWN takes min(high)/max(low).
	RuleEnvelope
)

// String returns the config-facing name of the rule.
func (r MergeRule) String() string {
	if r == RuleEnvelope {
		return "envelope"
	}
	return "extremum"
}

var (
	// ErrInsufficientData is returned when a stage has no input to work with.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrInvalidOrdering is returned when bars are not strictly ascending in time.
	ErrInvalidOrdering = errors.New("bars not in ascending time order")
)

// ValidateBars checks that bar times are strictly ascending.
func ValidateBars(bars []model.Bar) error {
	for i := 1; i < len(bars); i++ {
		if !bars[i].Time.After(bars[i-1].Time) {
			return fmt.Errorf("%w: bar %d (%s) not after bar %d (%s)",
				ErrInvalidOrdering, i, bars[i].Time.Format("2006-01-02 15:04:05"),
				i-1, bars[i-1].Time.Format("2006-01-02 15:04:05"))
		}
	}
	return nil
}

// MergeBars resolves containment between consecutive bars into a sequence of
// merged bars. The result has no two adjacent bars whose ranges contain one
// another. Returns ErrInsufficientData on empty input.
func MergeBars(bars []model.Bar, rule MergeRule) ([]model.MergedBar, error) {
	if len(bars) == 0 {
		return nil, ErrInsufficientData
	}

	out := make([]model.MergedBar, 0, len(bars))
	cur := model.MergedBar{
		Time:       bars[0].Time,
		High:       bars[0].High,
		Low:        bars[0].Low,
		Close:      bars[0].Close,
		MergeCount: 1,
		Direction:  model.DirUnknown,
	}

	for _, b := range bars[1:] {
		next := model.MergedBar{
			Time:       b.Time,
			High:       b.High,
			Low:        b.Low,
			Close:      b.Close,
			MergeCount: 1,
			Direction:  model.DirUnknown,
		}

		if !cur.Contains(next) && !next.Contains(cur) {
			out = append(out, finalize(cur, out))
			cur = next
			continue
		}

		// Containment: fold next into cur. The working direction picks which
		// extremum rule applies; it is inferred on the first merge and kept
		// for the rest of the run.
		dir := cur.Direction
		if dir == model.DirUnknown {
			if next.High > cur.High {
				dir = model.DirUp
			} else {
				dir = model.DirDown
			}
		}
		high, low := mergeBounds(rule, dir, cur, next)
		cur = model.MergedBar{
			Time:       cur.Time,
			High:       high,
			Low:        low,
			Close:      next.Close,
			MergeCount: cur.MergeCount + 1,
			Direction:  dir,
		}
	}

	out = append(out, finalize(cur, out))
	return out, nil
}

// finalize assigns the outgoing direction of a merged bar by comparing its
// high against the previously finalized bar. The first bar gets UNKNOWN.
func finalize(cur model.MergedBar, done []model.MergedBar) model.MergedBar {
	if len(done) == 0 {
		cur.Direction = model.DirUnknown
		return cur
	}
	if cur.High > done[len(done)-1].High {
		cur.Direction = model.DirUp
	} else {
		cur.Direction = model.DirDown
	}
	return cur
}

func mergeBounds(rule MergeRule, dir model.Direction, a, b model.MergedBar) (high, low float64) {
	up := dir == model.DirUp
	switch {
	case rule == RuleEnvelope && up:
		return maxOf(a.High, b.High), minOf(a.Low, b.Low)
	case rule == RuleEnvelope:
		return minOf(a.High, b.High), maxOf(a.Low, b.Low)
	case up:
		return maxOf(a.High, b.High), maxOf(a.Low, b.Low)
	default:
		return minOf(a.High, b.High), minOf(a.Low, b.Low)
	}
}

func maxOf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minOf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
