package structure

import "ChanStruct/internal/model"

// DetectTurningPoints finds 3-bar fractals across merged bars. A bar is a
// PEAK when both its high and its low stand above the neighbors' highs and
// lows; a TROUGH is the mirror case. Candidates matching the type of the
// most recently accepted point are discarded, so adjacent points always
// alternate. Returns an empty result for fewer than 3 merged bars.
func DetectTurningPoints(merged []model.MergedBar) []model.TurningPoint {
	if len(merged) < 3 {
		return nil
	}

	var out []model.TurningPoint
	for i := 1; i <= len(merged)-2; i++ {
		prev, cur, next := merged[i-1], merged[i], merged[i+1]

		var typ model.PointType
		var price float64
		switch {
		case prev.High < cur.High && cur.High > next.High &&
			prev.Low < cur.Low && cur.Low > next.Low:
			typ, price = model.Peak, cur.High
		case prev.High > cur.High && cur.High < next.High &&
			prev.Low > cur.Low && cur.Low < next.Low:
			typ, price = model.Trough, cur.Low
		default:
			continue
		}

		if n := len(out); n > 0 && out[n-1].Type == typ {
			// Same type as the last accepted point: keep the earlier one.
			continue
		}
		out = append(out, model.TurningPoint{
			Type:  typ,
			Index: i,
			Price: price,
			High:  cur.High,
			Low:   cur.Low,
			Time:  cur.Time,
		})
	}
	return out
}
