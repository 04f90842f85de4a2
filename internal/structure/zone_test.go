package structure

import (
	"math"
	"testing"

	"ChanStruct/internal/model"
)

// zstroke builds a stroke from its two endpoint prices; direction follows
// the price move. Only prices and direction matter to the zone detectors.
func zstroke(startPrice, endPrice float64) model.Stroke {
	dir := model.DirDown
	if endPrice > startPrice {
		dir = model.DirUp
	}
	return model.Stroke{
		Start:     &model.TurningPoint{Price: startPrice},
		End:       &model.TurningPoint{Price: endPrice},
		Direction: dir,
		BarSpan:   5,
	}
}

func TestZoneDetectors_InsufficientStrokes(t *testing.T) {
	detectors := []ZoneDetector{NewAnchorDetector(), NewIncrementalDetector()}
	strokes := []model.Stroke{zstroke(95, 105), zstroke(105, 98)}
	for _, d := range detectors {
		if zones := d.Detect(nil, 3); len(zones) != 0 {
			t.Errorf("%s: expected no zones for nil strokes, got %d", d.Name(), len(zones))
		}
		if zones := d.Detect(strokes, 3); len(zones) != 0 {
			t.Errorf("%s: expected no zones for 2 strokes, got %d", d.Name(), len(zones))
		}
	}
}

func TestAnchorDetect_Basic(t *testing.T) {
	strokes := []model.Stroke{
		zstroke(95, 105),  // range [95, 105]
		zstroke(110, 98),  // range [98, 110]
		zstroke(90, 103),  // range [90, 103]
	}
	zones := NewAnchorDetector().Detect(strokes, 3)
	if len(zones) != 1 {
		t.Fatalf("expected 1 zone, got %d", len(zones))
	}
	z := zones[0]
	if z.Upper != 103 || z.Lower != 98 {
		t.Errorf("bounds ZG=%.1f ZD=%.1f, want ZG=103 ZD=98", z.Upper, z.Lower)
	}
	if z.FirstStroke != 0 || z.StrokeCount != 3 {
		t.Errorf("span first=%d count=%d, want first=0 count=3", z.FirstStroke, z.StrokeCount)
	}
	wantHeight := (103.0 - 98.0) / 100.5 * 100
	if math.Abs(z.HeightPct-wantHeight) > 1e-9 {
		t.Errorf("height %.4f%%, want %.4f%%", z.HeightPct, wantHeight)
	}
}

func TestAnchorDetect_Extension(t *testing.T) {
	strokes := []model.Stroke{
		zstroke(95, 105),
		zstroke(110, 98),
		zstroke(90, 103),
		zstroke(99, 102),  // nested inside [98, 103]: extends
		zstroke(120, 130), // disjoint: stops the extension
	}
	zones := NewAnchorDetector().Detect(strokes, 3)
	if len(zones) != 1 {
		t.Fatalf("expected 1 zone, got %d", len(zones))
	}
	if zones[0].StrokeCount != 4 {
		t.Errorf("stroke count %d, want 4", zones[0].StrokeCount)
	}
}

func TestAnchorDetect_PartialOverlapDoesNotExtend(t *testing.T) {
	// The 4th stroke overlaps [98, 103] but crosses only the upper bound:
	// it is neither nested in the band nor spanning it, so it does not
	// extend the zone.
	strokes := []model.Stroke{
		zstroke(95, 105),
		zstroke(110, 98),
		zstroke(90, 103),
		zstroke(99, 104),
	}
	zones := NewAnchorDetector().Detect(strokes, 3)
	if len(zones) != 1 {
		t.Fatalf("expected 1 zone, got %d", len(zones))
	}
	if zones[0].StrokeCount != 3 {
		t.Errorf("stroke count %d, want 3", zones[0].StrokeCount)
	}
}

func TestAnchorDetect_NoBand(t *testing.T) {
	strokes := []model.Stroke{
		zstroke(10, 20),
		zstroke(40, 30),
		zstroke(50, 60),
	}
	if zones := NewAnchorDetector().Detect(strokes, 3); len(zones) != 0 {
		t.Fatalf("expected no zones for disjoint strokes, got %d", len(zones))
	}
}

func TestAnchorDetect_ZonesDoNotShareStrokes(t *testing.T) {
	strokes := []model.Stroke{
		zstroke(95, 105),
		zstroke(110, 98),
		zstroke(90, 103),
		zstroke(195, 205),
		zstroke(210, 198),
		zstroke(190, 203),
	}
	zones := NewAnchorDetector().Detect(strokes, 3)
	if len(zones) != 2 {
		t.Fatalf("expected 2 zones, got %d", len(zones))
	}
	if zones[0].FirstStroke != 0 || zones[1].FirstStroke != 3 {
		t.Errorf("zone starts %d/%d, want 0/3", zones[0].FirstStroke, zones[1].FirstStroke)
	}
	for i, z := range zones {
		if z.Upper <= z.Lower {
			t.Errorf("zone %d: upper %.1f not above lower %.1f", i, z.Upper, z.Lower)
		}
	}
}

func TestIncrementalDetect_Narrowing(t *testing.T) {
	strokes := []model.Stroke{
		zstroke(10, 20), // UP: lower bound starts at 10
		zstroke(20, 12), // DOWN: upper bound starts at 20
		zstroke(12, 19), // UP: raises the lower bound to 12
		zstroke(19, 13), // DOWN: lowers the upper bound to 19
	}
	zones := NewIncrementalDetector().Detect(strokes, 3)
	if len(zones) != 1 {
		t.Fatalf("expected 1 zone, got %d", len(zones))
	}
	z := zones[0]
	if z.Upper != 19 || z.Lower != 12 {
		t.Errorf("bounds [%.1f, %.1f], want [12, 19]", z.Lower, z.Upper)
	}
	if z.FirstStroke != 0 || z.StrokeCount != 4 {
		t.Errorf("span first=%d count=%d, want first=0 count=4", z.FirstStroke, z.StrokeCount)
	}
}

func TestIncrementalDetect_RejectionClosesZone(t *testing.T) {
	strokes := []model.Stroke{
		zstroke(10, 20),
		zstroke(20, 12),
		zstroke(12, 19),
		zstroke(19, 13),
		zstroke(25, 30), // lower bound would jump above the upper: closes the zone
	}
	zones := NewIncrementalDetector().Detect(strokes, 3)
	if len(zones) != 1 {
		t.Fatalf("expected 1 zone, got %d", len(zones))
	}
	if zones[0].StrokeCount != 4 {
		t.Errorf("stroke count %d, want 4", zones[0].StrokeCount)
	}
}

func TestIncrementalDetect_WidthMonotone(t *testing.T) {
	strokes := []model.Stroke{
		zstroke(10, 20),
		zstroke(20, 12),
		zstroke(12, 19),
		zstroke(19, 13),
		zstroke(13, 18),
		zstroke(18, 14),
	}
	prevWidth := math.Inf(1)
	for n := 3; n <= len(strokes); n++ {
		zones := NewIncrementalDetector().Detect(strokes[:n], 3)
		if len(zones) != 1 {
			t.Fatalf("prefix %d: expected 1 zone, got %d", n, len(zones))
		}
		width := zones[0].Upper - zones[0].Lower
		if width > prevWidth {
			t.Errorf("prefix %d: width %.2f grew past %.2f", n, width, prevWidth)
		}
		prevWidth = width
	}
}

func TestIncrementalDetect_RequiresBothBounds(t *testing.T) {
	// All-UP strokes never set the upper bound: no zone.
	strokes := []model.Stroke{
		zstroke(10, 20),
		zstroke(11, 21),
		zstroke(12, 22),
	}
	if zones := NewIncrementalDetector().Detect(strokes, 3); len(zones) != 0 {
		t.Fatalf("expected no zones without a DOWN stroke, got %d", len(zones))
	}
}

func TestNewZoneDetector(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"anchor", "anchor", false},
		{"", "anchor", false},
		{"incremental", "incremental", false},
		{"bogus", "", true},
	}
	for _, tt := range tests {
		d, err := NewZoneDetector(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NewZoneDetector(%q): expected error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewZoneDetector(%q): %v", tt.name, err)
			continue
		}
		if d.Name() != tt.want {
			t.Errorf("NewZoneDetector(%q).Name() = %s, want %s", tt.name, d.Name(), tt.want)
		}
	}
}
