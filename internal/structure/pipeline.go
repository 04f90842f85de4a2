package structure

import "ChanStruct/internal/model"

// Default filter parameters.
const (
	DefaultMinStrokeBars  = 5
	DefaultMinZoneStrokes = 3
)

// Analyzer runs the full decomposition pipeline with fixed parameters. It is
// stateless between calls and safe for concurrent use on independent inputs.
type Analyzer struct {
	MinStrokeBars  int
	MinZoneStrokes int
	Rule           MergeRule
	Detector       ZoneDetector
}

// NewAnalyzer creates an Analyzer, filling defaults for non-positive
// parameters and a nil detector.
func NewAnalyzer(minStrokeBars, minZoneStrokes int, rule MergeRule, det ZoneDetector) *Analyzer {
	if minStrokeBars <= 0 {
		minStrokeBars = DefaultMinStrokeBars
	}
	if minZoneStrokes <= 0 {
		minZoneStrokes = DefaultMinZoneStrokes
	}
	if det == nil {
		det = NewAnchorDetector()
	}
	return &Analyzer{
		MinStrokeBars:  minStrokeBars,
		MinZoneStrokes: minZoneStrokes,
		Rule:           rule,
		Detector:       det,
	}
}

// Analysis holds the structural decomposition of one bar sequence. All
// slices are owned by the Analysis; strokes reference elements of Points.
// Trace is nil unless the run collected diagnostics.
type Analysis struct {
	Merged  []model.MergedBar
	Points  []model.TurningPoint
	Strokes []model.Stroke
	Zones   []model.ConsolidationZone
	Trace   *Trace
}

// Analyze decomposes bars into merged bars, turning points, strokes and
// consolidation zones. Bar ordering is validated up front and fails fast
// with ErrInvalidOrdering; empty input fails with ErrInsufficientData.
// Later stages with too little input return empty sequences, never errors.
func (a *Analyzer) Analyze(bars []model.Bar) (*Analysis, error) {
	return a.analyze(bars, nil)
}

// AnalyzeWithTrace is Analyze with rejected-candidate diagnostics collected
// into the result's Trace.
func (a *Analyzer) AnalyzeWithTrace(bars []model.Bar) (*Analysis, error) {
	return a.analyze(bars, &Trace{})
}

func (a *Analyzer) analyze(bars []model.Bar, tr *Trace) (*Analysis, error) {
	if err := ValidateBars(bars); err != nil {
		return nil, err
	}
	merged, err := MergeBars(bars, a.Rule)
	if err != nil {
		return nil, err
	}
	points := DetectTurningPoints(merged)
	strokes := buildStrokes(points, a.MinStrokeBars, tr)
	zones := a.Detector.Detect(strokes, a.MinZoneStrokes)
	return &Analysis{
		Merged:  merged,
		Points:  points,
		Strokes: strokes,
		Zones:   zones,
		Trace:   tr,
	}, nil
}
