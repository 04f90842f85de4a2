package recorder

import "ChanStruct/internal/model"

// AnalysisRun holds summary data for one pipeline execution.
type AnalysisRun struct {
	Symbol      string
	Strategy    string
	MergeRule   string
	BarCount    int
	MergedCount int
	PointCount  int
	StrokeCount int
	ZoneCount   int
}

// Recorder persists analysis results for later inspection.
type Recorder interface {
	RecordRun(run *AnalysisRun, zones []model.ConsolidationZone) error
	Close() error
}
