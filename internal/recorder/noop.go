package recorder

import "ChanStruct/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRun(_ *AnalysisRun, _ []model.ConsolidationZone) error { return nil }
func (n *NoopRecorder) Close() error                                                { return nil }
