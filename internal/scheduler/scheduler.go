package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"ChanStruct/internal/recorder"
	"ChanStruct/internal/report"
	"ChanStruct/internal/source"
	"ChanStruct/internal/structure"
)

// Scheduler re-runs structural analysis on a cron schedule (watch mode) over
// a bar source that is expected to grow between runs.
type Scheduler struct {
	Cron     *cron.Cron
	Source   source.BarSource
	Analyzer *structure.Analyzer
	Recorder recorder.Recorder
	Symbol   string
	Ctx      context.Context

	lastZoneCount int
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, src source.BarSource, an *structure.Analyzer, rec recorder.Recorder, symbol string) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Source:   src,
		Analyzer: an,
		Recorder: rec,
		Symbol:   symbol,
		Ctx:      ctx,
		// Never emitted by a run, so the first run always reports.
		lastZoneCount: -1,
	}
}

// Register adds the watch task under the given cron expression.
func (s *Scheduler) Register(watchCron string) error {
	if _, err := s.Cron.AddFunc(watchCron, s.watchTask); err != nil {
		return fmt.Errorf("register watch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the watch task immediately (for RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.watchTask()
}

func (s *Scheduler) watchTask() {
	if err := s.Ctx.Err(); err != nil {
		return
	}
	log.Printf("[INFO] running analysis for %s (source %s)", s.Symbol, s.Source.Name())

	bars, err := s.Source.Load()
	if err != nil {
		log.Printf("[ERROR] load bars: %v", err)
		return
	}
	analysis, err := s.Analyzer.Analyze(bars)
	if err != nil {
		log.Printf("[ERROR] analyze: %v", err)
		return
	}

	if len(analysis.Zones) != s.lastZoneCount {
		log.Printf("[INFO] zone count changed: %d -> %d", s.lastZoneCount, len(analysis.Zones))
		log.Print(report.FormatSummary(s.Symbol, s.Analyzer.Detector.Name(), analysis))
	}
	s.lastZoneCount = len(analysis.Zones)

	if err := s.Recorder.RecordRun(&recorder.AnalysisRun{
		Symbol:      s.Symbol,
		Strategy:    s.Analyzer.Detector.Name(),
		MergeRule:   s.Analyzer.Rule.String(),
		BarCount:    len(bars),
		MergedCount: len(analysis.Merged),
		PointCount:  len(analysis.Points),
		StrokeCount: len(analysis.Strokes),
		ZoneCount:   len(analysis.Zones),
	}, analysis.Zones); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
}
