package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ChanStruct/internal/config"
	"ChanStruct/internal/recorder"
	"ChanStruct/internal/report"
	"ChanStruct/internal/scheduler"
	"ChanStruct/internal/source"
	"ChanStruct/internal/structure"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] ChanStruct starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init bar source
	var src source.BarSource
	if cfg.Data.CSVPath != "" {
		src = &source.CSVSource{Path: cfg.Data.CSVPath}
	} else {
		src = &source.MockSource{}
	}
	log.Printf("[INFO] bar source: %s", src.Name())

	// Init analyzer
	det, err := structure.NewZoneDetector(cfg.Analysis.ZoneStrategy)
	if err != nil {
		log.Fatalf("[FATAL] init zone detector: %v", err)
	}
	rule := structure.RuleExtremum
	if cfg.Analysis.MergeRule == "envelope" {
		rule = structure.RuleEnvelope
	}
	analyzer := structure.NewAnalyzer(cfg.Analysis.MinStrokeBars, cfg.Analysis.MinZoneStrokes, rule, det)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// One-shot mode when no watch schedule is configured.
	if cfg.Schedule.WatchCron == "" {
		runOnce(cfg, src, analyzer, rec)
		return
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, src, analyzer, rec, cfg.Data.Symbol)
	if err := sched.Register(cfg.Schedule.WatchCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing analysis now")
		go sched.RunNow()
	}

	log.Println("[INFO] ChanStruct is watching. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] ChanStruct stopped")
}

func runOnce(cfg *config.Config, src source.BarSource, analyzer *structure.Analyzer, rec recorder.Recorder) {
	bars, err := src.Load()
	if err != nil {
		log.Fatalf("[FATAL] load bars: %v", err)
	}
	analysis, err := analyzer.AnalyzeWithTrace(bars)
	if err != nil {
		log.Fatalf("[FATAL] analyze: %v", err)
	}

	log.Print(report.FormatSummary(cfg.Data.Symbol, analyzer.Detector.Name(), analysis))

	if err := rec.RecordRun(&recorder.AnalysisRun{
		Symbol:      cfg.Data.Symbol,
		Strategy:    analyzer.Detector.Name(),
		MergeRule:   analyzer.Rule.String(),
		BarCount:    len(bars),
		MergedCount: len(analysis.Merged),
		PointCount:  len(analysis.Points),
		StrokeCount: len(analysis.Strokes),
		ZoneCount:   len(analysis.Zones),
	}, analysis.Zones); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
}
