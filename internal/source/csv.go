package source

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"ChanStruct/internal/model"
)

// CSVSource reads bars from a CSV file with rows of
// time,open,high,low,close[,volume]. Time is RFC3339 or unix seconds.
// A single header row is tolerated and skipped.
type CSVSource struct {
	Path string
}

func (c *CSVSource) Name() string { return "csv:" + c.Path }

func (c *CSVSource) Load() ([]model.Bar, error) {
	f, err := os.Open(c.Path)
	if err != nil {
		return nil, fmt.Errorf("open bars csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read bars csv: %w", err)
	}

	bars := make([]model.Bar, 0, len(records))
	for i, rec := range records {
		if len(rec) < 5 {
			return nil, fmt.Errorf("row %d: expected at least 5 fields, got %d", i+1, len(rec))
		}
		t, err := parseTime(rec[0])
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("row %d time: %w", i+1, err)
		}

		vals := make([]float64, 4)
		for j := 1; j <= 4; j++ {
			v, err := strconv.ParseFloat(rec[j], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d field %d: %w", i+1, j+1, err)
			}
			vals[j-1] = v
		}
		var volume float64
		if len(rec) > 5 && rec[5] != "" {
			v, err := strconv.ParseFloat(rec[5], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d volume: %w", i+1, err)
			}
			volume = v
		}

		bars = append(bars, model.Bar{
			Time:   t,
			Open:   vals[0],
			High:   vals[1],
			Low:    vals[2],
			Close:  vals[3],
			Volume: volume,
		})
	}
	return bars, nil
}

func parseTime(s string) (time.Time, error) {
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}
	return time.Parse(time.RFC3339, s)
}
