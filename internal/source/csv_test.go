package source

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bars.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCSVSource_Load(t *testing.T) {
	path := writeCSV(t, `time,open,high,low,close,volume
2024-01-01T00:00:00Z,100,105,98,103,5000
2024-01-01T01:00:00Z,103,110,101,108,6200
`)
	bars, err := (&CSVSource{Path: path}).Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}
	b := bars[0]
	if b.Open != 100 || b.High != 105 || b.Low != 98 || b.Close != 103 || b.Volume != 5000 {
		t.Errorf("unexpected first bar: %+v", b)
	}
	if !b.Time.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected time: %v", b.Time)
	}
}

func TestCSVSource_UnixSecondsNoHeader(t *testing.T) {
	path := writeCSV(t, "1704067200,100,105,98,103\n1704070800,103,110,101,108\n")
	bars, err := (&CSVSource{Path: path}).Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}
	if bars[0].Volume != 0 {
		t.Errorf("missing volume column should default to 0, got %v", bars[0].Volume)
	}
	if !bars[1].Time.After(bars[0].Time) {
		t.Error("times not ascending")
	}
}

func TestCSVSource_BadRow(t *testing.T) {
	path := writeCSV(t, "2024-01-01T00:00:00Z,100,notanumber,98,103\n")
	if _, err := (&CSVSource{Path: path}).Load(); err == nil {
		t.Fatal("expected an error for a malformed row")
	}
}

func TestCSVSource_MissingFile(t *testing.T) {
	if _, err := (&CSVSource{Path: filepath.Join(t.TempDir(), "nope.csv")}).Load(); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestMockSource_Deterministic(t *testing.T) {
	src := &MockSource{Base: 100, Count: 50}
	a, err := src.Load()
	if err != nil {
		t.Fatal(err)
	}
	b, err := src.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("mock series must be deterministic")
	}
	for i := 1; i < len(a); i++ {
		if !a[i].Time.After(a[i-1].Time) {
			t.Fatalf("bar %d time not ascending", i)
		}
		if a[i].High < a[i].Low {
			t.Fatalf("bar %d high below low", i)
		}
	}
}
