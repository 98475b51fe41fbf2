package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/san-kum/ddalab/internal/dda"
	"github.com/san-kum/ddalab/internal/driver"
	"github.com/san-kum/ddalab/internal/signal"
)

func runFixture(t *testing.T) *driver.Result {
	t.Helper()
	d := driver.New(signal.NewConstant(2.0), dda.NewEuler())
	result, err := d.Run(context.Background(), driver.Config{Dt: 1.0, Duration: 5.0})
	if err != nil {
		t.Fatal(err)
	}
	return result
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	result := runFixture(t)

	runID, err := st.Save("constant", "euler", 1.0, 5.0, 0, result)
	if err != nil {
		t.Fatal(err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Signal != "constant" || meta.Rule != "euler" {
		t.Errorf("metadata mismatch: %+v", meta)
	}

	times, samples, values, err := st.LoadTrace(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(times) != 6 || len(samples) != 6 || len(values) != 6 {
		t.Fatalf("unexpected trace lengths: %d %d %d", len(times), len(samples), len(values))
	}
	if math.Abs(values[len(values)-1]-(-10.0)) > 1e-9 {
		t.Errorf("expected final -10.0, got %f", values[len(values)-1])
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	result := runFixture(t)
	if _, err := st.Save("constant", "euler", 1.0, 5.0, 0, result); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestListEmptyBaseDir(t *testing.T) {
	st := New(t.TempDir() + "/nothing-here")

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestLoadMissingRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("no_such_run"); err == nil {
		t.Error("expected error for missing run")
	}
}

func TestExportJSON(t *testing.T) {
	meta := &RunMetadata{
		ID:     "sine_trapezoid_1",
		Signal: "sine",
		Rule:   "trapezoid",
		Dt:     0.01,
	}

	var buf bytes.Buffer
	err := ExportJSONTo(&buf, meta, []float64{0, 0.01}, []float64{0, 0.01}, []float64{0, -0.0001})
	if err != nil {
		t.Fatal(err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatal(err)
	}
	if data.Rule != "trapezoid" || data.Steps != 2 {
		t.Errorf("unexpected export: %+v", data)
	}
}
