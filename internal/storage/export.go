package storage

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	ID       string             `json:"id"`
	Signal   string             `json:"signal"`
	Rule     string             `json:"rule"`
	Dt       float64            `json:"dt"`
	Duration float64            `json:"duration"`
	Acc0     float64            `json:"acc0"`
	Steps    int                `json:"steps"`
	Times    []float64          `json:"times"`
	Samples  []float64          `json:"samples"`
	Values   []float64          `json:"values"`
	Metrics  map[string]float64 `json:"metrics"`
}

func ExportJSONTo(w io.Writer, meta *RunMetadata, times, samples, values []float64) error {
	data := ExportData{
		ID:       meta.ID,
		Signal:   meta.Signal,
		Rule:     meta.Rule,
		Dt:       meta.Dt,
		Duration: meta.Duration,
		Acc0:     meta.Acc0,
		Steps:    len(times),
		Times:    times,
		Samples:  samples,
		Values:   values,
		Metrics:  meta.Metrics,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSONStdout(meta *RunMetadata, times, samples, values []float64) error {
	return ExportJSONTo(os.Stdout, meta, times, samples, values)
}
