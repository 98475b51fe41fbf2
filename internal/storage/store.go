package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/ddalab/internal/driver"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Signal    string             `json:"signal"`
	Rule      string             `json:"rule"`
	Timestamp time.Time          `json:"timestamp"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	Acc0      float64            `json:"acc0"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (s *Store) Save(sig, rule string, dt, duration, acc0 float64, result *driver.Result) (string, error) {
	runID := fmt.Sprintf("%s_%s_%d", sig, rule, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Signal:    sig,
		Rule:      rule,
		Timestamp: time.Now(),
		Dt:        dt,
		Duration:  duration,
		Acc0:      acc0,
		Metrics:   result.Metrics,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "trace.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(result.Values) == 0 {
		return runID, nil
	}

	if err := w.Write([]string{"time", "sample", "accumulator"}); err != nil {
		return "", err
	}

	// the initial row predates any sample
	for i := range result.Values {
		sample := "0"
		if i > 0 && i-1 < len(result.Samples) {
			sample = strconv.FormatFloat(result.Samples[i-1], 'f', 6, 64)
		}
		row := []string{
			strconv.FormatFloat(result.Times[i], 'f', 6, 64),
			sample,
			strconv.FormatFloat(result.Values[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadTrace(runID string) (times, samples, values []float64, err error) {
	csvPath := filepath.Join(s.baseDir, runID, "trace.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 3

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}

	if len(records) < 2 {
		return []float64{}, []float64{}, []float64{}, nil
	}

	times = make([]float64, 0, len(records)-1)
	samples = make([]float64, 0, len(records)-1)
	values = make([]float64, 0, len(records)-1)

	for i := 1; i < len(records); i++ {
		t, err := strconv.ParseFloat(records[i][0], 64)
		if err != nil {
			continue
		}
		y, err := strconv.ParseFloat(records[i][1], 64)
		if err != nil {
			continue
		}
		v, err := strconv.ParseFloat(records[i][2], 64)
		if err != nil {
			continue
		}
		times = append(times, t)
		samples = append(samples, y)
		values = append(values, v)
	}

	return times, samples, values, nil
}
