// Package store persists completed runs: one directory per run with a
// JSON metadata file and the final field as CSV. It is a boundary layer;
// the core never touches the filesystem.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/pdebench/internal/engine"
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

type ErrorRecord struct {
	L2   float64 `json:"l2"`
	LInf float64 `json:"linf"`
}

type StabilityRecord struct {
	DtMax  float64 `json:"dt_max"`
	Ratio  float64 `json:"ratio"`
	Status string  `json:"status"`
}

type RunMetadata struct {
	ID          string          `json:"id"`
	Timestamp   time.Time       `json:"timestamp"`
	Equation    string          `json:"equation"`
	Scheme      string          `json:"scheme"`
	NX          int             `json:"nx"`
	LX          float64         `json:"lx"`
	Dt          float64         `json:"dt"`
	TMax        float64         `json:"tmax"`
	StepsTaken  int             `json:"steps_taken"`
	WallSeconds float64         `json:"wall_seconds"`
	Stability   StabilityRecord `json:"stability"`
	Error       *ErrorRecord    `json:"error,omitempty"`
}

func metadata(cfg engine.Config, result *engine.Result) RunMetadata {
	meta := RunMetadata{
		Timestamp:   time.Now(),
		Equation:    cfg.Params.Equation.String(),
		Scheme:      cfg.Scheme.String(),
		NX:          cfg.NX,
		LX:          cfg.LX,
		Dt:          cfg.Dt,
		TMax:        cfg.TMax,
		StepsTaken:  result.StepsTaken,
		WallSeconds: result.WallSeconds,
		Stability: StabilityRecord{
			DtMax:  result.Stability.DtMax,
			Ratio:  result.Stability.Ratio,
			Status: result.Stability.Status.String(),
		},
	}
	if result.Error != nil {
		meta.Error = &ErrorRecord{L2: result.Error.L2, LInf: result.Error.LInf}
	}
	return meta
}

func (s *Store) Save(cfg engine.Config, result *engine.Result) (string, error) {
	runID := fmt.Sprintf("%s_%s_%d", cfg.Params.Equation, cfg.Scheme, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := metadata(cfg, result)
	meta.ID = runID

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "field.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"x", "u"}); err != nil {
		return "", err
	}
	dx := cfg.LX / float64(cfg.NX-1)
	for i, u := range result.FinalField {
		row := []string{
			strconv.FormatFloat(dx*float64(i), 'g', -1, 64),
			strconv.FormatFloat(u, 'g', -1, 64),
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
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadField reads back the saved final field and its coordinates.
func (s *Store) LoadField(runID string) (xs, us []float64, err error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "field.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, nil, err
	}

	for i := 1; i < len(records); i++ {
		if len(records[i]) < 2 {
			continue
		}
		x, err := strconv.ParseFloat(records[i][0], 64)
		if err != nil {
			continue
		}
		u, err := strconv.ParseFloat(records[i][1], 64)
		if err != nil {
			continue
		}
		xs = append(xs, x)
		us = append(us, u)
	}
	return xs, us, nil
}
