package store

import (
	"encoding/json"
	"io"

	"github.com/san-kum/pdebench/internal/engine"
)

type ExportData struct {
	RunMetadata
	Field []float64 `json:"field"`
}

// ExportJSON writes the full run, metadata plus final field, to w.
func ExportJSON(w io.Writer, cfg engine.Config, result *engine.Result) error {
	data := ExportData{
		RunMetadata: metadata(cfg, result),
		Field:       result.FinalField,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// Export writes a previously saved run to w in the same shape.
func (s *Store) Export(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	_, us, err := s.LoadField(runID)
	if err != nil {
		return err
	}
	data := ExportData{RunMetadata: *meta, Field: us}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
