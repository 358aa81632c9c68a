// Package storage exports finished runs to disk: one directory per run with
// metadata, a flat CSV view, and the full frame list for replay.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/algoviz/internal/frame"
	"github.com/san-kum/algoviz/internal/stats"
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

type InputRecord struct {
	Values []int   `json:"values,omitempty"`
	Target int     `json:"target,omitempty"`
	Graph  [][]int `json:"graph,omitempty"`
	Start  int     `json:"start,omitempty"`
}

type RunMetadata struct {
	ID         string        `json:"id"`
	Algorithm  string        `json:"algorithm"`
	Timestamp  time.Time     `json:"timestamp"`
	Input      InputRecord   `json:"input"`
	Complexity string        `json:"complexity,omitempty"`
	Stats      stats.Summary `json:"stats"`
}

func (s *Store) Save(algorithm string, input InputRecord, complexity string, seq frame.Sequence) (string, error) {
	runID := fmt.Sprintf("%s_%d", algorithm, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Algorithm:  algorithm,
		Timestamp:  time.Now(),
		Input:      input,
		Complexity: complexity,
		Stats:      stats.Collect(seq),
	}

	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeJSON(filepath.Join(runDir, "frames.json"), seq); err != nil {
		return "", err
	}
	if err := writeCSV(filepath.Join(runDir, "frames.csv"), seq); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Metadata(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Metadata(runID string) (RunMetadata, error) {
	var meta RunMetadata
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return meta, err
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return meta, fmt.Errorf("corrupt metadata for %s: %w", runID, err)
	}
	return meta, nil
}

func (s *Store) LoadFrames(runID string) (frame.Sequence, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "frames.json"))
	if err != nil {
		return nil, err
	}
	var seq frame.Sequence
	if err := json.Unmarshal(data, &seq); err != nil {
		return nil, fmt.Errorf("corrupt frames for %s: %w", runID, err)
	}
	if seq.Empty() {
		return nil, fmt.Errorf("run %s has no frames", runID)
	}
	return seq, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var csvHeader = []string{
	"frame", "kind", "description",
	"values", "highlighted", "compared", "settled",
	"cursor", "target", "found",
	"low", "high", "mid",
	"current", "frontier", "visit_order",
}

func writeCSV(path string, seq frame.Sequence) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for i, fr := range seq {
		row := []string{
			strconv.Itoa(i),
			string(fr.Kind),
			fr.Description,
			joinInts(fr.Values),
			joinInts(fr.Highlighted.Indices()),
			joinInts(fr.Compared.Indices()),
			joinInts(fr.Settled.Indices()),
			strconv.Itoa(fr.Cursor),
			strconv.Itoa(fr.Target),
			strconv.FormatBool(fr.Found),
			strconv.Itoa(fr.Low),
			strconv.Itoa(fr.High),
			strconv.Itoa(fr.Mid),
			strconv.Itoa(fr.Current),
			joinInts(fr.Frontier),
			joinInts(fr.VisitOrder),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}
