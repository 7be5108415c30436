// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/biosample-miner/internal/sample"
	"github.com/pdiddy/biosample-miner/internal/stats"
)

// Report is the on-disk record of one compound analysis. A run can be
// saved and inspected later without re-querying the endpoints.
type Report struct {
	Compound  string        `yaml:"compound"`
	ChEMBLID  string        `yaml:"chembl_id,omitempty"`
	ChEBIID   string        `yaml:"chebi_id,omitempty"`
	Labels    []string      `yaml:"labels,omitempty"`
	Samples   []ReportEntry `yaml:"samples"`
	Counts    ReportTable   `yaml:"counts"`
	Overlap   ReportTable   `yaml:"overlap"`
	Timestamp time.Time     `yaml:"timestamp"`
}

// ReportEntry holds one name's matches.
type ReportEntry struct {
	Name  string       `yaml:"name"`
	Pairs []ReportPair `yaml:"pairs,omitempty"`
}

// ReportPair is one matched (label, sample id) pair.
type ReportPair struct {
	Label    string `yaml:"label"`
	SampleID string `yaml:"sample_id"`
}

// ReportTable is a serialized statistics table.
type ReportTable struct {
	Header []string   `yaml:"header,omitempty"`
	Rows   [][]string `yaml:"rows,omitempty"`
}

// NewReport assembles a report from an analysis run, stamped with the
// current time.
func NewReport(compound, chemblID, chebiID string, labels []string, m *sample.Map) Report {
	r := Report{
		Compound:  compound,
		ChEMBLID:  chemblID,
		ChEBIID:   chebiID,
		Labels:    labels,
		Timestamp: time.Now(),
	}
	for _, name := range m.Names() {
		entry := ReportEntry{Name: name}
		for _, p := range m.Pairs(name) {
			entry.Pairs = append(entry.Pairs, ReportPair{Label: p.Label, SampleID: p.SampleID})
		}
		r.Samples = append(r.Samples, entry)
	}
	counts := stats.Counts(m)
	r.Counts = ReportTable{Header: counts.Header, Rows: counts.Rows}
	overlap := stats.Overlap(m)
	r.Overlap = ReportTable{Header: overlap.Header, Rows: overlap.Rows}
	return r
}

// WriteReport saves the report to path as YAML.
func WriteReport(path string, r Report) error {
	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadReport loads a previously saved report.
func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing report %s: %w", path, err)
	}
	return &r, nil
}
