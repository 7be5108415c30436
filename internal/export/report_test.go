// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/biosample-miner/internal/sample"
)

func analysisMap() *sample.Map {
	m := sample.NewMap()
	m.Add("aspirin", []sample.Pair{
		{Label: "aspirin 100mg", SampleID: "s1"},
		{Label: "aspirin", SampleID: "s2"},
	})
	m.Add("acetylsalicylic acid", nil)
	return m
}

func TestNewReport(t *testing.T) {
	r := NewReport("aspirin", "CHEMBL25", "CHEBI:15365",
		[]string{"acetylsalicylic acid", "aspirin"}, analysisMap())

	assert.Equal(t, "aspirin", r.Compound)
	assert.Equal(t, "CHEMBL25", r.ChEMBLID)
	assert.False(t, r.Timestamp.IsZero())

	require.Len(t, r.Samples, 2)
	assert.Equal(t, "aspirin", r.Samples[0].Name)
	require.Len(t, r.Samples[0].Pairs, 2)
	assert.Equal(t, "s1", r.Samples[0].Pairs[0].SampleID)
	// Empty entries survive into the report.
	assert.Equal(t, "acetylsalicylic acid", r.Samples[1].Name)
	assert.Empty(t, r.Samples[1].Pairs)

	assert.Equal(t, [][]string{{"aspirin", "2"}, {"acetylsalicylic acid", "0"}}, r.Counts.Rows)
	assert.Len(t, r.Overlap.Rows, 2)
}

func TestReportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aspirin.yaml")
	r := NewReport("aspirin", "CHEMBL25", "", []string{"aspirin"}, analysisMap())

	require.NoError(t, WriteReport(path, r))

	got, err := ReadReport(path)
	require.NoError(t, err)
	assert.Equal(t, r.Compound, got.Compound)
	assert.Equal(t, r.Labels, got.Labels)
	assert.Equal(t, r.Samples, got.Samples)
	assert.Equal(t, r.Counts, got.Counts)
	assert.Equal(t, r.Overlap, got.Overlap)
}

func TestReadReportMissingFile(t *testing.T) {
	_, err := ReadReport(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestReadReportMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not: [valid"), 0o644))

	_, err := ReadReport(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}
