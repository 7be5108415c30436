// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stats derives tabular summaries from aggregated sample data.
// Everything here is a pure function over a sample.Map.
package stats

import (
	"strconv"

	"github.com/pdiddy/biosample-miner/internal/sample"
)

// Table is an ordered header row plus data rows, ready for display or
// delimited export. Cells are strings; numeric cells are formatted at
// construction time.
type Table struct {
	Header []string
	Rows   [][]string
}

// Counts pairs each name with its raw entry count, in map order.
func Counts(m *sample.Map) Table {
	t := Table{Header: []string{"Compound name", "No of samples"}}
	for _, name := range m.Names() {
		t.Rows = append(t.Rows, []string{name, strconv.Itoa(len(m.Pairs(name)))})
	}
	return t
}

// Overlap builds the square name-by-name matrix of shared sample counts.
// cell(i,j) is the size of the intersection of the two names' sample id
// sets; when either name matched nothing the cell is 0 without building
// sets. The diagonal is the unique sample id count for that name, which
// can be lower than the raw entry count when one name matched a sample
// through several attributes.
func Overlap(m *sample.Map) Table {
	names := m.Names()

	idSets := make([]map[string]struct{}, len(names))
	for i, name := range names {
		pairs := m.Pairs(name)
		if len(pairs) == 0 {
			continue
		}
		set := make(map[string]struct{}, len(pairs))
		for _, p := range pairs {
			set[p.SampleID] = struct{}{}
		}
		idSets[i] = set
	}

	t := Table{Header: append([]string{"Compound Name"}, names...)}
	for i, name := range names {
		row := make([]string, 0, len(names)+1)
		row = append(row, name)
		for j := range names {
			row = append(row, strconv.Itoa(intersectionSize(idSets[i], idSets[j])))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func intersectionSize(a, b map[string]struct{}) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for id := range a {
		if _, ok := b[id]; ok {
			n++
		}
	}
	return n
}
