// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sample retrieves biosample records matching compound names or
// ontology identifiers and aggregates them per search term.
package sample

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pdiddy/biosample-miner/internal/sparql"
)

// samplesBody matches the name case-insensitively as a substring of any
// sample attribute value.
const samplesBody = `SELECT DISTINCT ?sample ?lab
WHERE {
    ?attribute atlasterms:propertyValue ?lab .
    FILTER(CONTAINS(LCASE(STR(?lab)), LCASE(STR("$name")))) .
    ?sample biosd-terms:has-sample-attribute ?attribute .
    ?sample a biosd-terms:Sample .
}
LIMIT $limit
OFFSET $offset`

// SamplesTemplate is the per-name sample retrieval query.
var SamplesTemplate = sparql.NewTemplate(samplesBody)

// Pair is one matched sample: the attribute label that matched and the
// sample identifier.
type Pair struct {
	Label    string
	SampleID string
}

// Map associates each queried name with its matched samples. Names keep
// the order in which they were queried; a name that matched nothing still
// has an entry with an empty slice.
type Map struct {
	names   []string
	entries map[string][]Pair
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{entries: make(map[string][]Pair)}
}

// Add records the pairs for a name, appending the name to the order on
// first sight.
func (m *Map) Add(name string, pairs []Pair) {
	if _, ok := m.entries[name]; !ok {
		m.names = append(m.names, name)
	}
	m.entries[name] = append(m.entries[name], pairs...)
}

// Names returns the queried names in insertion order.
func (m *Map) Names() []string {
	return m.names
}

// Pairs returns the samples recorded for a name.
func (m *Map) Pairs(name string) []Pair {
	return m.entries[name]
}

// Len returns the number of names.
func (m *Map) Len() int {
	return len(m.names)
}

// Aggregate runs one full pagination cycle per name, sequentially, against
// the sample endpoint. One-at-a-time querying is deliberate: batched
// multi-value queries proved slow and unreliable on the remote service, and
// separate queries isolate which name breaks. Each name and its fully
// substituted query are written to progress before execution. A name the
// binder refuses to interpolate is skipped with a diagnostic, keeping its
// empty entry, so one bad resolver label cannot sink the names already
// fetched or still queued. The first endpoint failure aborts the run.
func Aggregate(ctx context.Context, f *sparql.Fetcher, endpoint string, names []string, progress io.Writer) (*Map, error) {
	m := NewMap()
	for _, name := range names {
		values := map[string]string{"name": name}
		query, err := SamplesTemplate.Render(values, f.EffectivePageSize(), 0)
		if err != nil {
			if errors.Is(err, sparql.ErrUnsafeValue) {
				if progress != nil {
					fmt.Fprintf(progress, "Skipping compound name %q: %v\n", name, err)
				}
				m.Add(name, nil)
				continue
			}
			return nil, fmt.Errorf("building sample query for %q: %w", name, err)
		}
		if progress != nil {
			fmt.Fprintf(progress, "Compound name: %s\n\n%s\n", name, query)
		}

		raw, err := f.FetchPairs(ctx, endpoint, SamplesTemplate, values, "lab", "sample")
		if err != nil {
			return nil, fmt.Errorf("retrieving samples for %q: %w", name, err)
		}

		pairs := make([]Pair, len(raw))
		for i, r := range raw {
			pairs[i] = Pair{Label: r[0], SampleID: r[1]}
		}
		m.Add(name, pairs)
	}
	return m, nil
}
