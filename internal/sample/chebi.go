// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sample

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/biosample-miner/internal/sparql"
)

// ChEBIFilter narrows an ontology-based sample retrieval to samples that
// also carry a particular kind of attribute.
type ChEBIFilter string

const (
	// FilterNone retrieves every sample annotated with the ChEBI term.
	FilterNone ChEBIFilter = ""
	// FilterMolarity keeps samples that also carry a molarity-unit attribute.
	FilterMolarity ChEBIFilter = "molarity"
	// FilterCellLine keeps samples that also carry a cell-line attribute.
	FilterCellLine ChEBIFilter = "cell-line"
	// FilterStrain keeps samples that also carry a strain attribute.
	FilterStrain ChEBIFilter = "strain"
)

const chebiBody = `SELECT DISTINCT ?sample ?attribute
WHERE {
    ?attribute ?b <http://purl.obolibrary.org/obo/$chebiid> .
    ?sample biosd-terms:has-sample-attribute ?attribute .
    ?sample a biosd-terms:Sample .
}
LIMIT $limit
OFFSET $offset`

// chebiMolarBody excludes EFO_0002902 (percent), which is a unit subclass
// but not a molarity.
const chebiMolarBody = `SELECT DISTINCT ?sample ?compound
WHERE {
    ?subunit rdfs:subClassOf obo:UO_0000061 .
    FILTER ( ?subunit != efo:EFO_0002902 )
    ?molarity a ?subunit .
    ?compound a <http://purl.obolibrary.org/obo/$chebiid> .
    ?sample a biosd-terms:Sample .
    ?sample biosd-terms:has-sample-attribute ?compound, ?molarity .
}
LIMIT $limit
OFFSET $offset`

const chebiCellLineBody = `SELECT DISTINCT ?sample ?cellline
WHERE {
    ?compound a <http://purl.obolibrary.org/obo/$chebiid> .
    ?subline rdfs:subClassOf* <http://www.ebi.ac.uk/efo/EFO_0000322> .
    ?cellline a ?subline .
    ?sample a biosd-terms:Sample .
    ?sample biosd-terms:has-sample-attribute ?compound, ?cellline .
}
LIMIT $limit
OFFSET $offset`

const chebiStrainBody = `SELECT DISTINCT ?sample ?strain
WHERE {
    ?compound a <http://purl.obolibrary.org/obo/$chebiid> .
    ?strain rdfs:subClassOf* <http://www.ebi.ac.uk/efo/EFO_0001329> .
    ?sample a biosd-terms:Sample .
    ?sample biosd-terms:has-sample-attribute ?compound, ?strain .
}
LIMIT $limit
OFFSET $offset`

// chebiQueries maps each filter to its query template and the variable
// paired with ?sample in the projection.
var chebiQueries = map[ChEBIFilter]struct {
	template sparql.Template
	second   string
}{
	FilterNone:     {sparql.NewTemplate(chebiBody), "attribute"},
	FilterMolarity: {sparql.NewTemplate(chebiMolarBody), "compound"},
	FilterCellLine: {sparql.NewTemplate(chebiCellLineBody), "cellline"},
	FilterStrain:   {sparql.NewTemplate(chebiStrainBody), "strain"},
}

// NormalizeChEBI rewrites a curie-style id ("CHEBI:50122") into the obo
// IRI local form ("CHEBI_50122"). Ids already in local form pass through.
func NormalizeChEBI(id string) string {
	return strings.ReplaceAll(id, ":", "_")
}

// ByChEBI retrieves (sample id, attribute) pairs for samples annotated with
// the ChEBI term, optionally narrowed by filter. The fully substituted
// query is written to progress before execution.
func ByChEBI(ctx context.Context, f *sparql.Fetcher, endpoint, chebiID string, filter ChEBIFilter, progress io.Writer) ([][2]string, error) {
	q, ok := chebiQueries[filter]
	if !ok {
		return nil, fmt.Errorf("unknown ChEBI filter %q", filter)
	}

	values := map[string]string{"chebiid": NormalizeChEBI(chebiID)}
	if progress != nil {
		query, err := q.template.Render(values, f.EffectivePageSize(), 0)
		if err != nil {
			return nil, fmt.Errorf("building ChEBI query for %q: %w", chebiID, err)
		}
		fmt.Fprintf(progress, "\n%s\n", query)
	}

	pairs, err := f.FetchPairs(ctx, endpoint, q.template, values, "sample", q.second)
	if err != nil {
		return nil, fmt.Errorf("retrieving samples for %q: %w", chebiID, err)
	}
	return pairs, nil
}

// SampleIDs projects the sample identifier from each pair, duplicates
// included, so callers can inspect multiplicity.
func SampleIDs(pairs [][2]string) []string {
	ids := make([]string, len(pairs))
	for i, p := range pairs {
		ids[i] = p[0]
	}
	return ids
}
