// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compound resolves a compound's alternate names and identifiers
// from the chemical-compound knowledge base.
package compound

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/biosample-miner/internal/sparql"
)

// labelsBody unions the structured cross-reference identifiers (InChIKey,
// InChI, SMILES) with the alternate, preferred, and generic labels of the
// molecule carrying the given ChEMBL id.
const labelsBody = `SELECT DISTINCT ?compound
WHERE {
    ?molecule <http://rdf.ebi.ac.uk/terms/chembl#chemblId> "$chemblid" .
    {
        ?molecule sio:SIO_000008 ?sid .
        {
            ?sid a cheminf:CHEMINF_000059 .
        }
        UNION
        {
            ?sid a cheminf:CHEMINF_000113 .
        }
        UNION
        {
            ?sid a cheminf:CHEMINF_000018 .
        }
        ?sid sio:SIO_000300 ?compound .
    }
    UNION
    {
        ?molecule skos:altLabel ?compound .
    }
    UNION
    {
        ?molecule skos:prefLabel ?compound .
    }
    UNION
    {
        ?molecule rdfs:label ?compound .
    }
}
LIMIT $limit
OFFSET $offset`

// LabelsTemplate is the label-resolution query. Exported so callers can
// print the query a given id would produce.
var LabelsTemplate = sparql.NewTemplate(labelsBody)

// Labels fetches every known name and identifier for the compound with the
// given ChEMBL id, lowercased and deduplicated. The result is sorted for
// determinism; an empty set is valid.
func Labels(ctx context.Context, f *sparql.Fetcher, endpoint, chemblID string) ([]string, error) {
	raw, err := f.FetchColumn(ctx, endpoint, LabelsTemplate, map[string]string{"chemblid": chemblID}, "compound")
	if err != nil {
		return nil, fmt.Errorf("resolving labels for %q: %w", chemblID, err)
	}

	seen := make(map[string]struct{}, len(raw))
	labels := make([]string, 0, len(raw))
	for _, name := range raw {
		lower := strings.ToLower(name)
		if lower == "" {
			continue
		}
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		labels = append(labels, lower)
	}
	sort.Strings(labels)
	return labels, nil
}
