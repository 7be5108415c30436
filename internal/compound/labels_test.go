// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compound

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/biosample-miner/internal/sparql"
)

// labelService serves one page of ?compound bindings, then empty pages.
type labelService struct {
	labels  []string
	queries []string
	err     error
}

func (s *labelService) Query(_ context.Context, _ string, query string) ([]sparql.Row, error) {
	s.queries = append(s.queries, query)
	if s.err != nil {
		return nil, s.err
	}
	if len(s.queries) > 1 {
		return nil, nil
	}
	rows := make([]sparql.Row, len(s.labels))
	for i, l := range s.labels {
		rows[i] = sparql.Row{"compound": l}
	}
	return rows, nil
}

func TestLabelsLowercasesAndDeduplicates(t *testing.T) {
	svc := &labelService{labels: []string{
		"Aspirin", "ASPIRIN", "aspirin", "Acetylsalicylic Acid", "BSYNRYMUTXBXSQ-UHFFFAOYSA-N",
	}}
	f := &sparql.Fetcher{Service: svc, PageSize: 50}

	got, err := Labels(context.Background(), f, "http://chembl", "CHEMBL25")
	if err != nil {
		t.Fatalf("Labels: %v", err)
	}
	want := []string{"acetylsalicylic acid", "aspirin", "bsynrymutxbxsq-uhfffaoysa-n"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Labels = %v, want %v", got, want)
	}
}

func TestLabelsIdempotentUnderRelowercasing(t *testing.T) {
	svc := &labelService{labels: []string{"Rosiglitazone", "AVANDIA", "rosiglitazone"}}
	f := &sparql.Fetcher{Service: svc, PageSize: 50}

	got, err := Labels(context.Background(), f, "http://chembl", "CHEMBL121")
	if err != nil {
		t.Fatalf("Labels: %v", err)
	}
	seen := make(map[string]bool)
	for _, l := range got {
		if l != strings.ToLower(l) {
			t.Errorf("label %q is not lowercase", l)
		}
		if seen[l] {
			t.Errorf("duplicate label %q", l)
		}
		seen[l] = true
	}
}

func TestLabelsEmptyResult(t *testing.T) {
	svc := &labelService{}
	f := &sparql.Fetcher{Service: svc, PageSize: 50}

	got, err := Labels(context.Background(), f, "http://chembl", "CHEMBL0")
	if err != nil {
		t.Fatalf("Labels: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Labels = %v, want empty", got)
	}
}

func TestLabelsSubstitutesChEMBLID(t *testing.T) {
	svc := &labelService{}
	f := &sparql.Fetcher{Service: svc, PageSize: 50}

	_, err := Labels(context.Background(), f, "http://chembl", "CHEMBL109")
	if err != nil {
		t.Fatalf("Labels: %v", err)
	}
	if len(svc.queries) == 0 || !strings.Contains(svc.queries[0], `"CHEMBL109"`) {
		t.Error("query should embed the quoted ChEMBL id")
	}
}

func TestLabelsSkipsEmptyBindings(t *testing.T) {
	svc := &labelService{labels: []string{"", "aspirin"}}
	f := &sparql.Fetcher{Service: svc, PageSize: 50}

	got, err := Labels(context.Background(), f, "http://chembl", "CHEMBL25")
	if err != nil {
		t.Fatalf("Labels: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"aspirin"}) {
		t.Errorf("Labels = %v, want [aspirin]", got)
	}
}

func TestLabelsPropagatesEndpointError(t *testing.T) {
	svc := &labelService{err: errors.New("boom")}
	f := &sparql.Fetcher{Service: svc, PageSize: 50}

	_, err := Labels(context.Background(), f, "http://chembl", "CHEMBL25")
	if err == nil || !strings.Contains(err.Error(), "CHEMBL25") {
		t.Fatalf("error = %v, want wrapped endpoint failure naming the id", err)
	}
}
