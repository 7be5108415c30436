// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sample

import (
	"bytes"
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/biosample-miner/internal/sparql"
)

// chebiService serves one fixed page, then empty pages.
type chebiService struct {
	rows    []sparql.Row
	queries []string
}

func (s *chebiService) Query(_ context.Context, _ string, query string) ([]sparql.Row, error) {
	s.queries = append(s.queries, query)
	if len(s.queries) > 1 {
		return nil, nil
	}
	return s.rows, nil
}

func TestNormalizeChEBI(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"CHEBI:50122", "CHEBI_50122"},
		{"CHEBI_15365", "CHEBI_15365"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeChEBI(tt.in); got != tt.want {
			t.Errorf("NormalizeChEBI(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestByChEBIProjectsSampleFirst(t *testing.T) {
	svc := &chebiService{rows: []sparql.Row{
		{"sample": "s1", "attribute": "attr1"},
		{"sample": "s2", "attribute": "attr2"},
	}}
	f := &sparql.Fetcher{Service: svc, PageSize: 50}

	pairs, err := ByChEBI(context.Background(), f, "http://biosamples", "CHEBI:50122", FilterNone, nil)
	if err != nil {
		t.Fatalf("ByChEBI: %v", err)
	}
	want := [][2]string{{"s1", "attr1"}, {"s2", "attr2"}}
	if !reflect.DeepEqual(pairs, want) {
		t.Errorf("pairs = %v, want %v", pairs, want)
	}
}

func TestByChEBIRewritesIDIntoQuery(t *testing.T) {
	svc := &chebiService{}
	f := &sparql.Fetcher{Service: svc, PageSize: 50}

	_, err := ByChEBI(context.Background(), f, "http://biosamples", "CHEBI:50122", FilterNone, nil)
	if err != nil {
		t.Fatalf("ByChEBI: %v", err)
	}
	if len(svc.queries) == 0 {
		t.Fatal("no query issued")
	}
	if !strings.Contains(svc.queries[0], "obo/CHEBI_50122>") {
		t.Errorf("query should embed the rewritten id, got:\n%s", svc.queries[0])
	}
	if strings.Contains(svc.queries[0], "CHEBI:50122") {
		t.Error("curie form should not survive into the query")
	}
}

func TestByChEBIFilterVariants(t *testing.T) {
	tests := []struct {
		filter     ChEBIFilter
		wantClause string
		secondVar  string
	}{
		{FilterMolarity, "obo:UO_0000061", "compound"},
		{FilterCellLine, "EFO_0000322", "cellline"},
		{FilterStrain, "EFO_0001329", "strain"},
	}
	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			svc := &chebiService{rows: []sparql.Row{
				{"sample": "s1", tt.secondVar: "v1"},
			}}
			f := &sparql.Fetcher{Service: svc, PageSize: 50}

			pairs, err := ByChEBI(context.Background(), f, "http://biosamples", "CHEBI:5417", tt.filter, nil)
			if err != nil {
				t.Fatalf("ByChEBI: %v", err)
			}
			if !strings.Contains(svc.queries[0], tt.wantClause) {
				t.Errorf("query missing %s:\n%s", tt.wantClause, svc.queries[0])
			}
			if len(pairs) != 1 || pairs[0] != [2]string{"s1", "v1"} {
				t.Errorf("pairs = %v", pairs)
			}
		})
	}
}

func TestByChEBIUnknownFilter(t *testing.T) {
	f := &sparql.Fetcher{Service: &chebiService{}, PageSize: 50}

	_, err := ByChEBI(context.Background(), f, "http://biosamples", "CHEBI:5417", ChEBIFilter("bogus"), nil)
	if err == nil || !strings.Contains(err.Error(), "bogus") {
		t.Fatalf("error = %v, want unknown filter error", err)
	}
}

func TestByChEBILogsQuery(t *testing.T) {
	var buf bytes.Buffer
	f := &sparql.Fetcher{Service: &chebiService{}, PageSize: 50}

	_, err := ByChEBI(context.Background(), f, "http://biosamples", "CHEBI:5417", FilterNone, &buf)
	if err != nil {
		t.Fatalf("ByChEBI: %v", err)
	}
	if !strings.Contains(buf.String(), "obo/CHEBI_5417>") {
		t.Error("progress should show the substituted query")
	}
}

func TestSampleIDs(t *testing.T) {
	pairs := [][2]string{{"s1", "a"}, {"s2", "b"}, {"s1", "c"}}
	got := SampleIDs(pairs)
	want := []string{"s1", "s2", "s1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SampleIDs = %v, want %v (duplicates preserved)", got, want)
	}
}
