// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sparql

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Row maps a query variable name to its bound value for one result row.
type Row map[string]string

// QueryService executes a complete query against an endpoint and returns
// the result rows in endpoint order. An exhausted result set is an empty
// slice, not an error.
type QueryService interface {
	Query(ctx context.Context, endpoint, query string) ([]Row, error)
}

// Client speaks the SPARQL 1.1 JSON results protocol over HTTP GET.
type Client struct {
	HTTP *http.Client
}

// NewClient wraps an HTTP client. A nil client uses http.DefaultClient.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{HTTP: httpClient}
}

// Query sends the query to the endpoint and decodes the JSON bindings.
// Network errors, non-200 statuses, and malformed responses surface as
// errors; no retry is attempted.
func (c *Client) Query(ctx context.Context, endpoint, query string) ([]Row, error) {
	params := url.Values{
		"query":  {query},
		"format": {"json"},
	}
	reqURL := endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/sparql-results+json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("endpoint %s returned HTTP %d", endpoint, resp.StatusCode)
	}

	var sr resultsResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing results from %s: %w", endpoint, err)
	}

	rows := make([]Row, 0, len(sr.Results.Bindings))
	for _, binding := range sr.Results.Bindings {
		row := make(Row, len(binding))
		for variable, term := range binding {
			row[variable] = term.Value
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// SPARQL JSON results wire structures.
type resultsResponse struct {
	Head    resultsHead    `json:"head"`
	Results resultsSection `json:"results"`
}

type resultsHead struct {
	Vars []string `json:"vars"`
}

type resultsSection struct {
	Bindings []map[string]resultTerm `json:"bindings"`
}

type resultTerm struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Datatype string `json:"datatype,omitempty"`
	Lang     string `json:"xml:lang,omitempty"`
}
