// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sparql

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/biosample-miner/pkg/types"
)

// Fetcher pages through a templated query with a fixed LIMIT and an
// advancing OFFSET until the endpoint returns an empty page. The loop has
// no iteration cap: termination is solely the empty page, so a run whose
// result count is an exact multiple of the page size still costs one final
// empty request.
type Fetcher struct {
	Service  QueryService
	PageSize int

	// Log, when non-nil, receives one line per issued request.
	Log io.Writer
}

// EffectivePageSize returns the configured page size or the shared default.
func (f *Fetcher) EffectivePageSize() int {
	if f.PageSize <= 0 {
		return types.DefaultPageSize
	}
	return f.PageSize
}

// Fetch renders the template for each page and accumulates every returned
// row in arrival order. Queries are issued strictly one at a time.
func (f *Fetcher) Fetch(ctx context.Context, endpoint string, tpl Template, values map[string]string) ([]Row, error) {
	size := f.EffectivePageSize()
	var all []Row
	for offset := 0; ; offset += size {
		query, err := tpl.Render(values, size, offset)
		if err != nil {
			return nil, err
		}
		if f.Log != nil {
			fmt.Fprintf(f.Log, "query %s offset=%d\n", endpoint, offset)
		}
		rows, err := f.Service.Query(ctx, endpoint, query)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return all, nil
		}
		all = append(all, rows...)
	}
}

// FetchColumn fetches all pages and projects a single variable from every
// row. Rows lacking the variable project an empty string.
func (f *Fetcher) FetchColumn(ctx context.Context, endpoint string, tpl Template, values map[string]string, variable string) ([]string, error) {
	rows, err := f.Fetch(ctx, endpoint, tpl, values)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = row[variable]
	}
	return out, nil
}

// FetchPairs fetches all pages and projects two variables from every row,
// preserving row order.
func (f *Fetcher) FetchPairs(ctx context.Context, endpoint string, tpl Template, values map[string]string, first, second string) ([][2]string, error) {
	rows, err := f.Fetch(ctx, endpoint, tpl, values)
	if err != nil {
		return nil, err
	}
	out := make([][2]string, len(rows))
	for i, row := range rows {
		out[i] = [2]string{row[first], row[second]}
	}
	return out, nil
}
