// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export renders statistics tables for humans and writes them to
// delimited files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pdiddy/biosample-miner/internal/stats"
)

// RenderTable writes a bordered fixed-width table to w.
func RenderTable(w io.Writer, t stats.Table) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)

	if len(t.Header) > 0 {
		header := make(table.Row, len(t.Header))
		for i, h := range t.Header {
			header[i] = h
		}
		tw.AppendHeader(header)
	}
	for _, r := range t.Rows {
		row := make(table.Row, len(r))
		for i, c := range r {
			row[i] = c
		}
		tw.AppendRow(row)
	}
	tw.Render()
}

// WriteCSV writes the header (when non-nil) followed by the data rows to
// path as RFC 4180 comma-separated text. Filesystem errors propagate; the
// file handle is released on every path out.
func WriteCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if header != nil {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("writing header to %s: %w", path, err)
		}
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return f.Close()
}

// WriteTableCSV exports a stats.Table to path.
func WriteTableCSV(path string, t stats.Table) error {
	return WriteCSV(path, t.Header, t.Rows)
}
