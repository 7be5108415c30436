// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/biosample-miner/internal/compound"
	"github.com/pdiddy/biosample-miner/internal/export"
	"github.com/pdiddy/biosample-miner/internal/sample"
	"github.com/pdiddy/biosample-miner/internal/sparql"
	"github.com/pdiddy/biosample-miner/internal/stats"
	"github.com/pdiddy/biosample-miner/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full analysis for the configured compound set",
	Long: `Analyze runs the complete workflow for each configured compound: resolve
the label set from its ChEMBL id, aggregate biosample matches per label,
print the count table and overlap matrix, and retrieve ontology-based
samples from its ChEBI id with each attribute filter. The built-in set
(rosiglitazone, aspirin, valproic acid, glucosamine) is used unless the
config file provides a compounds list.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("report-dir", "", "write one YAML report per compound into this directory")
	analyzeCmd.Flags().Bool("quiet", false, "suppress per-name query progress")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := queryConfig()
	progress := progressWriter(cmd)
	f := newFetcher(cfg, progress)
	ctx := context.Background()

	reportDir, _ := cmd.Flags().GetString("report-dir")
	if reportDir != "" {
		if err := os.MkdirAll(reportDir, 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}

	for _, c := range analysisCompounds() {
		fmt.Fprintf(cmd.OutOrStdout(), "=== %s ===\n", c.Name)
		if err := analyzeCompound(ctx, cmd.OutOrStdout(), f, cfg, c, reportDir, progress); err != nil {
			return fmt.Errorf("analyzing %s: %w", c.Name, err)
		}
	}
	return nil
}

func analyzeCompound(ctx context.Context, out io.Writer, f *sparql.Fetcher, cfg types.QueryConfig, c types.Compound, reportDir string, progress io.Writer) error {
	if c.ChEMBLID != "" {
		labels, err := compound.Labels(ctx, f, cfg.Endpoints.Compound, c.ChEMBLID)
		if err != nil {
			return err
		}

		m, err := sample.Aggregate(ctx, f, cfg.Endpoints.Sample, labels, progress)
		if err != nil {
			return err
		}

		export.RenderTable(out, stats.Counts(m))
		export.RenderTable(out, stats.Overlap(m))

		if reportDir != "" {
			r := export.NewReport(c.Name, c.ChEMBLID, c.ChEBIID, labels, m)
			path := filepath.Join(reportDir, reportFileName(c.Name))
			if err := export.WriteReport(path, r); err != nil {
				return err
			}
			fmt.Fprintf(out, "Report written to %s\n", path)
		}
	}

	if c.ChEBIID != "" {
		for _, filter := range []sample.ChEBIFilter{
			sample.FilterNone,
			sample.FilterMolarity,
			sample.FilterCellLine,
			sample.FilterStrain,
		} {
			pairs, err := sample.ByChEBI(ctx, f, cfg.Endpoints.Sample, c.ChEBIID, filter, progress)
			if err != nil {
				return err
			}
			label := string(filter)
			if filter == sample.FilterNone {
				label = "any attribute"
			}
			fmt.Fprintf(out, "%s %s: %d samples\n", c.ChEBIID, label, len(pairs))
		}
	}
	return nil
}

// reportFileName turns a compound name into a safe YAML file name.
func reportFileName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-") + ".yaml"
}
