// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/biosample-miner/internal/compound"
	"github.com/pdiddy/biosample-miner/internal/export"
	"github.com/pdiddy/biosample-miner/internal/sample"
	"github.com/pdiddy/biosample-miner/internal/stats"
)

var samplesCmd = &cobra.Command{
	Use:   "samples CHEMBLID",
	Short: "Aggregate biosample matches across a compound's names",
	Long: `Samples resolves the compound's label set, then retrieves biosample
matches for each name one at a time. Output is a per-name count table;
--overlap adds the name-by-name shared-sample matrix. Names are queried
sequentially because the sample endpoint is unreliable under batched
multi-value queries, and per-name queries isolate which name fails.`,
	Args: cobra.ExactArgs(1),
	RunE: runSamples,
}

func init() {
	samplesCmd.Flags().Bool("overlap", false, "also print the name-by-name overlap matrix")
	samplesCmd.Flags().String("csv", "", "export the count table to a CSV file")
	samplesCmd.Flags().String("overlap-csv", "", "export the overlap matrix to a CSV file")
	samplesCmd.Flags().String("report", "", "write the full analysis to a YAML report file")
	samplesCmd.Flags().String("name", "", "compound display name used in the report")
	samplesCmd.Flags().Bool("quiet", false, "suppress per-name query progress")

	rootCmd.AddCommand(samplesCmd)
}

func runSamples(cmd *cobra.Command, args []string) error {
	chemblID := args[0]
	cfg := queryConfig()
	progress := progressWriter(cmd)
	f := newFetcher(cfg, progress)
	ctx := context.Background()

	labels, err := compound.Labels(ctx, f, cfg.Endpoints.Compound, chemblID)
	if err != nil {
		return err
	}
	if len(labels) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No labels found for %s; nothing to aggregate.\n", chemblID)
		return nil
	}

	m, err := sample.Aggregate(ctx, f, cfg.Endpoints.Sample, labels, progress)
	if err != nil {
		return err
	}

	counts := stats.Counts(m)
	export.RenderTable(cmd.OutOrStdout(), counts)

	if overlap, _ := cmd.Flags().GetBool("overlap"); overlap {
		export.RenderTable(cmd.OutOrStdout(), stats.Overlap(m))
	}

	if path, _ := cmd.Flags().GetString("csv"); path != "" {
		if err := export.WriteTableCSV(path, counts); err != nil {
			return err
		}
	}
	if path, _ := cmd.Flags().GetString("overlap-csv"); path != "" {
		if err := export.WriteTableCSV(path, stats.Overlap(m)); err != nil {
			return err
		}
	}
	if path, _ := cmd.Flags().GetString("report"); path != "" {
		name, _ := cmd.Flags().GetString("name")
		r := export.NewReport(reportDisplayName(name, chemblID, labels), chemblID, "", labels, m)
		if err := export.WriteReport(path, r); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
	}
	return nil
}

// reportDisplayName picks the compound name recorded in a report: the
// --name flag when given, otherwise the first resolved label, otherwise
// the id itself.
func reportDisplayName(flagName, id string, labels []string) string {
	if flagName != "" {
		return flagName
	}
	if len(labels) > 0 {
		return labels[0]
	}
	return id
}
