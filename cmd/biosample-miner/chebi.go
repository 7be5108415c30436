// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/biosample-miner/internal/export"
	"github.com/pdiddy/biosample-miner/internal/sample"
	"github.com/pdiddy/biosample-miner/internal/stats"
)

var chebiCmd = &cobra.Command{
	Use:   "chebi CHEBIID",
	Short: "Retrieve biosamples annotated with a ChEBI ontology term",
	Long: `Chebi retrieves samples whose attributes reference the given ChEBI id
(curie form "CHEBI:50122" or local form "CHEBI_50122"). The --with flag
narrows the match to samples that also carry a molarity unit, cell-line,
or strain attribute.`,
	Args: cobra.ExactArgs(1),
	RunE: runChEBI,
}

func init() {
	chebiCmd.Flags().String("with", "", "restrict to samples with an extra attribute: molarity, cell-line, or strain")
	chebiCmd.Flags().Bool("ids", false, "print only the sample identifiers")
	chebiCmd.Flags().String("csv", "", "export the pairs to a CSV file")
	chebiCmd.Flags().Bool("quiet", false, "suppress query progress")

	rootCmd.AddCommand(chebiCmd)
}

func runChEBI(cmd *cobra.Command, args []string) error {
	chebiID := args[0]
	cfg := queryConfig()
	progress := progressWriter(cmd)
	f := newFetcher(cfg, progress)

	withFlag, _ := cmd.Flags().GetString("with")
	filter := sample.ChEBIFilter(withFlag)

	pairs, err := sample.ByChEBI(context.Background(), f, cfg.Endpoints.Sample, chebiID, filter, progress)
	if err != nil {
		return err
	}

	if idsOnly, _ := cmd.Flags().GetBool("ids"); idsOnly {
		for _, id := range sample.SampleIDs(pairs) {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	}

	t := stats.Table{Header: []string{"Sample", "Attribute"}}
	for _, p := range pairs {
		t.Rows = append(t.Rows, []string{p[0], p[1]})
	}
	export.RenderTable(cmd.OutOrStdout(), t)
	fmt.Fprintf(cmd.OutOrStdout(), "%d samples\n", len(pairs))

	if path, _ := cmd.Flags().GetString("csv"); path != "" {
		return export.WriteTableCSV(path, t)
	}
	return nil
}
