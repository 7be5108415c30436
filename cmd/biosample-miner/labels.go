// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/biosample-miner/internal/compound"
)

var labelsCmd = &cobra.Command{
	Use:   "labels CHEMBLID",
	Short: "Resolve a compound's alternate names and identifiers",
	Long: `Labels queries the compound knowledge base for every name and identifier
known for a ChEMBL id: InChIKey, InChI, and SMILES cross-references plus
alternate, preferred, and generic labels. The result is lowercased,
deduplicated, and sorted.`,
	Args: cobra.ExactArgs(1),
	RunE: runLabels,
}

func init() {
	labelsCmd.Flags().Bool("quiet", false, "suppress request logging")

	rootCmd.AddCommand(labelsCmd)
}

func runLabels(cmd *cobra.Command, args []string) error {
	cfg := queryConfig()
	f := newFetcher(cfg, progressWriter(cmd))

	labels, err := compound.Labels(context.Background(), f, cfg.Endpoints.Compound, args[0])
	if err != nil {
		return err
	}
	if len(labels) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No labels found for %s.\n", args[0])
		return nil
	}
	for _, l := range labels {
		fmt.Fprintln(cmd.OutOrStdout(), l)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d labels\n", len(labels))
	return nil
}
