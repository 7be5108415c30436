// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/biosample-miner/internal/httputil"
	"github.com/pdiddy/biosample-miner/internal/sparql"
	"github.com/pdiddy/biosample-miner/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "biosample-miner/0.1"
)

// queryConfig assembles the retrieval settings from the config file and
// environment, falling back to the built-in defaults.
func queryConfig() types.QueryConfig {
	cfg := types.QueryConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("http.timeout"),
			UserAgent: viper.GetString("http.user_agent"),
		},
		Endpoints: types.EndpointConfig{
			Compound: viper.GetString("endpoints.compound"),
			Sample:   viper.GetString("endpoints.sample"),
		},
		PageSize: viper.GetInt("page_size"),
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Endpoints.Compound == "" {
		cfg.Endpoints.Compound = types.DefaultCompoundEndpoint
	}
	if cfg.Endpoints.Sample == "" {
		cfg.Endpoints.Sample = types.DefaultSampleEndpoint
	}
	return cfg
}

// newFetcher builds the paginated fetcher shared by all retrieval
// subcommands. Each issued request is logged to log when non-nil.
func newFetcher(cfg types.QueryConfig, log io.Writer) *sparql.Fetcher {
	client := sparql.NewClient(httputil.NewClient(cfg.HTTPConfig))
	return &sparql.Fetcher{
		Service:  client,
		PageSize: cfg.EffectivePageSize(),
		Log:      log,
	}
}

// progressWriter returns stderr, or nil when the command's --quiet flag is
// set. The same writer drives request logging and per-name progress.
func progressWriter(cmd *cobra.Command) io.Writer {
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		return nil
	}
	return os.Stderr
}

// analysisCompounds returns the compound set from the config file, or the
// built-in defaults when none is configured.
func analysisCompounds() []types.Compound {
	var cfg types.AnalysisConfig
	if err := viper.UnmarshalKey("compounds", &cfg.Compounds); err == nil && len(cfg.Compounds) > 0 {
		return cfg.Compounds
	}
	return types.DefaultCompounds
}
