// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the configuration structures shared across the CLI
// and the retrieval packages.
package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no client-side
	// timeout; a hanging endpoint then blocks the whole run.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "biosample-miner/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// EndpointConfig names the two SPARQL services queried during an analysis.
type EndpointConfig struct {
	// Compound is the chemical-compound knowledge base (ChEMBL).
	Compound string `json:"compound" yaml:"compound"`

	// Sample is the biosample repository (BioSamples).
	Sample string `json:"sample" yaml:"sample"`
}

// QueryConfig holds settings for paginated SPARQL retrieval.
type QueryConfig struct {
	HTTPConfig `yaml:",inline"`

	Endpoints EndpointConfig `json:"endpoints" yaml:"endpoints"`

	// PageSize is the LIMIT applied to each request; the offset advances
	// by the same amount after every non-empty page (default 50).
	PageSize int `json:"page_size" yaml:"page_size"`
}

// DefaultPageSize is used when QueryConfig.PageSize is unset.
const DefaultPageSize = 50

// Default endpoint URLs for the EBI RDF platform.
const (
	DefaultCompoundEndpoint = "https://www.ebi.ac.uk/rdf/services/chembl/sparql"
	DefaultSampleEndpoint   = "https://www.ebi.ac.uk/rdf/services/biosamples/sparql"
)

// EffectivePageSize returns PageSize or the default when unset.
func (c QueryConfig) EffectivePageSize() int {
	if c.PageSize <= 0 {
		return DefaultPageSize
	}
	return c.PageSize
}

// Compound identifies one compound to analyze: its ChEMBL id for label
// resolution and its ChEBI id for ontology-based sample retrieval. Either
// id may be empty, in which case the corresponding analyses are skipped.
type Compound struct {
	Name     string `json:"name" yaml:"name" mapstructure:"name"`
	ChEMBLID string `json:"chembl_id,omitempty" yaml:"chembl_id,omitempty" mapstructure:"chembl_id"`
	ChEBIID  string `json:"chebi_id,omitempty" yaml:"chebi_id,omitempty" mapstructure:"chebi_id"`
}

// AnalysisConfig holds the compound set processed by the analyze command.
type AnalysisConfig struct {
	Compounds []Compound `json:"compounds" yaml:"compounds"`
}

// DefaultCompounds is the built-in analysis set, used when the config file
// does not provide one.
var DefaultCompounds = []Compound{
	{Name: "rosiglitazone", ChEMBLID: "CHEMBL121", ChEBIID: "CHEBI:50122"},
	{Name: "aspirin", ChEMBLID: "CHEMBL25", ChEBIID: "CHEBI:15365"},
	{Name: "valproic acid", ChEMBLID: "CHEMBL109", ChEBIID: "CHEBI:39867"},
	{Name: "glucosamine", ChEBIID: "CHEBI:5417"},
}
