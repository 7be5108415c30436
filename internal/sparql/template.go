// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sparql assembles SPARQL queries from templates, executes them
// against a remote endpoint, and pages through results until exhaustion.
package sparql

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnsafeValue marks a substitution value the binder refuses to
// interpolate. Callers can test for it with errors.Is to treat a bad value
// differently from an endpoint failure.
var ErrUnsafeValue = errors.New("unsafe substitution value")

// Prefixes is the shared PREFIX block prepended to every query.
const Prefixes = `PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
PREFIX owl: <http://www.w3.org/2002/07/owl#>
PREFIX xsd: <http://www.w3.org/2001/XMLSchema#>
PREFIX dc: <http://purl.org/dc/elements/1.1/>
PREFIX dcterms: <http://purl.org/dc/terms/>
PREFIX foaf: <http://xmlns.com/foaf/0.1/>
PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
PREFIX cco: <http://rdf.ebi.ac.uk/terms/chembl#>
PREFIX sio: <http://semanticscience.org/resource/>
PREFIX cheminf: <http://semanticscience.org/resource/>
PREFIX atlas: <http://rdf.ebi.ac.uk/resource/atlas/>
PREFIX atlasterms: <http://rdf.ebi.ac.uk/terms/atlas/>
PREFIX obo: <http://purl.obolibrary.org/obo/>
PREFIX efo: <http://www.ebi.ac.uk/efo/>
PREFIX biosd-terms: <http://rdf.ebi.ac.uk/terms/biosd/>
PREFIX pav: <http://purl.org/pav/2.0/>
PREFIX prov: <http://www.w3.org/ns/prov#>
PREFIX oac: <http://www.openannotation.org/ns/>
`

// placeholderPattern matches $name placeholders in a template body.
var placeholderPattern = regexp.MustCompile(`\$([a-zA-Z_][a-zA-Z0-9_]*)`)

// Template is a SPARQL query body with $name placeholders. The body text is
// trusted; substituted values are not, and are validated at render time so a
// value cannot alter the query structure around it.
type Template struct {
	body string
}

// NewTemplate wraps a query body for later rendering.
func NewTemplate(body string) Template {
	return Template{body: body}
}

// Render produces the complete query: the shared prefix block followed by
// the body with every placeholder substituted. The limit and offset values
// fill the $limit and $offset placeholders. Backslashes in values are
// escaped for the surrounding quoted literal. Rendering fails if a
// placeholder has no value or a value fails validation; supplied values
// that the body never references are ignored.
func (t Template) Render(values map[string]string, limit, offset int) (string, error) {
	bound := make(map[string]string, len(values)+2)
	for name, v := range values {
		if err := validateValue(name, v); err != nil {
			return "", err
		}
		bound[name] = strings.ReplaceAll(v, `\`, `\\`)
	}
	bound["limit"] = strconv.Itoa(limit)
	bound["offset"] = strconv.Itoa(offset)

	var missing []string
	rendered := placeholderPattern.ReplaceAllStringFunc(t.body, func(m string) string {
		name := m[1:]
		v, ok := bound[name]
		if !ok {
			missing = append(missing, name)
			return m
		}
		return v
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("no value for placeholder $%s", missing[0])
	}

	return Prefixes + "\n" + rendered, nil
}

// validateValue rejects values that could break out of the quoted literal
// around them. Backslashes are not rejected: SMILES strings carry them for
// stereo bonds, so Render escapes them instead. Rejection is reserved for
// quotes and line breaks, which no escape survives reliably across
// endpoints.
func validateValue(name, v string) error {
	if strings.ContainsAny(v, "\"\n\r") {
		return fmt.Errorf("%w for $%s: %q", ErrUnsafeValue, name, v)
	}
	return nil
}
