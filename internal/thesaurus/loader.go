package thesaurus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Orientation says how a dictionary line orders its specificity levels.
type Orientation string

const (
	// GenericFirst: "Serviço Público > Transporte Ferroviário", the
	// leftmost level being the most generic. This is the canonical form.
	GenericFirst Orientation = "generic-first"

	// SpecificFirst: the leftmost level is the most specific. Kept for
	// dictionaries exported by older tooling.
	SpecificFirst Orientation = "specific-first"
)

// ParseOrientation normalizes a configuration string; unknown values
// fall back to GenericFirst.
func ParseOrientation(s string) Orientation {
	if Orientation(strings.TrimSpace(strings.ToLower(s))) == SpecificFirst {
		return SpecificFirst
	}
	return GenericFirst
}

// LoaderOptions configures dictionary parsing.
type LoaderOptions struct {
	// Delimiter between levels on one line (default ">")
	Delimiter string

	// Orientation of each line (default GenericFirst)
	Orientation Orientation
}

func (o LoaderOptions) withDefaults() LoaderOptions {
	if o.Delimiter == "" {
		o.Delimiter = ">"
	}
	if o.Orientation == "" {
		o.Orientation = GenericFirst
	}
	return o
}

// Load parses a line-oriented dictionary definition. Each non-empty,
// non-comment line is one chain of increasing specificity; every level
// becomes a term and each adjacent pair becomes one hierarchy edge.
func Load(r io.Reader, opts LoaderOptions) (*Dictionary, error) {
	opts = opts.withDefaults()

	var terms []string
	var edges []Edge

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		levels := splitLevels(line, opts.Delimiter)
		if len(levels) == 0 {
			continue
		}
		if opts.Orientation == SpecificFirst {
			reverse(levels)
		}

		// levels is now most-generic-first: every level is a term,
		// every adjacent pair is one parent→child edge
		terms = append(terms, levels...)
		for i := 0; i+1 < len(levels); i++ {
			edges = append(edges, Edge{Parent: levels[i], Child: levels[i+1]})
		}
	}
	if err := scanner.Err(); err != nil {
		return NewDictionary(nil, nil), fmt.Errorf("ler dicionário: %w", err)
	}

	return NewDictionary(terms, edges), nil
}

// LoadFile loads the dictionary from a file. A missing or unreadable
// file is the SourceUnavailable condition: the returned Dictionary is
// empty but usable, and the error wraps ErrSourceUnavailable so callers
// can degrade to "no suggestions possible" instead of aborting.
func LoadFile(path string, opts LoaderOptions) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return NewDictionary(nil, nil), fmt.Errorf("%w: %s", ErrSourceUnavailable, path)
	}
	defer func() { _ = f.Close() }()

	return Load(f, opts)
}

// splitLevels splits one line into cleaned specificity levels: split on
// the delimiter, strip tabs entirely, trim whitespace, drop empties.
func splitLevels(line, delimiter string) []string {
	parts := strings.Split(line, delimiter)
	levels := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ReplaceAll(p, "\t", "")
		p = strings.TrimSpace(p)
		if p != "" {
			levels = append(levels, p)
		}
	}
	return levels
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
