// Package thesaurus implements the controlled vocabulary used for
// legislative indexing: loading the term dictionary, the generic→specific
// hierarchy index, validation of oracle suggestions against the vocabulary,
// and the specificity filter that prunes redundant ancestor terms.
package thesaurus

import (
	"errors"
	"sort"
	"strings"
)

// ErrSourceUnavailable indicates the dictionary source could not be read.
// Callers receive an empty, usable Dictionary alongside it: no vocabulary
// means no suggestions, never a crash.
var ErrSourceUnavailable = errors.New("dicionário de termos indisponível")

// ErrMalformedHierarchy indicates a cycle in the generic→specific relations.
// The specificity filter reports it and returns its input unfiltered.
var ErrMalformedHierarchy = errors.New("hierarquia de termos malformada (ciclo detectado)")

// Dictionary is the controlled vocabulary: the fixed term set plus the
// generic→specific hierarchy. It is built once at startup and never
// mutated, so it is safe for concurrent reads without locking.
type Dictionary struct {
	canonical map[string]string   // folded form -> dictionary-cased term
	parent    map[string]string   // child -> direct parent (derived at build)
	children  map[string][]string // parent -> children
}

// Edge is one generic→specific relation between two terms.
type Edge struct {
	Parent string
	Child  string
}

// NewDictionary builds a Dictionary from a term list and hierarchy edges.
// Duplicate terms collapse to the first casing seen; duplicate edges
// collapse to one. The child→parent map is derived here, once, so parent
// lookups during filtering are O(1).
func NewDictionary(terms []string, edges []Edge) *Dictionary {
	d := &Dictionary{
		canonical: make(map[string]string, len(terms)),
		parent:    make(map[string]string, len(edges)),
		children:  make(map[string][]string),
	}

	for _, t := range terms {
		key := fold(t)
		if key == "" {
			continue
		}
		if _, ok := d.canonical[key]; !ok {
			d.canonical[key] = t
		}
	}

	seen := make(map[Edge]bool, len(edges))
	for _, e := range edges {
		if e.Parent == "" || e.Child == "" || e.Parent == e.Child {
			continue
		}
		if seen[e] {
			continue
		}
		seen[e] = true
		d.parent[e.Child] = e.Parent
		d.children[e.Parent] = append(d.children[e.Parent], e.Child)
	}

	return d
}

// Len returns the number of terms in the vocabulary.
func (d *Dictionary) Len() int {
	return len(d.canonical)
}

// EdgeCount returns the number of hierarchy relations.
func (d *Dictionary) EdgeCount() int {
	return len(d.parent)
}

// Terms returns all vocabulary terms in their canonical casing, sorted.
func (d *Dictionary) Terms() []string {
	terms := make([]string, 0, len(d.canonical))
	for _, t := range d.canonical {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return terms
}

// Lookup resolves a raw string to its canonical term, case-insensitively.
func (d *Dictionary) Lookup(raw string) (string, bool) {
	t, ok := d.canonical[fold(raw)]
	return t, ok
}

// ParentOf returns the direct parent of a term, or "" for roots and for
// terms with no recorded relations.
func (d *Dictionary) ParentOf(term string) string {
	return d.parent[term]
}

// ChildrenOf returns the direct children of a term. Terms with no
// children yield an empty slice, not an error.
func (d *Dictionary) ChildrenOf(term string) []string {
	return d.children[term]
}

// Cycles walks every parent chain and returns the terms whose chain
// never reaches a root. Used by `assistente dict check` to surface a
// malformed dictionary before it reaches users.
func (d *Dictionary) Cycles() []string {
	var cyclic []string
	for child := range d.parent {
		visited := map[string]bool{child: true}
		cur := child
		for {
			p := d.parent[cur]
			if p == "" {
				break
			}
			if visited[p] {
				cyclic = append(cyclic, child)
				break
			}
			visited[p] = true
			cur = p
		}
	}
	sort.Strings(cyclic)
	return cyclic
}

// fold produces the case-insensitive matching key for a term.
func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
