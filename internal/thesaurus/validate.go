package thesaurus

import "sort"

// Validate narrows raw oracle suggestions to the subset present in the
// vocabulary. Matching is case-insensitive and the output carries the
// canonical dictionary casing, never the oracle's. Out-of-vocabulary
// suggestions are dropped silently: the oracle is untrusted and expected
// to hallucinate occasionally. Duplicates collapse to one entry.
func (d *Dictionary) Validate(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	valid := make([]string, 0, len(raw))
	for _, r := range raw {
		term, ok := d.Lookup(r)
		if !ok || seen[term] {
			continue
		}
		seen[term] = true
		valid = append(valid, term)
	}
	sort.Strings(valid)
	return valid
}
