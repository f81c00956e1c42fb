package thesaurus

import "sort"

// FilterSpecific removes from the candidate set every term that is a
// strict ancestor of another candidate: a user should never see both
// "Transporte" and "Transporte Ferroviário" suggested together.
//
// For each candidate the entire parent chain is walked, not just the
// direct parent, so multi-level dictionaries prune the whole ancestor
// line (A is removed from {A, C} when A → B → C). Candidates with no
// hierarchy relations pass through unchanged, and a term is only ever
// removed because some other candidate descends from it.
//
// If a walk revisits a term the hierarchy data contains a cycle; the
// filter then returns the candidate set unchanged together with
// ErrMalformedHierarchy. Under-filtering is the safe failure mode;
// hanging or dropping valid terms is not.
func (d *Dictionary) FilterSpecific(candidates []string) ([]string, error) {
	keep := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		keep[c] = true
	}

	for _, c := range candidates {
		visited := map[string]bool{c: true}
		cur := c
		for {
			p := d.ParentOf(cur)
			if p == "" {
				break
			}
			if visited[p] {
				return dedupeSorted(candidates), ErrMalformedHierarchy
			}
			visited[p] = true
			if keep[p] {
				delete(keep, p)
			}
			cur = p
		}
	}

	result := make([]string, 0, len(keep))
	for t := range keep {
		result = append(result, t)
	}
	sort.Strings(result)
	return result, nil
}

func dedupeSorted(terms []string) []string {
	seen := make(map[string]bool, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}
