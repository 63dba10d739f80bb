// pattern: Functional Core

package discovery

import (
	"slices"
	"strings"
)

// matchThreshold is the minimum score (exclusive) for an entry to appear in
// a query view.
const matchThreshold = 50

// ByRecency returns the catalog ordered by last modification, most recently
// touched first. Equal timestamps fall back to name order so the result is
// deterministic for a given catalog.
func ByRecency(c Catalog) []Repo {
	repos := collect(c)
	slices.SortFunc(repos, func(a, b Repo) int {
		switch {
		case a.LastModified.After(b.LastModified):
			return -1
		case b.LastModified.After(a.LastModified):
			return 1
		}
		return compareNames(a, b)
	})
	return repos
}

// ByName returns the catalog ordered by name, case-insensitive ascending.
func ByName(c Catalog) []Repo {
	repos := collect(c)
	slices.SortFunc(repos, compareNames)
	return repos
}

// ByQuery returns the catalog entries whose names fuzzily match the query,
// best matches first. An empty query behaves exactly like ByName. Entries
// scoring at or below the threshold are dropped; the rest are ordered by
// score descending, then name ascending within equal scores.
func ByQuery(c Catalog, query string) []Repo {
	if query == "" {
		return ByName(c)
	}
	q := strings.ToLower(query)

	type match struct {
		repo  Repo
		score int
	}
	var matches []match
	for _, repo := range c {
		score := PartialRatio(q, strings.ToLower(repo.Name))
		if score <= matchThreshold {
			continue
		}
		matches = append(matches, match{repo: repo, score: score})
	}

	slices.SortFunc(matches, func(a, b match) int {
		if a.score != b.score {
			return b.score - a.score
		}
		return compareNames(a.repo, b.repo)
	})

	repos := make([]Repo, len(matches))
	for i, m := range matches {
		repos[i] = m.repo
	}
	return repos
}

func collect(c Catalog) []Repo {
	repos := make([]Repo, 0, len(c))
	for _, repo := range c {
		repos = append(repos, repo)
	}
	return repos
}

// compareNames orders case-insensitively, with a byte-order tiebreak so
// names differing only in case still sort deterministically.
func compareNames(a, b Repo) int {
	la, lb := strings.ToLower(a.Name), strings.ToLower(b.Name)
	if la != lb {
		return strings.Compare(la, lb)
	}
	return strings.Compare(a.Name, b.Name)
}
