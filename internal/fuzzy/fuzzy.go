// ABOUTME: Fuzzy filtering of key bindings by name or sequence, over sahilm/fuzzy
// ABOUTME: Backs "cursory keys <pattern>"; an empty pattern keeps everything in order

// Package fuzzy ranks strings against a typed pattern.
package fuzzy

import "github.com/sahilm/fuzzy"

// Match is one ranked hit.
type Match struct {
	Str            string
	Index          int
	MatchedIndexes []int
	Score          int
}

// FindFrom ranks the strings of an indexed collection against pattern,
// best first. An empty pattern matches every item in its original order.
func FindFrom(pattern string, data fuzzy.Source) []Match {
	if pattern == "" {
		all := make([]Match, data.Len())
		for i := range all {
			all[i] = Match{Str: data.String(i), Index: i}
		}
		return all
	}
	return convert(fuzzy.FindFrom(pattern, data))
}

func convert(results fuzzy.Matches) []Match {
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Str:            r.Str,
			Index:          r.Index,
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		}
	}
	return matches
}
