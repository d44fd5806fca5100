package asset

import "sort"

// Featured combines the two engagement rankings: the top perRank assets by
// FavoritedCount and the top perRank by SharedCount. The lists are unioned
// with first-occurrence dedup by ID (favorited winners first) and truncated
// to maxTotal summaries. Sorting is stable, so ties keep the caller's order.
func Featured(assets []Asset, perRank, maxTotal int) []Summary {
	favorited := topBy(assets, perRank, func(a *Asset) int { return a.FavoritedCount })
	shared := topBy(assets, perRank, func(a *Asset) int { return a.SharedCount })

	seen := make(map[string]bool, len(favorited)+len(shared))
	out := make([]Summary, 0, maxTotal)
	for _, a := range append(favorited, shared...) {
		if seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		out = append(out, a.Summary())
		if len(out) == maxTotal {
			break
		}
	}
	return out
}

// topBy returns the n highest-scored assets, stable on input order for ties.
func topBy(assets []Asset, n int, score func(*Asset) int) []Asset {
	ranked := make([]Asset, len(assets))
	copy(ranked, assets)
	sort.SliceStable(ranked, func(i, j int) bool {
		return score(&ranked[i]) > score(&ranked[j])
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
