// Package query is the pure derivation layer: it turns a signal snapshot
// plus the active filter into the views the dashboard renders. Nothing in
// here touches the store or the network, and every function is total —
// malformed or partial records flow through unchanged rather than erroring.
package query

import (
	"math"
	"sort"
	"strings"

	"github.com/rashed-commits/uae-market-intel/models"
	"github.com/rashed-commits/uae-market-intel/store"
)

// Apply returns the sub-sequence of signals matching every active axis of
// the filter, preserving original relative order. Search is a
// case-insensitive substring match over title, summary, and keywords.
func Apply(signals []models.Signal, f store.Filter) []models.Signal {
	term := strings.ToLower(f.Search)

	var out []models.Signal
	for _, s := range signals {
		if !f.AllSectors() && s.Sector != f.Sector {
			continue
		}
		if !f.AllTypes() && string(s.Type) != f.Type {
			continue
		}
		if term != "" && !matchesSearch(s, term) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func matchesSearch(s models.Signal, term string) bool {
	if strings.Contains(strings.ToLower(s.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(s.Summary), term) {
		return true
	}
	for _, kw := range s.Keywords {
		if strings.Contains(strings.ToLower(kw), term) {
			return true
		}
	}
	return false
}

// Group is one partition of the snapshot keyed by sector or platform.
// Signals keep their snapshot order within the group.
type Group struct {
	Key     string
	Signals []models.Signal
}

func (g Group) Size() int { return len(g.Signals) }

// Top returns at most n signals from the head of the group.
func (g Group) Top(n int) []models.Signal {
	if n < 0 || n >= len(g.Signals) {
		return g.Signals
	}
	return g.Signals[:n]
}

// Types returns the distinct signal types present in the group, in
// first-seen order.
func (g Group) Types() []models.SignalType {
	var out []models.SignalType
	seen := make(map[models.SignalType]bool)
	for _, s := range g.Signals {
		if !seen[s.Type] {
			seen[s.Type] = true
			out = append(out, s.Type)
		}
	}
	return out
}

// GroupBySector partitions the full snapshot by sector, ordered by
// descending group size; equal-size groups keep first-seen order.
func GroupBySector(signals []models.Signal) []Group {
	return groupBy(signals, func(s models.Signal) string { return s.Sector })
}

// GroupByPlatform partitions the full snapshot by platform with the same
// ordering rules as GroupBySector.
func GroupByPlatform(signals []models.Signal) []Group {
	return groupBy(signals, func(s models.Signal) string { return s.Platform })
}

func groupBy(signals []models.Signal, key func(models.Signal) string) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, s := range signals {
		k := key(s)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: k})
		}
		groups[i].Signals = append(groups[i].Signals, s)
	}

	// Stable keeps first-seen order for equal sizes.
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].Signals) > len(groups[j].Signals)
	})
	return groups
}

// Stats are the dashboard's headline counters, always computed over the
// whole snapshot regardless of active filters.
type Stats struct {
	Total        int `json:"total"`
	HighPriority int `json:"high_priority"`
	Sectors      int `json:"sectors"`
	Platforms    int `json:"platforms"`
}

func ComputeStats(signals []models.Signal) Stats {
	sectors := make(map[string]bool)
	platforms := make(map[string]bool)

	stats := Stats{Total: len(signals)}
	for _, s := range signals {
		// Exact-case comparison: priority values are produced by our own
		// pipeline, so case variants count as unmatched.
		if s.Priority == models.PriorityHigh {
			stats.HighPriority++
		}
		sectors[s.Sector] = true
		platforms[s.Platform] = true
	}
	stats.Sectors = len(sectors)
	stats.Platforms = len(platforms)
	return stats
}

// PlatformShare maps each group key to its size as a percentage of the
// largest group, rounded. The largest group is always exactly 100. An
// empty input produces an empty map, never a division by zero.
func PlatformShare(groups []Group) map[string]int {
	share := make(map[string]int, len(groups))
	max := 0
	for _, g := range groups {
		if g.Size() > max {
			max = g.Size()
		}
	}
	if max == 0 {
		return share
	}
	for _, g := range groups {
		share[g.Key] = int(math.Round(100 * float64(g.Size()) / float64(max)))
	}
	return share
}

// Sectors returns the distinct sector values in the snapshot, sorted
// alphabetically. This feeds the sector filter options.
func Sectors(signals []models.Signal) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range signals {
		if !seen[s.Sector] {
			seen[s.Sector] = true
			out = append(out, s.Sector)
		}
	}
	sort.Strings(out)
	return out
}

// ByID finds a signal by its identifier.
func ByID(signals []models.Signal, id int) (models.Signal, bool) {
	for _, s := range signals {
		if s.ID == id {
			return s, true
		}
	}
	return models.Signal{}, false
}
