package standing

import "strings"

// The upstream attaches statistics as typed detail entries, but the type
// catalogue is not stable: some competitions report one overall entry per
// metric, others an alternate numbering, others only home/away splits that
// must be summed, and older payloads carry free-form names instead of IDs.
// Each metric is resolved independently through an explicit resolver chain;
// the first resolver that produces a value wins.

type metric string

const (
	metricPlayed        metric = "played"
	metricWon           metric = "won"
	metricDraw          metric = "draw"
	metricLost          metric = "lost"
	metricGoalsFor      metric = "goals_for"
	metricGoalsAgainst  metric = "goals_against"
	metricCleanSheets   metric = "clean_sheets"
	metricFailedToScore metric = "failed_to_score"
)

// metricTypes enumerates the provider's type IDs for one metric. Zero means
// that slot is unknown for the metric; the corresponding resolver is a no-op.
// IDs beyond this table are deliberately not guessed: unrecognized entries
// fall through to name matching.
type metricTypes struct {
	overall    int64
	altOverall int64
	home       int64
	away       int64
	altHome    int64
	altAway    int64
	exactNames []string
	patterns   []string
}

var metricCatalogue = map[metric]metricTypes{
	metricPlayed: {
		overall:    129,
		home:       119,
		away:       120,
		exactNames: []string{"played", "matches", "games"},
		patterns:   []string{"matches played", "games played"},
	},
	metricWon: {
		overall:    130,
		home:       121,
		away:       122,
		exactNames: []string{"won", "wins", "win"},
		patterns:   []string{"matches won", "games won", "victory", "victories"},
	},
	metricDraw: {
		overall:    131,
		home:       123,
		away:       124,
		exactNames: []string{"draw", "draws", "drawn", "tie", "ties"},
		patterns:   []string{"matches drawn", "games drawn"},
	},
	metricLost: {
		overall:    132,
		home:       125,
		away:       126,
		exactNames: []string{"lost", "loss", "losses", "defeats", "defeat"},
		patterns:   []string{"matches lost", "games lost"},
	},
	metricGoalsFor: {
		overall:    133,
		altOverall: 117,
		exactNames: []string{"goals for", "scored"},
		patterns:   []string{"goals scored", "scored goals"},
	},
	metricGoalsAgainst: {
		overall:    134,
		altOverall: 118,
		exactNames: []string{"goals against", "conceded"},
		patterns:   []string{"goals conceded", "goals allowed"},
	},
	metricCleanSheets: {
		patterns: []string{"clean sheet", "cleansheet"},
	},
	metricFailedToScore: {
		patterns: []string{"failed to score"},
	},
}

// detailIndex is the lookup built once per reconciliation pass.
type detailIndex struct {
	byID   map[int64]int
	byName map[string]int
	names  []string
}

type resolver func(idx detailIndex) (int, bool)

// resolversFor returns the ordered attempt chain for one metric:
// overall ID, alternate overall ID, home+away sum, alternate home/away sum,
// then name matching.
func resolversFor(types metricTypes) []resolver {
	return []resolver{
		byTypeID(types.overall),
		byTypeID(types.altOverall),
		bySplitSum(types.home, types.away),
		bySplitSum(types.altHome, types.altAway),
		byName(types.exactNames, types.patterns),
	}
}

func byTypeID(id int64) resolver {
	return func(idx detailIndex) (int, bool) {
		if id == 0 {
			return 0, false
		}
		v, ok := idx.byID[id]
		return v, ok
	}
}

func bySplitSum(home, away int64) resolver {
	return func(idx detailIndex) (int, bool) {
		if home == 0 || away == 0 {
			return 0, false
		}
		h, okHome := idx.byID[home]
		a, okAway := idx.byID[away]
		if !okHome || !okAway {
			return 0, false
		}
		return h + a, true
	}
}

func byName(exact []string, patterns []string) resolver {
	return func(idx detailIndex) (int, bool) {
		for _, name := range exact {
			if v, ok := idx.byName[name]; ok {
				return v, true
			}
		}
		for _, name := range idx.names {
			for _, pattern := range patterns {
				if strings.Contains(name, pattern) {
					return idx.byName[name], true
				}
			}
		}
		return 0, false
	}
}

// ReconcileDetails folds a heterogeneous detail array into canonical metrics.
// It is pure and total: malformed entries are skipped, unresolvable required
// metrics default to zero, and the optional metrics stay nil when unknown.
func ReconcileDetails(details []Detail) Metrics {
	idx := indexDetails(details)

	resolved := make(map[metric]int, 8)
	for name, types := range metricCatalogue {
		for _, attempt := range resolversFor(types) {
			if v, ok := attempt(idx); ok {
				resolved[name] = v
				break
			}
		}
	}

	closeArithmetic(resolved)

	out := Metrics{
		Played:       resolved[metricPlayed],
		Won:          resolved[metricWon],
		Draw:         resolved[metricDraw],
		Lost:         resolved[metricLost],
		GoalsFor:     resolved[metricGoalsFor],
		GoalsAgainst: resolved[metricGoalsAgainst],
	}
	if v, ok := resolved[metricCleanSheets]; ok {
		out.CleanSheets = intPtr(v)
	}
	if v, ok := resolved[metricFailedToScore]; ok {
		out.FailedToScore = intPtr(v)
	}
	return out
}

// closeArithmetic derives whichever of played/won/draw/lost is missing when
// the other three are known, keeping played == won + draw + lost.
func closeArithmetic(resolved map[metric]int) {
	played, hasPlayed := resolved[metricPlayed]
	won, hasWon := resolved[metricWon]
	draw, hasDraw := resolved[metricDraw]
	lost, hasLost := resolved[metricLost]

	if !hasPlayed && hasWon && hasDraw && hasLost {
		resolved[metricPlayed] = won + draw + lost
		return
	}
	if !hasPlayed {
		return
	}

	switch {
	case !hasWon && hasDraw && hasLost:
		resolved[metricWon] = clampNonNegative(played - draw - lost)
	case !hasDraw && hasWon && hasLost:
		resolved[metricDraw] = clampNonNegative(played - won - lost)
	case !hasLost && hasWon && hasDraw:
		resolved[metricLost] = clampNonNegative(played - won - draw)
	}
}

func indexDetails(details []Detail) detailIndex {
	idx := detailIndex{
		byID:   make(map[int64]int, len(details)),
		byName: make(map[string]int, len(details)),
	}
	for _, detail := range details {
		value, ok := numericValue(detail.Value)
		if !ok {
			continue
		}
		if detail.TypeID > 0 {
			if _, exists := idx.byID[detail.TypeID]; !exists {
				idx.byID[detail.TypeID] = value
			}
		}
		name := normalizeTypeName(detail.TypeName)
		if name == "" || isRatioName(name) {
			continue
		}
		if _, exists := idx.byName[name]; !exists {
			idx.byName[name] = value
			idx.names = append(idx.names, name)
		}
	}
	return idx
}

// DetailsFromRaw extracts typed detail entries from a decoded document
// fragment. It tolerates bare arrays, {"data": [...]} envelopes and single
// objects; entries without a type reference or value are dropped.
func DetailsFromRaw(raw any) []Detail {
	items := relationList(raw)
	if items == nil {
		if single := relationData(raw); single != nil {
			items = []any{single}
		}
	}

	out := make([]Detail, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}

		typeInfo := relationData(entry["type"])
		detail := Detail{
			TypeID: getInt64(entry, "type_id"),
			TypeName: firstNonEmpty(
				getString(typeInfo, "developer_name"),
				getString(typeInfo, "code"),
				getString(typeInfo, "name"),
				getString(entry, "type_name"),
			),
		}
		if detail.TypeID == 0 {
			detail.TypeID = getInt64(typeInfo, "id")
		}
		if name := getString(entry, "type"); detail.TypeName == "" && typeInfo == nil {
			detail.TypeName = name
		}

		value, ok := entry["value"]
		if !ok || value == nil {
			value = entry["total"]
		}
		if value == nil && detail.TypeID == 0 && detail.TypeName == "" {
			continue
		}
		detail.Value = value
		out = append(out, detail)
	}
	return out
}

// isRatioName filters out derived percentage/rate statistics which would
// otherwise collide with count metrics ("clean sheet percentage").
func isRatioName(name string) bool {
	return strings.Contains(name, "percentage") ||
		strings.Contains(name, "percent") ||
		strings.Contains(name, "rate") ||
		strings.Contains(name, "average")
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func intPtr(v int) *int {
	out := v
	return &out
}
