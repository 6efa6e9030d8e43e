package match

import (
	"context"
	"time"
)

// Sort modes supported by the query engine.
const (
	SortPriority    = "priority"
	SortRelevance   = "relevance"
	SortTime        = "time"
	SortKickoffDesc = "kickoff_desc"
)

// Filter narrows the match collection before ranking. Zero values mean
// "no constraint". Search only covers participant names at this layer;
// SearchLeagueIDs widens the same predicate to leagues whose cached name
// already matched, since league names are not stored on the document.
type Filter struct {
	From            *time.Time
	To              *time.Time
	LeagueIDs       []int64
	TeamIDs         []int64
	States          []string
	Search          string
	SearchLeagueIDs []int64
}

// Query is the full executor input: filter, ranking inputs, and paging.
// PriorityScores feeds the conditional-scoring stage; it is a snapshot of
// one cache generation so a single query never mixes generations.
type Query struct {
	Filter         Filter
	Sort           string
	Skip           int64
	Limit          int64
	PriorityScores map[int64]int
	DefaultScore   int
}

// Repository executes ranked match queries against the document store.
type Repository interface {
	List(ctx context.Context, q Query) ([]Match, int64, error)
	UpsertAll(ctx context.Context, matches []Match) error
}
