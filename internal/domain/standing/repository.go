package standing

import "context"

// Repository reads raw standings documents as materialized by the sync
// pipeline. Documents keep the provider shape; normalization happens in
// this package on every read.
type Repository interface {
	ListRawByLeague(ctx context.Context, leagueID int64) ([]map[string]any, error)
	ReplaceByLeague(ctx context.Context, leagueID int64, payloads []map[string]any) error
}
