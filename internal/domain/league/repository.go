package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	ListAll(ctx context.Context) ([]League, error)
	GetByID(ctx context.Context, leagueID int64) (League, bool, error)
}
