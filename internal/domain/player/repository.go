package player

import "context"

// Repository exposes player read operations.
type Repository interface {
	List(ctx context.Context, limit int) ([]Player, error)
	GetByID(ctx context.Context, playerID int64) (Player, bool, error)
}
