package country

import "context"

// Repository exposes country read operations.
type Repository interface {
	List(ctx context.Context) ([]Country, error)
	GetByID(ctx context.Context, countryID int64) (Country, bool, error)
}
