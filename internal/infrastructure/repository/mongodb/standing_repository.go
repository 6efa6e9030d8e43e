package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type standingDoc struct {
	LeagueID int64          `bson:"league_id"`
	Payload  map[string]any `bson:"payload"`
}

// StandingRepository stores the provider's standings payloads verbatim,
// one document per season. Normalization happens at read time in the
// reconciler, so schema drift upstream never corrupts stored data.
type StandingRepository struct {
	collection *mongo.Collection
}

func (r *StandingRepository) ListRawByLeague(ctx context.Context, leagueID int64) ([]map[string]any, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"league_id": leagueID})
	if err != nil {
		return nil, fmt.Errorf("find standings: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []standingDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode standings: %w", err)
	}

	out := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		if doc.Payload != nil {
			out = append(out, doc.Payload)
		}
	}
	return out, nil
}

func (r *StandingRepository) ReplaceByLeague(ctx context.Context, leagueID int64, raw []map[string]any) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"league_id": leagueID}); err != nil {
		return fmt.Errorf("clear standings league_id=%d: %w", leagueID, err)
	}
	if len(raw) == 0 {
		return nil
	}

	docs := make([]any, 0, len(raw))
	for _, payload := range raw {
		docs = append(docs, standingDoc{LeagueID: leagueID, Payload: payload})
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert standings league_id=%d: %w", leagueID, err)
	}
	return nil
}
