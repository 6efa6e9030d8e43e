package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ilhamrdh/scorebase/internal/domain/match"
	"github.com/ilhamrdh/scorebase/internal/platform/docquery"
)

const scoreField = "computed_score"

// MatchRepository runs the ranking aggregation over the matches collection.
type MatchRepository struct {
	collection *mongo.Collection
}

func (r *MatchRepository) List(ctx context.Context, q match.Query) ([]match.Match, int64, error) {
	filter := buildMatchFilter(q.Filter)

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count matches: %w", err)
	}

	pipeline := docquery.NewPipeline().Match(filter)
	switch q.Sort {
	case match.SortPriority, match.SortRelevance:
		pipeline.
			AddScoreField(scoreField, "league_id", q.PriorityScores, q.DefaultScore).
			Sort(bson.D{{Key: scoreField, Value: -1}, {Key: "starting_at", Value: 1}})
	case match.SortTime:
		pipeline.Sort(bson.D{{Key: "starting_at", Value: 1}})
	default:
		pipeline.Sort(bson.D{{Key: "starting_at", Value: -1}})
	}
	pipeline.Skip(q.Skip).Limit(q.Limit)

	cursor, err := r.collection.Aggregate(ctx, pipeline.Build())
	if err != nil {
		return nil, 0, fmt.Errorf("aggregate matches: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []match.Match
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode matches: %w", err)
	}
	return docs, total, nil
}

func (r *MatchRepository) UpsertAll(ctx context.Context, matches []match.Match) error {
	if len(matches) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(matches))
	for _, m := range matches {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": m.ID}).
			SetReplacement(m).
			SetUpsert(true))
	}

	if _, err := r.collection.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false)); err != nil {
		return fmt.Errorf("bulk upsert matches: %w", err)
	}
	return nil
}

func buildMatchFilter(f match.Filter) bson.M {
	conditions := make([]docquery.Condition, 0, 6)
	if f.From != nil {
		conditions = append(conditions, docquery.Gte("starting_at", *f.From))
	}
	if f.To != nil {
		conditions = append(conditions, docquery.Lt("starting_at", *f.To))
	}
	if len(f.LeagueIDs) > 0 {
		conditions = append(conditions, docquery.In("league_id", f.LeagueIDs))
	}
	if len(f.TeamIDs) > 0 {
		conditions = append(conditions, docquery.ElemMatch("participants", docquery.In("id", f.TeamIDs)))
	}
	if len(f.States) > 0 {
		conditions = append(conditions, docquery.In("state", f.States))
	}
	if f.Search != "" {
		searchConditions := []docquery.Condition{
			docquery.ElemMatch("participants", docquery.RegexFold("name", f.Search)),
		}
		if len(f.SearchLeagueIDs) > 0 {
			searchConditions = append(searchConditions, docquery.In("league_id", f.SearchLeagueIDs))
		}
		conditions = append(conditions, docquery.Or(searchConditions...))
	}
	return docquery.Filter(conditions...)
}
