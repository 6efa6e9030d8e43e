package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ilhamrdh/scorebase/internal/domain/league"
)

type leagueDoc struct {
	ID        int64  `bson:"_id"`
	Name      string `bson:"name"`
	LogoPath  string `bson:"logo_path,omitempty"`
	CountryID int64  `bson:"country_id,omitempty"`
	Priority  int    `bson:"priority"`
	Tier      string `bson:"tier,omitempty"`
	Featured  bool   `bson:"featured"`
}

func (d leagueDoc) toDomain() league.League {
	return league.League{
		ID:        d.ID,
		Name:      d.Name,
		LogoPath:  d.LogoPath,
		CountryID: d.CountryID,
		Priority:  d.Priority,
		Tier:      league.ParseTier(d.Tier),
		Featured:  d.Featured,
	}
}

type LeagueRepository struct {
	collection *mongo.Collection
}

func (r *LeagueRepository) ListAll(ctx context.Context) ([]league.League, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find leagues: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []leagueDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode leagues: %w", err)
	}

	out := make([]league.League, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toDomain())
	}
	return out, nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID int64) (league.League, bool, error) {
	var doc leagueDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": leagueID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return league.League{}, false, nil
	}
	if err != nil {
		return league.League{}, false, fmt.Errorf("get league: %w", err)
	}
	return doc.toDomain(), true, nil
}

// UpsertAll writes provider fields only. Priority, tier and featured are
// editorial settings maintained out of band, so updates never touch them
// and inserts start from the unclassified defaults.
func (r *LeagueRepository) UpsertAll(ctx context.Context, leagues []league.League) error {
	if len(leagues) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(leagues))
	for _, l := range leagues {
		update := bson.M{
			"$set": bson.M{
				"name":       l.Name,
				"logo_path":  l.LogoPath,
				"country_id": l.CountryID,
			},
			"$setOnInsert": bson.M{
				"priority": 0,
				"featured": false,
			},
		}
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": l.ID}).
			SetUpdate(update).
			SetUpsert(true))
	}

	if _, err := r.collection.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false)); err != nil {
		return fmt.Errorf("bulk upsert leagues: %w", err)
	}
	return nil
}
