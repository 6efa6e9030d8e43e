package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ilhamrdh/scorebase/internal/domain/player"
)

type playerDoc struct {
	ID          int64  `bson:"_id"`
	TeamID      int64  `bson:"team_id,omitempty"`
	CountryID   int64  `bson:"country_id,omitempty"`
	Name        string `bson:"name"`
	CommonName  string `bson:"common_name,omitempty"`
	DisplayName string `bson:"display_name,omitempty"`
	Position    string `bson:"position,omitempty"`
	ImagePath   string `bson:"image_path,omitempty"`
	DateOfBirth string `bson:"date_of_birth,omitempty"`
}

func (d playerDoc) toDomain() player.Player {
	return player.Player{
		ID:          d.ID,
		TeamID:      d.TeamID,
		CountryID:   d.CountryID,
		Name:        d.Name,
		CommonName:  d.CommonName,
		DisplayName: d.DisplayName,
		Position:    d.Position,
		ImagePath:   d.ImagePath,
		DateOfBirth: d.DateOfBirth,
	}
}

func fromDomainPlayer(p player.Player) playerDoc {
	return playerDoc{
		ID:          p.ID,
		TeamID:      p.TeamID,
		CountryID:   p.CountryID,
		Name:        p.Name,
		CommonName:  p.CommonName,
		DisplayName: p.DisplayName,
		Position:    p.Position,
		ImagePath:   p.ImagePath,
		DateOfBirth: p.DateOfBirth,
	}
}

type PlayerRepository struct {
	collection *mongo.Collection
}

func (r *PlayerRepository) List(ctx context.Context, limit int) ([]player.Player, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find players: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []playerDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode players: %w", err)
	}

	out := make([]player.Player, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	var doc playerDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": playerID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return player.Player{}, false, nil
	}
	if err != nil {
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}
	return doc.toDomain(), true, nil
}

func (r *PlayerRepository) UpsertAll(ctx context.Context, players []player.Player) error {
	if len(players) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(players))
	for _, p := range players {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": p.ID}).
			SetReplacement(fromDomainPlayer(p)).
			SetUpsert(true))
	}

	if _, err := r.collection.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false)); err != nil {
		return fmt.Errorf("bulk upsert players: %w", err)
	}
	return nil
}
