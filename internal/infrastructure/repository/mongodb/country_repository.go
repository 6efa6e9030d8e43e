package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ilhamrdh/scorebase/internal/domain/country"
)

type countryDoc struct {
	ID        int64  `bson:"_id"`
	Name      string `bson:"name"`
	ISO2      string `bson:"iso2,omitempty"`
	ISO3      string `bson:"iso3,omitempty"`
	ImagePath string `bson:"image_path,omitempty"`
}

func (d countryDoc) toDomain() country.Country {
	return country.Country{
		ID:        d.ID,
		Name:      d.Name,
		ISO2:      d.ISO2,
		ISO3:      d.ISO3,
		ImagePath: d.ImagePath,
	}
}

type CountryRepository struct {
	collection *mongo.Collection
}

func (r *CountryRepository) List(ctx context.Context) ([]country.Country, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find countries: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []countryDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode countries: %w", err)
	}

	out := make([]country.Country, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toDomain())
	}
	return out, nil
}

func (r *CountryRepository) GetByID(ctx context.Context, countryID int64) (country.Country, bool, error) {
	var doc countryDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": countryID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return country.Country{}, false, nil
	}
	if err != nil {
		return country.Country{}, false, fmt.Errorf("get country: %w", err)
	}
	return doc.toDomain(), true, nil
}

func (r *CountryRepository) UpsertAll(ctx context.Context, countries []country.Country) error {
	if len(countries) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(countries))
	for _, c := range countries {
		doc := countryDoc{ID: c.ID, Name: c.Name, ISO2: c.ISO2, ISO3: c.ISO3, ImagePath: c.ImagePath}
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": c.ID}).
			SetReplacement(doc).
			SetUpsert(true))
	}

	if _, err := r.collection.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false)); err != nil {
		return fmt.Errorf("bulk upsert countries: %w", err)
	}
	return nil
}
