package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	collMatches   = "matches"
	collLeagues   = "leagues"
	collCountries = "countries"
	collPlayers   = "players"
	collStandings = "standings_raw"
)

// Store owns the client connection and hands out per-collection
// repositories.
type Store struct {
	client   *mongo.Client
	database *mongo.Database
}

func NewStore(ctx context.Context, uri, dbName string) (*Store, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo uri is required")
	}
	if dbName == "" {
		return nil, fmt.Errorf("mongo database name is required")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Store{
		client:   client,
		database: client.Database(dbName),
	}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) Matches() *MatchRepository {
	return &MatchRepository{collection: s.database.Collection(collMatches)}
}

func (s *Store) Leagues() *LeagueRepository {
	return &LeagueRepository{collection: s.database.Collection(collLeagues)}
}

func (s *Store) Countries() *CountryRepository {
	return &CountryRepository{collection: s.database.Collection(collCountries)}
}

func (s *Store) Players() *PlayerRepository {
	return &PlayerRepository{collection: s.database.Collection(collPlayers)}
}

func (s *Store) Standings() *StandingRepository {
	return &StandingRepository{collection: s.database.Collection(collStandings)}
}

// EnsureIndexes creates the indexes the ranking pipeline and sync path
// rely on. Safe to run repeatedly.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	matchIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "starting_at", Value: 1}}},
		{Keys: bson.D{{Key: "league_id", Value: 1}}},
		{Keys: bson.D{{Key: "state", Value: 1}}},
		{Keys: bson.D{{Key: "participants.id", Value: 1}}},
	}
	if _, err := s.database.Collection(collMatches).Indexes().CreateMany(ctx, matchIndexes); err != nil {
		return fmt.Errorf("create match indexes: %w", err)
	}

	standingIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "league_id", Value: 1}}},
	}
	if _, err := s.database.Collection(collStandings).Indexes().CreateMany(ctx, standingIndexes); err != nil {
		return fmt.Errorf("create standings indexes: %w", err)
	}

	playerIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "team_id", Value: 1}}},
	}
	if _, err := s.database.Collection(collPlayers).Indexes().CreateMany(ctx, playerIndexes); err != nil {
		return fmt.Errorf("create player indexes: %w", err)
	}
	return nil
}
