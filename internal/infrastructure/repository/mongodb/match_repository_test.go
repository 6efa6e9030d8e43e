package mongodb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/ilhamrdh/scorebase/internal/domain/match"
)

func TestBuildMatchFilter_Combined(t *testing.T) {
	t.Parallel()

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	got := buildMatchFilter(match.Filter{
		From:      &from,
		To:        &to,
		LeagueIDs: []int64{8, 564},
		TeamIDs:   []int64{19},
		States:    []string{"NS", "LIVE"},
	})

	assert.Equal(t, bson.M{
		"starting_at": bson.M{"$gte": from, "$lt": to},
		"league_id":   bson.M{"$in": []any{int64(8), int64(564)}},
		"participants": bson.M{"$elemMatch": bson.M{
			"id": bson.M{"$in": []any{int64(19)}},
		}},
		"state": bson.M{"$in": []any{"NS", "LIVE"}},
	}, got)
}

func TestBuildMatchFilter_SearchWidensToLeagues(t *testing.T) {
	t.Parallel()

	got := buildMatchFilter(match.Filter{
		Search:          "premier",
		SearchLeagueIDs: []int64{8},
	})

	assert.Equal(t, bson.M{
		"$or": []bson.M{
			{"participants": bson.M{"$elemMatch": bson.M{
				"name": bson.M{"$regex": "premier", "$options": "i"},
			}}},
			{"league_id": bson.M{"$in": []any{int64(8)}}},
		},
	}, got)
}

func TestBuildMatchFilter_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, buildMatchFilter(match.Filter{}))
}
