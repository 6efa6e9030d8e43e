package docquery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestFilter_MergesRangeOnSameField(t *testing.T) {
	t.Parallel()

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	got := Filter(Gte("starting_at", from), Lt("starting_at", to))

	assert.Equal(t, bson.M{
		"starting_at": bson.M{"$gte": from, "$lt": to},
	}, got)
}

func TestFilter_InBoxesValues(t *testing.T) {
	t.Parallel()

	got := Filter(In("league_id", []int64{8, 564}))

	assert.Equal(t, bson.M{
		"league_id": bson.M{"$in": []any{int64(8), int64(564)}},
	}, got)
}

func TestFilter_RegexQuotesUserInput(t *testing.T) {
	t.Parallel()

	got := Filter(RegexFold("name", "st. (pauli)"))

	assert.Equal(t, bson.M{
		"name": bson.M{"$regex": `st\. \(pauli\)`, "$options": "i"},
	}, got)
}

func TestFilter_OrAccumulatesBranches(t *testing.T) {
	t.Parallel()

	got := Filter(
		Eq("state", "LIVE"),
		Or(Eq("featured", true), Gte("priority", 50)),
	)

	assert.Equal(t, bson.M{
		"state": "LIVE",
		"$or": []bson.M{
			{"featured": true},
			{"priority": bson.M{"$gte": 50}},
		},
	}, got)
}

func TestFilter_ElemMatch(t *testing.T) {
	t.Parallel()

	got := Filter(ElemMatch("participants", Eq("team_id", int64(19))))

	assert.Equal(t, bson.M{
		"participants": bson.M{"$elemMatch": bson.M{"team_id": int64(19)}},
	}, got)
}

func TestPipeline_StageOrderAndShapes(t *testing.T) {
	t.Parallel()

	stages := NewPipeline().
		Match(Filter(Eq("state", "NS"))).
		AddScoreField("computed_score", "league_id", map[int64]int{564: 180, 8: 350}, 20).
		Sort(bson.D{{Key: "computed_score", Value: -1}, {Key: "starting_at", Value: 1}}).
		Skip(40).
		Limit(20).
		Build()

	assert.Len(t, stages, 5)
	assert.Equal(t, bson.D{{Key: "$match", Value: bson.M{"state": "NS"}}}, stages[0])

	// Branches come out in ascending key order.
	assert.Equal(t, bson.D{{Key: "$addFields", Value: bson.M{
		"computed_score": bson.M{"$switch": bson.M{
			"branches": []bson.M{
				{"case": bson.M{"$eq": bson.A{"$league_id", int64(8)}}, "then": 350},
				{"case": bson.M{"$eq": bson.A{"$league_id", int64(564)}}, "then": 180},
			},
			"default": 20,
		}},
	}}}, stages[1])

	assert.Equal(t, bson.D{{Key: "$sort", Value: bson.D{
		{Key: "computed_score", Value: -1},
		{Key: "starting_at", Value: 1},
	}}}, stages[2])
	assert.Equal(t, bson.D{{Key: "$skip", Value: int64(40)}}, stages[3])
	assert.Equal(t, bson.D{{Key: "$limit", Value: int64(20)}}, stages[4])
}

func TestPipeline_EmptyScoresCollapseToDefault(t *testing.T) {
	t.Parallel()

	stages := NewPipeline().
		AddScoreField("computed_score", "league_id", nil, 20).
		Build()

	assert.Equal(t, []bson.D{
		{{Key: "$addFields", Value: bson.M{"computed_score": 20}}},
	}, stages)
}

func TestPipeline_SkipsEmptyStages(t *testing.T) {
	t.Parallel()

	stages := NewPipeline().
		Match(bson.M{}).
		Sort(bson.D{}).
		Skip(0).
		Limit(0).
		Build()

	assert.Empty(t, stages)
}
