package docquery

import (
	"regexp"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
)

// Condition contributes one predicate to a document filter. Conditions on
// the same field merge operator-wise, so Gte("a", x) and Lte("a", y)
// produce a single range document.
type Condition interface {
	apply(filter bson.M)
}

type eqCondition struct {
	field string
	value any
}

func Eq(field string, value any) Condition {
	return eqCondition{field: field, value: value}
}

func (c eqCondition) apply(filter bson.M) {
	filter[c.field] = c.value
}

type opCondition struct {
	field    string
	operator string
	value    any
}

func (c opCondition) apply(filter bson.M) {
	existing, ok := filter[c.field].(bson.M)
	if !ok {
		existing = bson.M{}
		filter[c.field] = existing
	}
	existing[c.operator] = c.value
}

func Gte(field string, value any) Condition {
	return opCondition{field: field, operator: "$gte", value: value}
}

func Lt(field string, value any) Condition {
	return opCondition{field: field, operator: "$lt", value: value}
}

func Lte(field string, value any) Condition {
	return opCondition{field: field, operator: "$lte", value: value}
}

func Gt(field string, value any) Condition {
	return opCondition{field: field, operator: "$gt", value: value}
}

// In matches set membership. An empty value set matches nothing, mirroring
// SQL's `IN ()` behavior rather than matching everything.
func In[T any](field string, values []T) Condition {
	boxed := make([]any, 0, len(values))
	for _, v := range values {
		boxed = append(boxed, v)
	}
	return opCondition{field: field, operator: "$in", value: boxed}
}

// RegexFold matches a case-insensitive substring. The term is quoted so user
// input can never inject regex syntax.
func RegexFold(field, term string) Condition {
	return regexCondition{field: field, term: term}
}

type regexCondition struct {
	field string
	term  string
}

func (c regexCondition) apply(filter bson.M) {
	filter[c.field] = bson.M{"$regex": regexp.QuoteMeta(c.term), "$options": "i"}
}

// ElemMatch applies nested conditions to array elements.
func ElemMatch(field string, conditions ...Condition) Condition {
	return elemMatchCondition{field: field, conditions: conditions}
}

type elemMatchCondition struct {
	field      string
	conditions []Condition
}

func (c elemMatchCondition) apply(filter bson.M) {
	filter[c.field] = bson.M{"$elemMatch": Filter(c.conditions...)}
}

// Or appends an any-of group. Multiple Or conditions accumulate into the
// same $or list.
func Or(conditions ...Condition) Condition {
	return orCondition{conditions: conditions}
}

type orCondition struct {
	conditions []Condition
}

func (c orCondition) apply(filter bson.M) {
	branches, _ := filter["$or"].([]bson.M)
	for _, condition := range c.conditions {
		branches = append(branches, Filter(condition))
	}
	filter["$or"] = branches
}

// Filter merges conditions into one filter document.
func Filter(conditions ...Condition) bson.M {
	out := bson.M{}
	for _, condition := range conditions {
		if condition == nil {
			continue
		}
		condition.apply(out)
	}
	return out
}

// Pipeline accumulates aggregation stages in insertion order.
type Pipeline struct {
	stages []bson.D
}

func NewPipeline() *Pipeline {
	return &Pipeline{}
}

func (p *Pipeline) Match(filter bson.M) *Pipeline {
	if len(filter) == 0 {
		return p
	}
	p.stages = append(p.stages, bson.D{{Key: "$match", Value: filter}})
	return p
}

// AddScoreField attaches a computed integer field derived from a value map:
// a $switch with one branch per known key and a default for everything else.
// Branches are emitted in ascending key order so the stage is deterministic
// regardless of map iteration.
func (p *Pipeline) AddScoreField(name, keyField string, scores map[int64]int, defaultScore int) *Pipeline {
	keys := make([]int64, 0, len(scores))
	for key := range scores {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	branches := make([]bson.M, 0, len(keys))
	for _, key := range keys {
		branches = append(branches, bson.M{
			"case": bson.M{"$eq": bson.A{"$" + keyField, key}},
			"then": scores[key],
		})
	}

	var expr any
	if len(branches) == 0 {
		expr = defaultScore
	} else {
		expr = bson.M{"$switch": bson.M{"branches": branches, "default": defaultScore}}
	}

	p.stages = append(p.stages, bson.D{{Key: "$addFields", Value: bson.M{name: expr}}})
	return p
}

func (p *Pipeline) Sort(fields bson.D) *Pipeline {
	if len(fields) == 0 {
		return p
	}
	p.stages = append(p.stages, bson.D{{Key: "$sort", Value: fields}})
	return p
}

func (p *Pipeline) Skip(n int64) *Pipeline {
	if n > 0 {
		p.stages = append(p.stages, bson.D{{Key: "$skip", Value: n}})
	}
	return p
}

func (p *Pipeline) Limit(n int64) *Pipeline {
	if n > 0 {
		p.stages = append(p.stages, bson.D{{Key: "$limit", Value: n}})
	}
	return p
}

func (p *Pipeline) Build() []bson.D {
	return p.stages
}
