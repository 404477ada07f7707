package query

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Field names shared by the filter helpers.
const (
	FieldIsBanned = "is_banned"
)

type predicateKind int

const (
	kindMatchAll predicateKind = iota
	kindEq
	kindContains
	kindNotIn
	kindAnd
	kindOr
)

// Predicate is a small composable filter. The zero value matches everything.
type Predicate struct {
	kind     predicateKind
	field    string
	value    any
	children []Predicate
}

// MatchAll matches every document.
func MatchAll() Predicate { return Predicate{kind: kindMatchAll} }

// Eq matches documents whose field equals value.
func Eq(field string, value any) Predicate {
	return Predicate{kind: kindEq, field: field, value: value}
}

// Contains matches documents whose field contains term, case-insensitively.
// The term is a literal; regex metacharacters are escaped. An empty term matches all.
func Contains(field, term string) Predicate {
	if term == "" {
		return MatchAll()
	}
	return Predicate{kind: kindContains, field: field, value: term}
}

// NotIn matches documents whose field is none of values. No values matches all.
func NotIn(field string, values []string) Predicate {
	if len(values) == 0 {
		return MatchAll()
	}
	return Predicate{kind: kindNotIn, field: field, value: append([]string(nil), values...)}
}

// And matches documents satisfying every child. MatchAll children are dropped.
func And(ps ...Predicate) Predicate {
	kept := make([]Predicate, 0, len(ps))
	for _, p := range ps {
		if p.IsMatchAll() {
			continue
		}
		kept = append(kept, p)
	}
	switch len(kept) {
	case 0:
		return MatchAll()
	case 1:
		return kept[0]
	}
	return Predicate{kind: kindAnd, children: kept}
}

// Or matches documents satisfying at least one child. A MatchAll child makes the whole Or match all.
func Or(ps ...Predicate) Predicate {
	if len(ps) == 0 {
		return MatchAll()
	}
	for _, p := range ps {
		if p.IsMatchAll() {
			return MatchAll()
		}
	}
	if len(ps) == 1 {
		return ps[0]
	}
	return Predicate{kind: kindOr, children: append([]Predicate(nil), ps...)}
}

func (p Predicate) IsMatchAll() bool { return p.kind == kindMatchAll }

// BSON translates the predicate into a mongo filter document.
func (p Predicate) BSON() bson.D {
	switch p.kind {
	case kindEq:
		return bson.D{{Key: p.field, Value: p.value}}
	case kindContains:
		pattern := regexp.QuoteMeta(p.value.(string))
		return bson.D{{Key: p.field, Value: primitive.Regex{Pattern: pattern, Options: "i"}}}
	case kindNotIn:
		return bson.D{{Key: p.field, Value: bson.D{{Key: "$nin", Value: p.value}}}}
	case kindAnd, kindOr:
		op := "$and"
		if p.kind == kindOr {
			op = "$or"
		}
		arr := make(bson.A, 0, len(p.children))
		for _, c := range p.children {
			arr = append(arr, c.BSON())
		}
		return bson.D{{Key: op, Value: arr}}
	default:
		return bson.D{}
	}
}

// OwnerScope restricts to records whose field equals ownerID; empty ownerID matches all.
func OwnerScope(field, ownerID string) Predicate {
	if ownerID == "" {
		return MatchAll()
	}
	return Eq(field, ownerID)
}

// BanStatusFilter maps the admin ban status selector to a predicate.
// BanStatusAll never excludes banned records.
func BanStatusFilter(status BanStatus) Predicate {
	switch status {
	case BanStatusBanned:
		return Eq(FieldIsBanned, true)
	case BanStatusNotBanned:
		return Eq(FieldIsBanned, false)
	default:
		return MatchAll()
	}
}

// Visible is the public read-path gate.
func Visible() Predicate { return Eq(FieldIsBanned, false) }
