package query

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

type BanStatus string

const (
	BanStatusAll       BanStatus = "all"
	BanStatusBanned    BanStatus = "banned"
	BanStatusNotBanned BanStatus = "notBanned"
)

// ParseBanStatus returns BanStatusAll for anything it does not recognise.
func ParseBanStatus(s string) BanStatus {
	switch BanStatus(s) {
	case BanStatusBanned:
		return BanStatusBanned
	case BanStatusNotBanned:
		return BanStatusNotBanned
	default:
		return BanStatusAll
	}
}

// ParseSortDirection defaults to descending.
func ParseSortDirection(s string) SortDirection {
	if strings.EqualFold(s, string(SortAsc)) {
		return SortAsc
	}
	return SortDesc
}

// Params are the list query parameters shared by every repository.
type Params struct {
	SearchNameTerm string
	SortBy         string
	SortDirection  SortDirection
	PageNumber     int
	PageSize       int
	BanStatus      BanStatus
}

// Normalize fills missing values: page 1, the given default page size capped at maxPageSize,
// sort by createdAt descending, ban status all.
func (p Params) Normalize(defaultPageSize, maxPageSize int) Params {
	if p.PageNumber < 1 {
		p.PageNumber = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultPageSize
	}
	if maxPageSize > 0 && p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
	if p.SortBy == "" {
		p.SortBy = DefaultSortField
	}
	if p.SortDirection != SortAsc {
		p.SortDirection = SortDesc
	}
	if p.BanStatus == "" {
		p.BanStatus = BanStatusAll
	}
	return p
}

func (p Params) Skip() int64  { return Skip(p.PageNumber, p.PageSize) }
func (p Params) Limit() int64 { return int64(p.PageSize) }

// DefaultSortField is the api-level name every entity can be sorted by.
const DefaultSortField = "createdAt"

// SortFields maps api-level sort names to stored field names.
// Only names present here are ever sent to the database.
type SortFields map[string]string

// Field returns the stored field for name, falling back to created_at.
func (f SortFields) Field(name string) string {
	if v, ok := f[name]; ok {
		return v
	}
	if v, ok := f[DefaultSortField]; ok {
		return v
	}
	return "created_at"
}

// Sort builds the sort document for p. The id tie-breaker keeps pages stable.
func (p Params) Sort(fields SortFields) bson.D {
	dir := -1
	if p.SortDirection == SortAsc {
		dir = 1
	}
	field := fields.Field(p.SortBy)
	sort := bson.D{{Key: field, Value: dir}}
	if field != "id" {
		sort = append(sort, bson.E{Key: "id", Value: dir})
	}
	return sort
}
