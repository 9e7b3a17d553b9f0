// Package listing shapes the in-memory snapshot of customer query records
// the way list screens consume it: free-text filtering across all visible
// fields, then column sorting. It never talks to storage - the caller hands
// it the full fetched collection.
package listing

import (
	"sort"
	"strings"

	"github.com/rihla/customer-queries/internal/model"
)

// Direction is a sort direction
type Direction string

const (
	// Ascending sorts smallest value first
	Ascending Direction = "asc"
	// Descending sorts largest value first
	Descending Direction = "desc"
)

// Sortable column keys. They match the json field names of CustomerQuery
const (
	KeyName          = "name"
	KeyNumber        = "number"
	KeyEmail         = "email"
	KeyCity          = "city"
	KeyQueryStatus   = "queryStatus"
	KeyQuotationSend = "quotationSend"
	KeyQuery         = "query"
	KeyRemarks       = "remarks"
	KeyCreatedBy     = "createdBy"
	KeyCreatedAt     = "createdAt"
)

// Params describes the requested view of the snapshot
type Params struct {
	Search string
	SortBy string
	Order  Direction
}

// View filters and then sorts the snapshot according to p.
// The input slice is left untouched
func View(queries []model.CustomerQuery, p Params) []model.CustomerQuery {
	return Sort(Filter(queries, p.Search), p.SortBy, p.Order)
}

// Filter keeps a record iff the case-folded term is a substring of at
// least one of its nine searchable projections: name, number, email, city,
// queryStatus, remarks, quotationSend, createdBy and the rendered createdAt.
// An empty term matches everything
func Filter(queries []model.CustomerQuery, term string) []model.CustomerQuery {
	term = strings.ToLower(term)

	filtered := make([]model.CustomerQuery, 0, len(queries))
	for i := range queries {
		if matches(&queries[i], term) {
			filtered = append(filtered, queries[i])
		}
	}
	return filtered
}

func matches(q *model.CustomerQuery, term string) bool {
	if term == "" {
		return true
	}

	for _, field := range searchProjections(q) {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func searchProjections(q *model.CustomerQuery) []string {
	return []string{
		q.Name,
		q.Number,
		q.Email,
		q.City,
		string(q.QueryStatus),
		q.Remarks,
		string(q.QuotationSend),
		q.CreatedBy,
		q.CreatedAtDisplay(),
	}
}

// Sort orders the records by the lowercased string form of the keyed field.
// Dates take part as their rendered string, not as instants, so the order of
// createdAt is the order of its display text. The sort is stable and returns
// a copy; an unknown or empty key keeps the incoming order
func Sort(queries []model.CustomerQuery, key string, dir Direction) []model.CustomerQuery {
	sorted := make([]model.CustomerQuery, len(queries))
	copy(sorted, queries)

	if key == "" {
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		a := strings.ToLower(sortValue(&sorted[i], key))
		b := strings.ToLower(sortValue(&sorted[j], key))
		if dir == Descending {
			return a > b
		}
		return a < b
	})
	return sorted
}

func sortValue(q *model.CustomerQuery, key string) string {
	switch key {
	case KeyName:
		return q.Name
	case KeyNumber:
		return q.Number
	case KeyEmail:
		return q.Email
	case KeyCity:
		return q.City
	case KeyQueryStatus:
		return string(q.QueryStatus)
	case KeyQuotationSend:
		return string(q.QuotationSend)
	case KeyQuery:
		return q.Query
	case KeyRemarks:
		return q.Remarks
	case KeyCreatedBy:
		return q.CreatedBy
	case KeyCreatedAt:
		return q.CreatedAtDisplay()
	}
	return ""
}
