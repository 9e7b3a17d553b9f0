package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rihla/customer-queries/internal/model"
)

func fixtureQueries() []model.CustomerQuery {
	return []model.CustomerQuery{
		{
			ID:            "0a51b951-bab1-4e49-b831-3b7916e125ab",
			Name:          "Ayesha Khan",
			Number:        "03001234567",
			Email:         "ayesha@somemail.com",
			City:          "Lahore",
			QueryStatus:   model.QueryStatusInterested,
			QuotationSend: model.QuotationSendChat,
			Query:         "Honeymoon trip to Hunza",
			Remarks:       "call back on weekend",
			CreatedBy:     "Bilal Ahmed",
			CreatedAt:     time.Date(2024, time.December, 1, 14, 30, 0, 0, time.UTC),
		},
		{
			ID:            "3f3a2b72-5a68-4f10-9f3b-5d819ca41e29",
			Name:          "Daniyal Sheikh",
			Number:        "03217654321",
			Email:         "daniyal@othermail.com",
			City:          "Karachi",
			QueryStatus:   model.QueryStatusNotRespond,
			QuotationSend: model.QuotationSendNo,
			Query:         "Family tour to Skardu",
			Remarks:       "",
			CreatedBy:     "Bilal Ahmed",
			CreatedAt:     time.Date(2025, time.January, 2, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:            "c8e1d951-83f5-4a32-9f0a-9a33a894b1d0",
			Name:          "ayan malik",
			Number:        "03451112233",
			Email:         "ayan@somemail.com",
			City:          "Islamabad",
			QueryStatus:   model.QueryStatusAlreadyBooked,
			QuotationSend: model.QuotationSendEmail,
			Query:         "Corporate retreat",
			Remarks:       "already booked elsewhere",
			CreatedBy:     "Sana Tariq",
			CreatedAt:     time.Date(2025, time.March, 15, 18, 45, 10, 0, time.UTC),
		},
	}
}

func TestFilter(t *testing.T) {
	queries := fixtureQueries()

	tests := []struct {
		name     string
		term     string
		expected []string
	}{
		{name: "empty term matches everything", term: "", expected: []string{"Ayesha Khan", "Daniyal Sheikh", "ayan malik"}},
		{name: "by name case-insensitive", term: "AYESHA", expected: []string{"Ayesha Khan"}},
		{name: "by number substring", term: "7654", expected: []string{"Daniyal Sheikh"}},
		{name: "by email domain", term: "somemail", expected: []string{"Ayesha Khan", "ayan malik"}},
		{name: "by city", term: "karachi", expected: []string{"Daniyal Sheikh"}},
		{name: "by query status", term: "already booked", expected: []string{"ayan malik"}},
		{name: "by remarks", term: "weekend", expected: []string{"Ayesha Khan"}},
		{name: "by quotation send", term: "send over chat", expected: []string{"Ayesha Khan"}},
		{name: "by created by", term: "bilal", expected: []string{"Ayesha Khan", "Daniyal Sheikh"}},
		{name: "by rendered created at", term: "3/15/2025", expected: []string{"ayan malik"}},
		{name: "query text is not searchable", term: "hunza", expected: []string{}},
		{name: "no match", term: "multan", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := Filter(queries, tt.term)

			names := make([]string, 0, len(filtered))
			for i := range filtered {
				names = append(names, filtered[i].Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestFilterIdempotent(t *testing.T) {
	queries := fixtureQueries()

	once := Filter(queries, "bilal")
	twice := Filter(once, "bilal")
	assert.Equal(t, once, twice, "filtering an already-filtered set by the same term must not change it")
}

func TestFilterLeavesInputUntouched(t *testing.T) {
	queries := fixtureQueries()
	Filter(queries, "karachi")
	assert.Equal(t, fixtureQueries(), queries)
}

func TestSortToggle(t *testing.T) {
	queries := fixtureQueries()

	asc := Sort(queries, KeyName, Ascending)
	desc := Sort(asc, KeyName, Descending)
	ascAgain := Sort(desc, KeyName, Ascending)

	require.Len(t, asc, 3)
	assert.Equal(t, "ayan malik", asc[0].Name, "comparison must be on lowercased values")
	assert.Equal(t, "Ayesha Khan", asc[1].Name)
	assert.Equal(t, "Daniyal Sheikh", asc[2].Name)

	assert.Equal(t, asc, ascAgain, "sorting twice by the same column must return to the first ascending order")

	assert.Equal(t, "Daniyal Sheikh", desc[0].Name)
}

func TestSortStable(t *testing.T) {
	queries := fixtureQueries()

	// two records share createdBy; their relative order must survive sorting by it
	sorted := Sort(queries, KeyCreatedBy, Ascending)

	require.Len(t, sorted, 3)
	assert.Equal(t, "Ayesha Khan", sorted[0].Name)
	assert.Equal(t, "Daniyal Sheikh", sorted[1].Name)
	assert.Equal(t, "ayan malik", sorted[2].Name)
}

func TestSortCreatedAtComparesRenderedString(t *testing.T) {
	queries := fixtureQueries()

	// "1/2/2025, ..." < "12/1/2024, ..." lexicographically even though it is
	// chronologically later - the column orders by display text
	sorted := Sort(queries, KeyCreatedAt, Ascending)

	require.Len(t, sorted, 3)
	assert.Equal(t, "Daniyal Sheikh", sorted[0].Name)
	assert.Equal(t, "Ayesha Khan", sorted[1].Name)
	assert.Equal(t, "ayan malik", sorted[2].Name)
}

func TestSortUnknownKeyKeepsOrder(t *testing.T) {
	queries := fixtureQueries()

	sorted := Sort(queries, "", Ascending)
	assert.Equal(t, queries, sorted)
}

func TestView(t *testing.T) {
	queries := fixtureQueries()

	view := View(queries, Params{Search: "bilal", SortBy: KeyName, Order: Descending})

	require.Len(t, view, 2)
	assert.Equal(t, "Daniyal Sheikh", view[0].Name)
	assert.Equal(t, "Ayesha Khan", view[1].Name)
}
