package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePage_Defaults(t *testing.T) {
	page := ResolvePage("", "")

	assert.Equal(t, 1, page.Number)
	assert.Equal(t, DefaultLimit, page.Limit)
	assert.Equal(t, 0, page.Offset)
}

func TestResolvePage_NonNumericInputDefaults(t *testing.T) {
	page := ResolvePage("abc", "xyz")

	assert.Equal(t, 1, page.Number)
	assert.Equal(t, DefaultLimit, page.Limit)
}

func TestResolvePage_OffsetNeverNegative(t *testing.T) {
	page := ResolvePage("-3", "10")

	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 0, page.Offset)
}

func TestResolvePage_Offset(t *testing.T) {
	page := ResolvePage("3", "25")

	assert.Equal(t, 50, page.Offset)
	assert.Equal(t, 25, page.Limit)
}

func TestResolvePage_LimitCapped(t *testing.T) {
	page := ResolvePage("1", "5000")

	assert.Equal(t, MaxLimit, page.Limit)
}

func TestPage_TotalPages(t *testing.T) {
	page := Page{Number: 1, Limit: 20}

	assert.Equal(t, 0, page.TotalPages(0))
	assert.Equal(t, 1, page.TotalPages(1))
	assert.Equal(t, 1, page.TotalPages(20))
	assert.Equal(t, 2, page.TotalPages(21))
	assert.Equal(t, 5, page.TotalPages(100))
}

func TestResolveSort_Units(t *testing.T) {
	assert.Equal(t, Sort{Key: SortKeyUnitPrice, Desc: false}, ResolveSort(TypeUnits, "price", "asc"))
	assert.Equal(t, Sort{Key: SortKeyUnitPrice, Desc: true}, ResolveSort(TypeUnits, "price", "desc"))
	assert.Equal(t, Sort{Key: SortKeyConstruction, Desc: false}, ResolveSort(TypeUnits, "completion", "asc"))

	// Relevance and anything unknown resolve to recency.
	assert.Equal(t, Sort{Key: SortKeyCreatedAt, Desc: true}, ResolveSort(TypeUnits, "relevance", "asc"))
	assert.Equal(t, Sort{Key: SortKeyCreatedAt, Desc: true}, ResolveSort(TypeUnits, "", ""))
}

func TestResolveSort_Projects(t *testing.T) {
	assert.Equal(t, Sort{Key: SortKeyConstruction, Desc: true}, ResolveSort(TypeProjects, "completion", "desc"))

	// Projects carry no scalar price; the price sort keeps its documented
	// fallback to recency.
	assert.Equal(t, Sort{Key: SortKeyCreatedAt, Desc: true}, ResolveSort(TypeProjects, "price", "asc"))
}

func TestResolveSort_DefaultIgnoresDirection(t *testing.T) {
	// Most recent first is the relevance proxy; the default branch is always
	// descending regardless of the requested direction.
	assert.Equal(t, Sort{Key: SortKeyCreatedAt, Desc: true}, ResolveSort(TypeProjects, "", "asc"))
}
