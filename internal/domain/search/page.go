package search

import (
	"strconv"
)

// DefaultLimit is the page size used when the request does not carry one.
const DefaultLimit = 20

// MaxLimit caps the requested page size.
const MaxLimit = 100

// Page is the resolved pagination window.
type Page struct {
	Number int // 1-based page number.
	Limit  int
	Offset int // Zero-based row offset, never negative.
}

// ResolvePage coerces the raw page and limit parameters. Non-numeric input
// defaults rather than errors, and a page below 1 is treated as 1 so the
// offset can never go negative.
func ResolvePage(rawPage, rawLimit string) Page {
	page, err := strconv.Atoi(rawPage)
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(rawLimit)
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Page{
		Number: page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// TotalPages computes the page count for a result total.
func (p Page) TotalPages(total int64) int {
	if total <= 0 {
		return 0
	}

	pages := total / int64(p.Limit)
	if total%int64(p.Limit) != 0 {
		pages++
	}

	return int(pages)
}

// SortKey names a concrete sort target resolved from the requested sort.
type SortKey string

const (
	SortKeyUnitPrice    SortKey = "unit_price"
	SortKeyConstruction SortKey = "construction_status"
	SortKeyCreatedAt    SortKey = "created_at"
)

// Sort is the resolved sort order.
type Sort struct {
	Key  SortKey
	Desc bool
}

// ResolveSort maps (searchType, sortBy, sortDirection) to a concrete sort.
//
// For unit searches "price" sorts by unit price and "completion" by the
// owning project's construction status. For project searches "price" falls
// back to recency: projects carry no scalar price, only a pricing sub-entity
// whose base price is not wired into sort, and that limitation is kept
// deliberately rather than silently fixed. Everything else, including
// "relevance", resolves to creation time, always descending: most recent
// first is the relevance proxy, so the requested direction is honored only on
// the non-default branches.
func ResolveSort(typ Type, sortBy, direction string) Sort {
	desc := direction != "asc"

	switch typ {
	case TypeUnits:
		switch sortBy {
		case "price":
			return Sort{Key: SortKeyUnitPrice, Desc: desc}
		case "completion":
			return Sort{Key: SortKeyConstruction, Desc: desc}
		}
	case TypeProjects:
		if sortBy == "completion" {
			return Sort{Key: SortKeyConstruction, Desc: desc}
		}
	}

	return Sort{Key: SortKeyCreatedAt, Desc: true}
}
