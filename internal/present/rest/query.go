package rest

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/grezzle/goblin-closet/internal/domain"
)

// Default page sizes per resource. Posts paginate shorter because the blog
// index renders full excerpts.
const (
	defaultPostLimit = 10
	defaultListLimit = 20
)

// ParsePostQuery translates query parameters into a post query. Only
// published=true filters; any other value lists everything, which matches
// what the public blog index sends.
func ParsePostQuery(params url.Values) domain.PostQuery {
	q := domain.PostQuery{Page: parsePage(params, defaultPostLimit)}
	if params.Get("published") == "true" {
		published := true
		q.Published = &published
	}
	return q
}

func ParseLoreQuery(params url.Values) domain.LoreQuery {
	q := domain.LoreQuery{
		Category:   enumFilter(params.Get("category"), domain.IsLoreCategory),
		Importance: enumFilter(params.Get("importance"), domain.IsImportance),
		Search:     strings.TrimSpace(params.Get("search")),
		Page:       parsePage(params, defaultListLimit),
	}
	if level, err := strconv.Atoi(params.Get("secretLevel")); err == nil && level > 0 {
		q.MaxSecretLevel = level
	}
	return q
}

func ParseInventoryQuery(params url.Values) domain.InventoryQuery {
	q := domain.InventoryQuery{
		Category: enumFilter(params.Get("category"), domain.IsItemCategory),
		Rarity:   enumFilter(params.Get("rarity"), domain.IsRarity),
		Search:   strings.TrimSpace(params.Get("search")),
		Page:     parsePage(params, defaultListLimit),
	}
	switch params.Get("inStock") {
	case "true":
		inStock := true
		q.InStock = &inStock
	case "false":
		inStock := false
		q.InStock = &inStock
	}
	return q
}

// enumFilter treats empty, "all", and values outside the enumeration as
// "no filter" rather than erroring.
func enumFilter(value string, valid func(string) bool) string {
	if value == "" || value == "all" || !valid(value) {
		return ""
	}
	return value
}

// parsePage applies the 1-based pagination defaults: malformed or
// non-positive numbers silently fall back instead of erroring.
func parsePage(params url.Values, defaultLimit int) domain.PageSpec {
	spec := domain.PageSpec{Page: 1, Limit: defaultLimit}
	if page, err := strconv.Atoi(params.Get("page")); err == nil && page > 0 {
		spec.Page = page
	}
	if limit, err := strconv.Atoi(params.Get("limit")); err == nil && limit > 0 {
		spec.Limit = limit
	}
	return spec
}
