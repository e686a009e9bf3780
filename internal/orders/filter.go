package orders

import "strings"

// FilterAll matches every value of a status or return filter.
const FilterAll = "all"

type Query struct {
	Search string `json:"search"`
	Status string `json:"status"`
	Return string `json:"return"`
}

// NormalizeQuery maps empty filters to "all". The search term is kept as
// given.
func NormalizeQuery(q Query) Query {
	if q.Status == "" {
		q.Status = FilterAll
	}
	if q.Return == "" {
		q.Return = FilterAll
	}
	return q
}

type Predicate func(View) bool

// MatchSearch is a case-insensitive substring match on order code or
// customer name. An empty term matches everything.
func MatchSearch(term string) Predicate {
	needle := strings.ToLower(term)
	return func(v View) bool {
		if needle == "" {
			return true
		}
		return strings.Contains(strings.ToLower(v.Code), needle) ||
			strings.Contains(strings.ToLower(v.CustomerName), needle)
	}
}

// MatchStatus compares canonical status codes, so synonyms match each other.
func MatchStatus(status string) Predicate {
	return func(v View) bool {
		return status == FilterAll || Canonical(v.Status) == Canonical(status)
	}
}

// MatchReturn compares against the merged return state.
func MatchReturn(ret string) Predicate {
	return func(v View) bool {
		return ret == FilterAll || string(v.Return.State) == ret
	}
}

func All(preds ...Predicate) Predicate {
	return func(v View) bool {
		for _, p := range preds {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Filter keeps the views matching every part of q, in input order. The input
// slice is left untouched.
func Filter(views []View, q Query) []View {
	q = NormalizeQuery(q)
	match := All(MatchSearch(q.Search), MatchStatus(q.Status), MatchReturn(q.Return))

	out := make([]View, 0, len(views))
	for _, v := range views {
		if match(v) {
			out = append(out, v)
		}
	}
	return out
}
