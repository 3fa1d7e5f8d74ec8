package listing

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Query parameter names shared by the browser URL and the API request.
const (
	ParamPage      = "page"
	ParamPerPage   = "per_page"
	ParamSearch    = "q"
	ParamSortBy    = "sort_by"
	ParamSortOrder = "sort_order"
)

// State is the URL-synchronised state of a list screen.
type State struct {
	Page      int
	PerPage   int
	Search    string
	SortBy    string
	SortOrder string
	Filters   map[string]string

	schema Schema
}

// Parse reads list state from a query string. Anything the schema does not
// allow (unknown sort column, filter value outside its options, odd page size)
// falls back to the schema defaults.
func Parse(q url.Values, s Schema) State {
	st := State{
		Page:      1,
		PerPage:   s.perPage(),
		SortBy:    s.DefaultSort,
		SortOrder: s.order(),
		Filters:   map[string]string{},
		schema:    s,
	}

	if p, err := strconv.Atoi(q.Get(ParamPage)); err == nil && p > 0 {
		st.Page = p
	}
	if pp, err := strconv.Atoi(q.Get(ParamPerPage)); err == nil && validPerPage(pp) {
		st.PerPage = pp
	}
	st.Search = strings.TrimSpace(q.Get(ParamSearch))
	if sb := q.Get(ParamSortBy); s.sortable(sb) {
		st.SortBy = sb
	}
	switch q.Get(ParamSortOrder) {
	case OrderAsc:
		st.SortOrder = OrderAsc
	case OrderDesc:
		st.SortOrder = OrderDesc
	}
	for _, f := range s.Filters {
		if v := q.Get(f.Key); v != "" && f.Allows(v) {
			st.Filters[f.Key] = v
		}
	}
	return st
}

// Schema returns the schema the state was parsed against.
func (st State) Schema() Schema { return st.schema }

// Params derives the API request parameters.
func (st State) Params() url.Values {
	v := url.Values{}
	v.Set(ParamPage, strconv.Itoa(st.Page))
	v.Set(ParamPerPage, strconv.Itoa(st.PerPage))
	if st.Search != "" {
		v.Set(ParamSearch, st.Search)
	}
	if st.SortBy != "" {
		v.Set(ParamSortBy, st.SortBy)
		v.Set(ParamSortOrder, st.SortOrder)
	}
	for k, val := range st.Filters {
		v.Set(k, val)
	}
	return v
}

// Query encodes the state for the browser URL, omitting default values.
func (st State) Query() url.Values {
	v := url.Values{}
	if st.Page > 1 {
		v.Set(ParamPage, strconv.Itoa(st.Page))
	}
	if st.PerPage != st.schema.perPage() {
		v.Set(ParamPerPage, strconv.Itoa(st.PerPage))
	}
	if st.Search != "" {
		v.Set(ParamSearch, st.Search)
	}
	if st.SortBy != st.schema.DefaultSort || st.SortOrder != st.schema.order() {
		v.Set(ParamSortBy, st.SortBy)
		v.Set(ParamSortOrder, st.SortOrder)
	}
	for k, val := range st.Filters {
		v.Set(k, val)
	}
	return v
}

// Encode is Query().Encode(), handy in templates.
func (st State) Encode() string { return st.Query().Encode() }

// WithPage returns a copy on page n.
func (st State) WithPage(n int) State {
	out := st.clone()
	if n < 1 {
		n = 1
	}
	out.Page = n
	return out
}

// WithSort returns a copy sorted by key. Sorting by the current column flips
// the order; a new column starts ascending. Paging restarts at 1.
func (st State) WithSort(key string) State {
	out := st.clone()
	if !st.schema.sortable(key) {
		return out
	}
	if st.SortBy == key {
		if st.SortOrder == OrderAsc {
			out.SortOrder = OrderDesc
		} else {
			out.SortOrder = OrderAsc
		}
	} else {
		out.SortBy = key
		out.SortOrder = OrderAsc
	}
	out.Page = 1
	return out
}

// WithFilter returns a copy with filter key set to value ("" clears it).
// Paging restarts at 1.
func (st State) WithFilter(key, value string) State {
	out := st.clone()
	f, ok := st.schema.filter(key)
	if !ok {
		return out
	}
	if value == "" {
		delete(out.Filters, key)
	} else if f.Allows(value) {
		out.Filters[key] = value
	}
	out.Page = 1
	return out
}

// Filtered reports whether any search or filter narrows the list.
func (st State) Filtered() bool {
	return st.Search != "" || len(st.Filters) > 0
}

// FilterKeys returns the active filter keys in a stable order.
func (st State) FilterKeys() []string {
	keys := make([]string, 0, len(st.Filters))
	for k := range st.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (st State) clone() State {
	out := st
	out.Filters = make(map[string]string, len(st.Filters))
	for k, v := range st.Filters {
		out.Filters[k] = v
	}
	return out
}
