// Package listing holds the state behind every list screen: paging, search,
// sort, filters, row selection and column visibility.
package listing

// PerPageOptions are the page sizes a list accepts.
var PerPageOptions = []int{10, 20, 50, 100}

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Column describes one table column.
type Column struct {
	Key      string
	Label    string
	Sortable bool
	// HiddenByDefault columns are off until the user enables them.
	HiddenByDefault bool
	// Locked columns cannot be hidden.
	Locked bool
}

// Option is one allowed value of a filter.
type Option struct {
	Value string
	Label string
}

// Filter is a select-style filter sent to the API as ?<Key>=<value>.
type Filter struct {
	Key     string
	Label   string
	Options []Option
}

// Allows reports whether v is one of the filter's options.
func (f Filter) Allows(v string) bool {
	for _, o := range f.Options {
		if o.Value == v {
			return true
		}
	}
	return false
}

// Schema is the list-side description of a resource.
type Schema struct {
	Columns        []Column
	Filters        []Filter
	DefaultSort    string
	DefaultOrder   string
	DefaultPerPage int
}

func (s Schema) sortable(key string) bool {
	for _, c := range s.Columns {
		if c.Key == key && c.Sortable {
			return true
		}
	}
	return false
}

func (s Schema) filter(key string) (Filter, bool) {
	for _, f := range s.Filters {
		if f.Key == key {
			return f, true
		}
	}
	return Filter{}, false
}

func (s Schema) perPage() int {
	if validPerPage(s.DefaultPerPage) {
		return s.DefaultPerPage
	}
	return PerPageOptions[0]
}

func (s Schema) order() string {
	if s.DefaultOrder == OrderAsc {
		return OrderAsc
	}
	return OrderDesc
}

func validPerPage(n int) bool {
	for _, v := range PerPageOptions {
		if v == n {
			return true
		}
	}
	return false
}
