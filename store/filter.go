package store

// All selects every value on a filter axis.
const All = "all"

// Filter is the active sector/type/search selection. Every axis accepts
// any value, including ones matching zero signals; there are no invalid
// transitions. The zero value is not useful — use DefaultFilter.
type Filter struct {
	Sector string
	Type   string
	Search string
}

// DefaultFilter is the startup state: everything visible, no search term.
func DefaultFilter() Filter {
	return Filter{Sector: All, Type: All}
}

// WithSector overwrites the sector axis. Selecting All is idempotent.
func (f Filter) WithSector(sector string) Filter {
	f.Sector = sector
	return f
}

// WithType overwrites the type axis.
func (f Filter) WithType(typ string) Filter {
	f.Type = typ
	return f
}

// WithSearch overwrites the search term.
func (f Filter) WithSearch(term string) Filter {
	f.Search = term
	return f
}

// AllSectors reports whether the sector axis is unconstrained.
func (f Filter) AllSectors() bool { return f.Sector == All || f.Sector == "" }

// AllTypes reports whether the type axis is unconstrained.
func (f Filter) AllTypes() bool { return f.Type == All || f.Type == "" }
