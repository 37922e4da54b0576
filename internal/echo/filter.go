package echo

import "echolint/internal/token"

// Filter accepts a candidate token when its value for Field matches any
// of the Includes patterns. An empty Includes list accepts everything.
type Filter struct {
	Field    token.Field
	Includes []Pattern
}

func (f Filter) matches(t token.Token) bool {
	if len(f.Includes) == 0 {
		return true
	}
	value := t.Value(f.Field)
	for _, p := range f.Includes {
		if p.Matches(value) {
			return true
		}
	}
	return false
}

// Include returns the candidates accepted by at least one filter. Filters
// are alternatives (OR); conjunction is deliberately unsupported. The
// center token never appears among the candidates because the window
// excludes distance zero.
func Include(candidates []token.Token, filters []Filter) []token.Token {
	out := make([]token.Token, 0, len(candidates))
	for _, c := range candidates {
		if anyFilter(filters, c) {
			out = append(out, c)
		}
	}
	return out
}

func anyFilter(filters []Filter, t token.Token) bool {
	for _, f := range filters {
		if f.matches(t) {
			return true
		}
	}
	return false
}
