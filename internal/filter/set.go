package filter

import (
	"net/url"

	"gorm.io/gorm"
)

// Set is an ordered collection of filters. Order is the declaration order and
// drives deterministic form rendering; predicate correctness does not depend
// on it since conditions are ANDed. A Set is built fresh per request, bound
// once, and discarded.
type Set struct {
	filters []Filter
}

func NewSet(filters ...Filter) *Set {
	return &Set{filters: filters}
}

// Bind coerces request query values into the filters, in declaration order.
func (s *Set) Bind(values url.Values) *Set {
	for _, f := range s.filters {
		f.Bind(values.Get(f.Name()))
	}
	return s
}

// IsActive reports whether at least one filter bound a usable value.
func (s *Set) IsActive() bool {
	for _, f := range s.filters {
		if f.IsBound() {
			return true
		}
	}
	return false
}

// Conditions returns the predicate fragments of all bound filters.
func (s *Set) Conditions() []Condition {
	var conds []Condition
	for _, f := range s.filters {
		if cond, ok := f.Condition(); ok {
			conds = append(conds, cond)
		}
	}
	return conds
}

// Scope returns a gorm scope applying every bound condition. An empty or
// fully-unbound set yields the identity scope.
func (s *Set) Scope() func(*gorm.DB) *gorm.DB {
	conds := s.Conditions()
	return func(db *gorm.DB) *gorm.DB {
		for _, cond := range conds {
			db = db.Where(cond.Query, cond.Args...)
		}
		return db
	}
}

// Contexts returns the UI metadata for every filter, in declaration order.
func (s *Set) Contexts() []FieldContext {
	contexts := make([]FieldContext, len(s.filters))
	for i, f := range s.filters {
		contexts[i] = f.Context()
	}
	return contexts
}
