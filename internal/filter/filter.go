// Package filter is a declarative list-filtering engine. Callers build an
// ordered Set of typed filters, bind a request's query values to it, and get
// back a gorm scope that narrows the query plus metadata for re-rendering the
// filter form. Unparsable input unsets the filter instead of failing: a bad
// query string must never error out a list page.
package filter

// Option is a single selectable value for a choice filter.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldContext is the UI metadata for one filter: enough for a client to
// render the control and restore its bound value.
type FieldContext struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Kind        string   `json:"kind"`
	Value       string   `json:"value"`
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []Option `json:"options,omitempty"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
}

// Condition is one SQL predicate fragment with its arguments. Conditions from
// different filters are combined with AND; a multi-column text filter ORs its
// columns inside a single condition.
type Condition struct {
	Query string
	Args  []any
}

// Filter is one declared narrowing criterion. Bind coerces the raw request
// value; a value that fails coercion leaves the filter unbound, which means
// "do not filter on this field".
type Filter interface {
	Name() string
	Bind(raw string)
	IsBound() bool
	Condition() (Condition, bool)
	Context() FieldContext
}

// Op selects the comparison used by date and number filters.
type Op string

const (
	OpEq  Op = "eq"
	OpGte Op = "gte"
	OpLte Op = "lte"
)

func (op Op) sql(column string) string {
	switch op {
	case OpGte:
		return column + " >= ?"
	case OpLte:
		return column + " <= ?"
	default:
		return column + " = ?"
	}
}
