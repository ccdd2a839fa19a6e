package filter

import (
	"strconv"
	"strings"
	"time"
)

// ---------------------------------------------------------------------------
// Text
// ---------------------------------------------------------------------------

// TextFilter matches a case-insensitive substring against one column, or
// against several columns at once in OR mode.
type TextFilter struct {
	name        string
	label       string
	placeholder string
	columns     []string
	value       string
	bound       bool
}

func Text(name, label, column string) *TextFilter {
	return &TextFilter{name: name, label: label, columns: []string{column}}
}

// Across switches the filter to multi-column OR mode: a row matches when any
// of the columns contains the substring.
func (f *TextFilter) Across(columns ...string) *TextFilter {
	f.columns = columns
	return f
}

func (f *TextFilter) Placeholder(s string) *TextFilter {
	f.placeholder = s
	return f
}

func (f *TextFilter) Name() string { return f.name }

func (f *TextFilter) Bind(raw string) {
	f.value = raw
	f.bound = raw != ""
}

func (f *TextFilter) IsBound() bool { return f.bound }

func (f *TextFilter) Condition() (Condition, bool) {
	if !f.bound {
		return Condition{}, false
	}

	pattern := "%" + f.value + "%"
	if len(f.columns) == 1 {
		return Condition{Query: f.columns[0] + " ILIKE ?", Args: []any{pattern}}, true
	}

	parts := make([]string, len(f.columns))
	args := make([]any, len(f.columns))
	for i, column := range f.columns {
		parts[i] = column + " ILIKE ?"
		args[i] = pattern
	}
	return Condition{Query: "(" + strings.Join(parts, " OR ") + ")", Args: args}, true
}

func (f *TextFilter) Context() FieldContext {
	return FieldContext{
		Name:        f.name,
		Label:       f.label,
		Kind:        "text",
		Value:       f.value,
		Placeholder: f.placeholder,
	}
}

// ---------------------------------------------------------------------------
// Choice
// ---------------------------------------------------------------------------

// ChoiceFilter matches one column against a closed set of options. A value
// outside the option set unbinds the filter.
type ChoiceFilter struct {
	name    string
	label   string
	column  string
	options []Option
	value   string
	bound   bool
}

func Choice(name, label, column string, options []Option) *ChoiceFilter {
	return &ChoiceFilter{name: name, label: label, column: column, options: options}
}

func (f *ChoiceFilter) Name() string { return f.name }

func (f *ChoiceFilter) Bind(raw string) {
	f.value = ""
	f.bound = false
	if raw == "" {
		return
	}
	for _, opt := range f.options {
		if opt.Value == raw {
			f.value = raw
			f.bound = true
			return
		}
	}
}

func (f *ChoiceFilter) IsBound() bool { return f.bound }

func (f *ChoiceFilter) Condition() (Condition, bool) {
	if !f.bound {
		return Condition{}, false
	}
	return Condition{Query: f.column + " = ?", Args: []any{f.value}}, true
}

func (f *ChoiceFilter) Context() FieldContext {
	return FieldContext{
		Name:    f.name,
		Label:   f.label,
		Kind:    "select",
		Value:   f.value,
		Options: f.options,
	}
}

// ---------------------------------------------------------------------------
// Boolean
// ---------------------------------------------------------------------------

// BooleanFilter is tri-state: true, false, or unset (show everything).
type BooleanFilter struct {
	name   string
	label  string
	column string
	value  bool
	bound  bool
}

func Boolean(name, label, column string) *BooleanFilter {
	return &BooleanFilter{name: name, label: label, column: column}
}

func (f *BooleanFilter) Name() string { return f.name }

func (f *BooleanFilter) Bind(raw string) {
	f.bound = false
	switch strings.ToLower(raw) {
	case "true", "1":
		f.value = true
		f.bound = true
	case "false", "0":
		f.value = false
		f.bound = true
	}
}

func (f *BooleanFilter) IsBound() bool { return f.bound }

func (f *BooleanFilter) Condition() (Condition, bool) {
	if !f.bound {
		return Condition{}, false
	}
	return Condition{Query: f.column + " = ?", Args: []any{f.value}}, true
}

func (f *BooleanFilter) Context() FieldContext {
	value := ""
	if f.bound {
		value = strconv.FormatBool(f.value)
	}
	return FieldContext{Name: f.name, Label: f.label, Kind: "checkbox", Value: value}
}

// ---------------------------------------------------------------------------
// Date
// ---------------------------------------------------------------------------

// DateFilter parses an ISO-8601 date and compares the column with the
// configured operator. Unparsable input unbinds the filter.
type DateFilter struct {
	name   string
	label  string
	column string
	op     Op
	value  time.Time
	bound  bool
}

func Date(name, label, column string, op Op) *DateFilter {
	return &DateFilter{name: name, label: label, column: column, op: op}
}

func (f *DateFilter) Name() string { return f.name }

func (f *DateFilter) Bind(raw string) {
	f.bound = false
	if raw == "" {
		return
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return
	}
	f.value = parsed
	f.bound = true
}

func (f *DateFilter) IsBound() bool { return f.bound }

func (f *DateFilter) Condition() (Condition, bool) {
	if !f.bound {
		return Condition{}, false
	}
	return Condition{Query: f.op.sql(f.column), Args: []any{f.value}}, true
}

func (f *DateFilter) Context() FieldContext {
	value := ""
	if f.bound {
		value = f.value.Format("2006-01-02")
	}
	return FieldContext{Name: f.name, Label: f.label, Kind: "date", Value: value}
}

// ---------------------------------------------------------------------------
// Number
// ---------------------------------------------------------------------------

// NumberFilter parses a float and compares with the configured operator.
// Min/max bounds are advisory UI metadata, not enforced at bind time.
type NumberFilter struct {
	name   string
	label  string
	column string
	op     Op
	min    *float64
	max    *float64
	value  float64
	bound  bool
}

func Number(name, label, column string, op Op) *NumberFilter {
	return &NumberFilter{name: name, label: label, column: column, op: op}
}

func (f *NumberFilter) Bounds(min, max float64) *NumberFilter {
	f.min = &min
	f.max = &max
	return f
}

func (f *NumberFilter) Name() string { return f.name }

func (f *NumberFilter) Bind(raw string) {
	f.bound = false
	if raw == "" {
		return
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return
	}
	f.value = parsed
	f.bound = true
}

func (f *NumberFilter) IsBound() bool { return f.bound }

func (f *NumberFilter) Condition() (Condition, bool) {
	if !f.bound {
		return Condition{}, false
	}
	return Condition{Query: f.op.sql(f.column), Args: []any{f.value}}, true
}

func (f *NumberFilter) Context() FieldContext {
	value := ""
	if f.bound {
		value = strconv.FormatFloat(f.value, 'f', -1, 64)
	}
	return FieldContext{
		Name:  f.name,
		Label: f.label,
		Kind:  "number",
		Value: value,
		Min:   f.min,
		Max:   f.max,
	}
}

// ---------------------------------------------------------------------------
// NullCheck
// ---------------------------------------------------------------------------

// NullCheckFilter maps "yes"/"no" to an IS NOT NULL / IS NULL predicate.
// Anything else unbinds it. Used for presence filters like "has manager".
type NullCheckFilter struct {
	name    string
	label   string
	column  string
	present bool
	bound   bool
}

func NullCheck(name, label, column string) *NullCheckFilter {
	return &NullCheckFilter{name: name, label: label, column: column}
}

func (f *NullCheckFilter) Name() string { return f.name }

func (f *NullCheckFilter) Bind(raw string) {
	f.bound = false
	switch strings.ToLower(raw) {
	case "yes":
		f.present = true
		f.bound = true
	case "no":
		f.present = false
		f.bound = true
	}
}

func (f *NullCheckFilter) IsBound() bool { return f.bound }

func (f *NullCheckFilter) Condition() (Condition, bool) {
	if !f.bound {
		return Condition{}, false
	}
	if f.present {
		return Condition{Query: f.column + " IS NOT NULL"}, true
	}
	return Condition{Query: f.column + " IS NULL"}, true
}

func (f *NullCheckFilter) Context() FieldContext {
	value := ""
	if f.bound {
		if f.present {
			value = "yes"
		} else {
			value = "no"
		}
	}
	return FieldContext{
		Name:    f.name,
		Label:   f.label,
		Kind:    "select",
		Value:   value,
		Options: []Option{{Value: "yes", Label: "Yes"}, {Value: "no", Label: "No"}},
	}
}

// ---------------------------------------------------------------------------
// Custom
// ---------------------------------------------------------------------------

// CustomFilter is the escape hatch for predicates that do not fit the uniform
// kinds. BindFunc reports whether the raw value binds; CondFunc builds the
// condition from the bound raw value.
type CustomFilter struct {
	name     string
	label    string
	kind     string
	bindFunc func(raw string) bool
	condFunc func(raw string) Condition
	value    string
	bound    bool
}

func Custom(name, label, kind string, bind func(raw string) bool, cond func(raw string) Condition) *CustomFilter {
	return &CustomFilter{name: name, label: label, kind: kind, bindFunc: bind, condFunc: cond}
}

func (f *CustomFilter) Name() string { return f.name }

func (f *CustomFilter) Bind(raw string) {
	f.value = raw
	f.bound = raw != "" && f.bindFunc(raw)
}

func (f *CustomFilter) IsBound() bool { return f.bound }

func (f *CustomFilter) Condition() (Condition, bool) {
	if !f.bound {
		return Condition{}, false
	}
	return f.condFunc(f.value), true
}

func (f *CustomFilter) Context() FieldContext {
	value := ""
	if f.bound {
		value = f.value
	}
	return FieldContext{Name: f.name, Label: f.label, Kind: f.kind, Value: value}
}
