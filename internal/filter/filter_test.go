package filter

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextFilter(t *testing.T) {
	t.Run("single column", func(t *testing.T) {
		f := Text("search", "Search", "name")
		f.Bind("clinic")

		cond, ok := f.Condition()
		require.True(t, ok)
		assert.Equal(t, "name ILIKE ?", cond.Query)
		assert.Equal(t, []any{"%clinic%"}, cond.Args)
	})

	t.Run("empty value is identity", func(t *testing.T) {
		f := Text("search", "Search", "name")
		f.Bind("")

		_, ok := f.Condition()
		assert.False(t, ok)
		assert.False(t, f.IsBound())
	})

	t.Run("multi column OR mode", func(t *testing.T) {
		f := Text("search", "Search", "").Across("first_name", "last_name", "email")
		f.Bind("marie")

		cond, ok := f.Condition()
		require.True(t, ok)
		assert.Equal(t, "(first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?)", cond.Query)
		assert.Equal(t, []any{"%marie%", "%marie%", "%marie%"}, cond.Args)
	})
}

func TestChoiceFilter(t *testing.T) {
	options := []Option{{Value: "1", Label: "Emergency"}, {Value: "2", Label: "ICU"}}

	t.Run("valid option binds", func(t *testing.T) {
		f := Choice("department", "Department", "department_id", options)
		f.Bind("2")

		cond, ok := f.Condition()
		require.True(t, ok)
		assert.Equal(t, "department_id = ?", cond.Query)
		assert.Equal(t, []any{"2"}, cond.Args)
	})

	t.Run("value outside option set unbinds", func(t *testing.T) {
		f := Choice("department", "Department", "department_id", options)
		f.Bind("99")
		assert.False(t, f.IsBound())
	})

	t.Run("empty value unbinds", func(t *testing.T) {
		f := Choice("department", "Department", "department_id", options)
		f.Bind("")
		assert.False(t, f.IsBound())
	})
}

func TestBooleanFilter(t *testing.T) {
	tests := []struct {
		raw       string
		wantBound bool
		wantValue bool
	}{
		{"true", true, true},
		{"True", true, true},
		{"1", true, true},
		{"false", true, false},
		{"FALSE", true, false},
		{"0", true, false},
		{"banana", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run("raw="+tt.raw, func(t *testing.T) {
			f := Boolean("is_active", "Active only", "is_active")
			f.Bind(tt.raw)

			assert.Equal(t, tt.wantBound, f.IsBound())
			if tt.wantBound {
				cond, ok := f.Condition()
				require.True(t, ok)
				assert.Equal(t, []any{tt.wantValue}, cond.Args)
			} else {
				_, ok := f.Condition()
				assert.False(t, ok)
			}
		})
	}
}

func TestDateFilter(t *testing.T) {
	t.Run("iso date with gte lookup", func(t *testing.T) {
		f := Date("from", "From", "start_datetime", OpGte)
		f.Bind("2026-03-09")

		cond, ok := f.Condition()
		require.True(t, ok)
		assert.Equal(t, "start_datetime >= ?", cond.Query)
	})

	t.Run("unparsable date unbinds silently", func(t *testing.T) {
		f := Date("from", "From", "start_datetime", OpGte)
		f.Bind("09/03/2026")
		assert.False(t, f.IsBound())
	})
}

func TestNumberFilter(t *testing.T) {
	f := Number("min_rate", "Min rate", "hourly_rate", OpGte).Bounds(0, 500)
	f.Bind("45.5")

	cond, ok := f.Condition()
	require.True(t, ok)
	assert.Equal(t, "hourly_rate >= ?", cond.Query)
	assert.Equal(t, []any{45.5}, cond.Args)

	ctx := f.Context()
	require.NotNil(t, ctx.Min)
	require.NotNil(t, ctx.Max)
	assert.Equal(t, 500.0, *ctx.Max)

	f.Bind("lots")
	assert.False(t, f.IsBound())
}

func TestNullCheckFilter(t *testing.T) {
	t.Run("yes means not null", func(t *testing.T) {
		f := NullCheck("has_manager", "Has manager", "manager_id")
		f.Bind("yes")

		cond, ok := f.Condition()
		require.True(t, ok)
		assert.Equal(t, "manager_id IS NOT NULL", cond.Query)
		assert.Empty(t, cond.Args)
	})

	t.Run("no means null", func(t *testing.T) {
		f := NullCheck("has_manager", "Has manager", "manager_id")
		f.Bind("no")

		cond, ok := f.Condition()
		require.True(t, ok)
		assert.Equal(t, "manager_id IS NULL", cond.Query)
	})

	t.Run("anything else unbinds", func(t *testing.T) {
		f := NullCheck("has_manager", "Has manager", "manager_id")
		f.Bind("maybe")
		assert.False(t, f.IsBound())
	})
}

func TestCustomFilter(t *testing.T) {
	f := Custom("status_group", "Status group", "select",
		func(raw string) bool { return raw == "open" || raw == "closed" },
		func(raw string) Condition {
			if raw == "open" {
				return Condition{Query: "status IN ?", Args: []any{[]string{"draft", "published"}}}
			}
			return Condition{Query: "status IN ?", Args: []any{[]string{"completed", "cancelled"}}}
		})

	f.Bind("open")
	cond, ok := f.Condition()
	require.True(t, ok)
	assert.Equal(t, "status IN ?", cond.Query)

	f.Bind("weird")
	assert.False(t, f.IsBound())
}

func TestSet(t *testing.T) {
	newSet := func() *Set {
		return NewSet(
			Text("search", "Search", "").Across("first_name", "last_name"),
			Choice("position", "Position", "position_id", []Option{{Value: "3", Label: "RN"}}),
			Boolean("is_active", "Active only", "is_active"),
		)
	}

	t.Run("bind and conditions in declaration order", func(t *testing.T) {
		set := newSet().Bind(url.Values{
			"search":    {"anna"},
			"position":  {"3"},
			"is_active": {"true"},
		})

		conds := set.Conditions()
		require.Len(t, conds, 3)
		assert.True(t, strings.HasPrefix(conds[0].Query, "(first_name"))
		assert.Equal(t, "position_id = ?", conds[1].Query)
		assert.Equal(t, "is_active = ?", conds[2].Query)
		assert.True(t, set.IsActive())
	})

	t.Run("garbage input yields inactive identity set", func(t *testing.T) {
		set := newSet().Bind(url.Values{
			"search":    {""},
			"position":  {"not-an-id"},
			"is_active": {"banana"},
		})

		assert.Empty(t, set.Conditions())
		assert.False(t, set.IsActive())
	})

	t.Run("contexts preserve declaration order and bound values", func(t *testing.T) {
		set := newSet().Bind(url.Values{"position": {"3"}})

		contexts := set.Contexts()
		require.Len(t, contexts, 3)
		assert.Equal(t, "search", contexts[0].Name)
		assert.Equal(t, "position", contexts[1].Name)
		assert.Equal(t, "3", contexts[1].Value)
		assert.Equal(t, "is_active", contexts[2].Name)
	})
}
