// Package filter narrows a fetched collection down to the visible rows.
// Each filter's current value is a tagged variant; the engine dispatches
// on the tag instead of sniffing dynamic types at every call site.
package filter

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind discriminates the filter value variants.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBoolean
	KindSelect
	KindDateRange
)

// Option is one selectable choice for a select-kind filter.
type Option struct {
	Value string
	Label string
}

// Definition describes one filter of a view: what it is called, how it
// matches, and how to read the field it matches against.
type Definition[T any] struct {
	Key     string
	Title   string
	Kind    Kind
	Options []Option
	// Value extracts the field this filter compares against.
	Value func(T) any
}

// Value is the current, possibly unset, value of one filter. An inactive
// value never excludes a row.
type Value struct {
	kind   Kind
	active bool

	str    string
	num    float64
	truth  bool
	choice string
	from   time.Time
	to     time.Time
}

// String builds a substring filter value. The empty string is inactive.
func String(s string) Value {
	return Value{kind: KindString, active: s != "", str: s}
}

// Number builds an exact-equality numeric filter value.
func Number(n float64) Value {
	return Value{kind: KindNumber, active: true, num: n}
}

// Boolean builds an exact-equality boolean filter value.
func Boolean(b bool) Value {
	return Value{kind: KindBoolean, active: true, truth: b}
}

// Select builds a select filter value. "all" and "" are the inactive
// representations.
func Select(choice string) Value {
	return Value{kind: KindSelect, active: choice != "" && choice != "all", choice: choice}
}

// DateRange builds an inclusive date-range filter value. A zero time on
// either side leaves that bound open; both zero is inactive.
func DateRange(from, to time.Time) Value {
	return Value{kind: KindDateRange, active: !from.IsZero() || !to.IsZero(), from: from, to: to}
}

// Unset is the inactive value for any kind.
func Unset() Value {
	return Value{}
}

// Active reports whether this value excludes anything at all.
func (v Value) Active() bool {
	return v.active
}

// Values maps filter key to current value. Missing keys are inactive.
type Values map[string]Value

// Cleared returns the bulk-reset state for defs: "all" for select-kind
// filters, unset for everything else.
func Cleared[T any](defs []Definition[T]) Values {
	out := make(Values, len(defs))
	for _, d := range defs {
		if d.Kind == KindSelect {
			out[d.Key] = Select("all")
		} else {
			out[d.Key] = Unset()
		}
	}
	return out
}

// Apply returns the rows where every active filter matches. Filters are
// ANDed; there is no OR.
func Apply[T any](rows []T, defs []Definition[T], values Values) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if matches(row, defs, values) {
			out = append(out, row)
		}
	}
	return out
}

func matches[T any](row T, defs []Definition[T], values Values) bool {
	for _, d := range defs {
		v, ok := values[d.Key]
		if !ok || !v.active {
			continue
		}
		if !matchOne(d.Value(row), v) {
			return false
		}
	}
	return true
}

func matchOne(field any, v Value) bool {
	switch v.kind {
	case KindString:
		return strings.Contains(strings.ToLower(stringify(field)), strings.ToLower(v.str))
	case KindNumber:
		n, ok := numeric(field)
		return ok && n == v.num
	case KindBoolean:
		b, ok := field.(bool)
		return ok && b == v.truth
	case KindSelect:
		return stringify(field) == v.choice
	case KindDateRange:
		t, ok := timestamp(field)
		if !ok {
			return false
		}
		if !v.from.IsZero() && t.Before(v.from) {
			return false
		}
		if !v.to.IsZero() && t.After(v.to) {
			return false
		}
		return true
	}
	return true
}

func stringify(field any) string {
	if field == nil {
		return ""
	}
	return fmt.Sprint(field)
}

func numeric(field any) (float64, bool) {
	switch n := field.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

// timestamp accepts time.Time fields and the date strings the API serves.
func timestamp(field any) (time.Time, bool) {
	switch t := field.(type) {
	case time.Time:
		return t, !t.IsZero()
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}
