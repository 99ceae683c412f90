// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"reflect"
	"unicode/utf8"
)

// RuleValidator evaluates field values against named rules and collects
// human-readable failures in an ordered log.
//
// A RuleValidator is created for one validation pass and discarded
// afterwards. It is not safe for concurrent use.
type RuleValidator struct {
	errors  []string
	counter Counter
}

// New constructs a RuleValidator with an empty error log.
func New(opts ...Option) *RuleValidator {
	v := &RuleValidator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Check validates value against the rule called name.
//
// Checks run in the order required, min, max, type. An empty optional
// value passes without further checks; an empty required value records
// only the required message. Failures are appended to the error log and
// are never returned.
//
// The returned error is non-nil only when name is not a registered rule;
// it wraps [ErrUnknownRule] and the log is left untouched.
func (v *RuleValidator) Check(name string, value any, opts ...FieldOption) error {
	r, err := lookupRule(name)
	if err != nil {
		return err
	}

	f := newField(opts)

	if isEmpty(value) {
		if f.required {
			v.add(render(MsgRequired, f.label))
		}
		return nil
	}

	if f.min != nil {
		v.checkMin(r, value, f)
	}
	if f.max != nil {
		v.checkMax(r, value, f)
	}

	switch r.kind {
	case predicateRule:
		if !r.predicate(value) {
			v.add(render(r.name, f.label))
		}
	case patternRule:
		if !r.match(value) {
			v.add(render(r.name, f.label))
		}
	}

	return nil
}

func (v *RuleValidator) checkMin(r rule, value any, f field) {
	bound := *f.min

	if r.kind == predicateRule {
		// a non-numeric value is reported by the type check
		if n, ok := toFloat(value); ok && n < bound {
			v.add(render(MsgMin, f.label, formatBound(bound)))
		}
		return
	}

	if float64(utf8.RuneCountInString(stringOf(value))) < bound {
		v.add(render(MsgMinString, f.label, formatBound(bound)))
	}
}

func (v *RuleValidator) checkMax(r rule, value any, f field) {
	bound := *f.max

	if r.kind == predicateRule {
		if n, ok := toFloat(value); ok && n > bound {
			v.add(render(MsgMax, f.label, formatBound(bound)))
		}
		return
	}

	if float64(utf8.RuneCountInString(stringOf(value))) > bound {
		v.add(render(MsgMaxString, f.label, formatBound(bound)))
	}
}

// Pair is a value together with the label of the field it came from.
type Pair struct {
	Value any
	Label string
}

// Compare reports whether both values are strictly equal: same dynamic
// type and same value, without any conversion. On mismatch the compare
// message naming both labels is appended.
func (v *RuleValidator) Compare(a, b Pair) bool {
	if strictEqual(a.Value, b.Value) {
		return true
	}

	v.add(render(MsgCompare, a.Label, b.Label))
	return false
}

// Unique reports whether no row in table has column equal to value.
// When a row exists, the unique message is appended and false is
// returned.
//
// Errors from the [Counter] are returned as-is and never recorded in the
// log. The query runs regardless of earlier failures; callers decide
// whether to skip it.
func (v *RuleValidator) Unique(ctx context.Context, value any, label, table, column string) (bool, error) {
	if v.counter == nil {
		return false, ErrNoCounter
	}

	count, err := v.counter.CountByColumn(ctx, table, column, value)
	if err != nil {
		return false, fmt.Errorf("unique check on %s.%s: %w", table, column, err)
	}

	if count >= 1 {
		v.add(render(MsgUnique, label))
		return false, nil
	}

	return true, nil
}

// HasErrors reports whether any check has failed so far.
func (v *RuleValidator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns a copy of the error log in the order failures occurred.
func (v *RuleValidator) Errors() []string {
	return append([]string(nil), v.errors...)
}

// Err returns the log as a *ValidationError, or nil when no check failed.
func (v *RuleValidator) Err() error {
	if !v.HasErrors() {
		return nil
	}
	return NewValidationError(v.errors)
}

func (v *RuleValidator) add(msg string) {
	v.errors = append(v.errors, msg)
}

func strictEqual(a, b any) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta == nil {
		return true
	}
	if ta.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
