// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// stubCounter implements Counter with a fixed answer and records calls.
type stubCounter struct {
	count int64
	err   error

	calls  int
	table  string
	column string
	value  any
}

func (s *stubCounter) CountByColumn(_ context.Context, table, column string, value any) (int64, error) {
	s.calls++
	s.table, s.column, s.value = table, column, value
	return s.count, s.err
}

func checkOne(t *testing.T, rule string, value any, opts ...FieldOption) []string {
	t.Helper()
	v := New()
	require.NoError(t, v.Check(rule, value, opts...))
	return v.Errors()
}

// ---------------------------------------------------------------------------
// Registry
// ---------------------------------------------------------------------------

func TestRegistry_NamesAreDisjoint(t *testing.T) {
	for name := range predicateRules {
		_, dup := patternRules[name]
		assert.Falsef(t, dup, "rule %q registered in both tables", name)
	}
	assert.Len(t, ruleNames(), len(patternRules)+len(predicateRules))
}

func TestRegistry_EveryRuleHasMessage(t *testing.T) {
	for _, name := range ruleNames() {
		_, ok := messages[name]
		assert.Truef(t, ok, "no message for rule %q", name)
	}
	for _, key := range []string{MsgRequired, MsgMin, MsgMinString, MsgMax, MsgMaxString, MsgCompare, MsgUnique} {
		_, ok := messages[key]
		assert.Truef(t, ok, "no message for %q", key)
	}
}

func TestBuildRegistry_DuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		buildRegistry(
			map[string]string{"dup": `x`},
			map[string]func(any) bool{"dup": isNumeric},
		)
	})
}

// ---------------------------------------------------------------------------
// Required gate
// ---------------------------------------------------------------------------

func TestCheck_RequiredGate(t *testing.T) {
	for _, name := range ruleNames() {
		t.Run(name+" required", func(t *testing.T) {
			errs := checkOne(t, name, "", WithLabel("Label"), Required(), Min(3), Max(5))
			require.Len(t, errs, 1)
			assert.Equal(t, "Das Feld Label ist ein Pflichtfeld.", errs[0])
		})

		t.Run(name+" optional", func(t *testing.T) {
			errs := checkOne(t, name, "", WithLabel("Label"), Min(3), Max(5))
			assert.Empty(t, errs)
		})
	}
}

func TestCheck_EmptyValues(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"nil", nil},
		{"empty string", ""},
		{"false", false},
		{"empty slice", []string{}},
		{"nil pointer", (*int)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := checkOne(t, RuleCheckbox, tt.value, WithLabel("AGB"), Required())
			require.Len(t, errs, 1)
			assert.Contains(t, errs[0], "Pflichtfeld")
		})
	}
}

func TestCheck_ZeroIsNotEmpty(t *testing.T) {
	errs := checkOne(t, RuleInt, 0, WithLabel("Anzahl"), Required())
	assert.Empty(t, errs)
}

func TestCheck_DefaultLabel(t *testing.T) {
	errs := checkOne(t, RuleLetters, "", Required())
	require.Len(t, errs, 1)
	assert.Equal(t, "Das Feld Feld ist ein Pflichtfeld.", errs[0])
}

// ---------------------------------------------------------------------------
// Min / max
// ---------------------------------------------------------------------------

func TestCheck_NumericBounds(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  []string
	}{
		{"below min", 3, []string{"Das Feld Age muss mindestens 5 sein."}},
		{"above max", 15, []string{"Das Feld Age darf höchstens 10 sein."}},
		{"in range", 7, nil},
		{"on min", 5, nil},
		{"on max", 10, nil},
		{"numeric string below min", "4", []string{"Das Feld Age muss mindestens 5 sein."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := checkOne(t, RuleNumeric, tt.value, WithLabel("Age"), Min(5), Max(10))
			assert.Equal(t, tt.want, errs)
		})
	}
}

func TestCheck_MinAndMaxAreIndependent(t *testing.T) {
	// an inverted range makes both bounds fail for the same value
	errs := checkOne(t, RuleNumeric, 7, WithLabel("Age"), Min(10), Max(5))
	assert.Equal(t, []string{
		"Das Feld Age muss mindestens 10 sein.",
		"Das Feld Age darf höchstens 5 sein.",
	}, errs)
}

func TestCheck_StringLengthBounds(t *testing.T) {
	t.Run("too short", func(t *testing.T) {
		errs := checkOne(t, RuleLetters, "Al", WithLabel("Name"), Min(3))
		assert.Equal(t, []string{"Das Feld Name muss mindestens 3 Zeichen lang sein."}, errs)
	})

	t.Run("too long", func(t *testing.T) {
		errs := checkOne(t, RuleLetters, "Alexander", WithLabel("Name"), Max(5))
		assert.Equal(t, []string{"Das Feld Name darf höchstens 5 Zeichen lang sein."}, errs)
	})

	t.Run("length counts characters not bytes", func(t *testing.T) {
		errs := checkOne(t, RuleLetters, "Jürgen", WithLabel("Name"), Max(6))
		assert.Empty(t, errs)
	})
}

func TestCheck_FractionalBoundIsRendered(t *testing.T) {
	errs := checkOne(t, RuleNumeric, "0.25", WithLabel("Stunden"), Min(0.5))
	assert.Equal(t, []string{"Das Feld Stunden muss mindestens 0.5 sein."}, errs)
}

// ---------------------------------------------------------------------------
// Type checks
// ---------------------------------------------------------------------------

func TestCheck_PatternRules(t *testing.T) {
	tests := []struct {
		rule  string
		value any
		ok    bool
	}{
		{RuleLetters, "John Doe", true},
		{RuleLetters, "Jörg Müller", true},
		{RuleLetters, "John123", false},
		{RuleLetters, "John\nDoe", false},
		{RuleText, "Hallo, Welt!", true},
		{RuleText, "Raum 12", false},
		{RuleTextNum, "Raum 12 (2. OG)", true},
		{RuleTextNum, "guest@example.com", true},
		{RuleTextNum, "<script>", false},
		{RuleAlphanumeric, "A101", true},
		{RuleAlphanumeric, "A-101", false},
		{RuleAlphanumeric, "A 101", false},
		{RuleCheckbox, "on", true},
		{RuleCheckbox, "ON", true},
		{RuleCheckbox, true, true},
		{RuleCheckbox, "maybe", false},
		{RuleCheckbox, "on please", false},
	}

	for _, tt := range tests {
		t.Run(tt.rule+"/"+stringOf(tt.value), func(t *testing.T) {
			errs := checkOne(t, tt.rule, tt.value, WithLabel("X"))
			if tt.ok {
				assert.Empty(t, errs)
			} else {
				require.Len(t, errs, 1)
				assert.Equal(t, render(tt.rule, "X"), errs[0])
			}
		})
	}
}

func TestCheck_PredicateRules(t *testing.T) {
	tests := []struct {
		name  string
		rule  string
		value any
		ok    bool
	}{
		{"int rejects float", RuleInt, 3.14, false},
		{"int accepts int", RuleInt, 42, true},
		{"int accepts int string", RuleInt, "42", true},
		{"int rejects decimal string", RuleInt, "4.2", false},
		{"int accepts uint8", RuleInt, uint8(7), true},
		{"float accepts float", RuleFloat, 3.14, true},
		{"float accepts numeric string", RuleFloat, "12.50", true},
		{"float rejects int", RuleFloat, 3, false},
		{"float rejects text", RuleFloat, "zwölf", false},
		{"numeric accepts numeric string", RuleNumeric, "42", true},
		{"numeric accepts float", RuleNumeric, 1.5, true},
		{"numeric accepts padded string", RuleNumeric, " 7 ", true},
		{"numeric rejects text", RuleNumeric, "abc", false},
		{"numeric rejects NaN string", RuleNumeric, "NaN", false},
		{"numeric rejects bool", RuleNumeric, true, false},
		{"numeric rejects digit separators", RuleNumeric, "1_000", false},
		{"numeric rejects hex float", RuleNumeric, "0x1p4", false},
		{"numeric rejects signed hex", RuleNumeric, "-0X10", false},
		{"float rejects digit separators", RuleFloat, "12_5.0", false},
		{"float rejects hex float", RuleFloat, "0x1.8p1", false},
		{"numeric accepts exponent", RuleNumeric, "1e3", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := checkOne(t, tt.rule, tt.value, WithLabel("Count"))
			if tt.ok {
				assert.Empty(t, errs)
			} else {
				assert.Equal(t, []string{render(tt.rule, "Count")}, errs)
			}
		})
	}
}

func TestCheck_OrderMinMaxType(t *testing.T) {
	// "ab1" is too short and not letters-only
	errs := checkOne(t, RuleLetters, "ab1", WithLabel("Name"), Min(5))
	assert.Equal(t, []string{
		"Das Feld Name muss mindestens 5 Zeichen lang sein.",
		"Das Feld Name darf nur Buchstaben und Leerzeichen enthalten.",
	}, errs)
}

func TestCheck_NonNumericSkipsNumericBounds(t *testing.T) {
	errs := checkOne(t, RuleInt, "viele", WithLabel("Personen"), Min(1), Max(10))
	assert.Equal(t, []string{"Das Feld Personen muss eine ganze Zahl sein."}, errs)
}

// ---------------------------------------------------------------------------
// Unknown rule
// ---------------------------------------------------------------------------

func TestCheck_UnknownRule(t *testing.T) {
	v := New()
	require.NoError(t, v.Check(RuleLetters, "John1", WithLabel("Name")))
	before := v.Errors()

	err := v.Check("bogus", "x", WithLabel("Label"))
	require.ErrorIs(t, err, ErrUnknownRule)
	assert.Contains(t, err.Error(), "bogus")

	assert.Equal(t, before, v.Errors())
}

func TestCheck_UnknownRuleOnFreshValidator(t *testing.T) {
	v := New()
	require.ErrorIs(t, v.Check("bogus", "x", Required()), ErrUnknownRule)
	assert.False(t, v.HasErrors())
}

// ---------------------------------------------------------------------------
// Compare
// ---------------------------------------------------------------------------

func TestCompare(t *testing.T) {
	t.Run("equal", func(t *testing.T) {
		v := New()
		assert.True(t, v.Compare(Pair{"abc", "Pwd"}, Pair{"abc", "Pwd2"}))
		assert.False(t, v.HasErrors())
	})

	t.Run("different", func(t *testing.T) {
		v := New()
		assert.False(t, v.Compare(Pair{"abc", "Pwd"}, Pair{"xyz", "Pwd2"}))
		assert.Equal(t, []string{"Die Felder Pwd und Pwd2 stimmen nicht überein."}, v.Errors())
	})

	t.Run("no coercion", func(t *testing.T) {
		v := New()
		assert.False(t, v.Compare(Pair{"1", "A"}, Pair{1, "B"}))
		assert.Len(t, v.Errors(), 1)
	})

	t.Run("uncomparable values", func(t *testing.T) {
		v := New()
		assert.True(t, v.Compare(Pair{[]int{1}, "A"}, Pair{[]int{1}, "B"}))
	})
}

// ---------------------------------------------------------------------------
// Unique
// ---------------------------------------------------------------------------

func TestUnique(t *testing.T) {
	ctx := context.Background()

	t.Run("free value", func(t *testing.T) {
		c := &stubCounter{count: 0}
		v := New(WithCounter(c))

		ok, err := v.Unique(ctx, "A101", "Raumcode", "rooms", "code")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.False(t, v.HasErrors())
		assert.Equal(t, "rooms", c.table)
		assert.Equal(t, "code", c.column)
		assert.Equal(t, "A101", c.value)
	})

	t.Run("taken value", func(t *testing.T) {
		v := New(WithCounter(&stubCounter{count: 2}))

		ok, err := v.Unique(ctx, "A101", "Raumcode", "rooms", "code")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, []string{"Der Wert im Feld Raumcode ist bereits vergeben."}, v.Errors())
	})

	t.Run("counter error propagates", func(t *testing.T) {
		dbErr := errors.New("connection refused")
		v := New(WithCounter(&stubCounter{err: dbErr}))

		_, err := v.Unique(ctx, "A101", "Raumcode", "rooms", "code")
		require.ErrorIs(t, err, dbErr)
		assert.False(t, v.HasErrors())
	})

	t.Run("no counter", func(t *testing.T) {
		_, err := New().Unique(ctx, "A101", "Raumcode", "rooms", "code")
		require.ErrorIs(t, err, ErrNoCounter)
	})
}

// ---------------------------------------------------------------------------
// Error log
// ---------------------------------------------------------------------------

func TestErrors_Idempotent(t *testing.T) {
	v := New()
	require.NoError(t, v.Check(RuleInt, "x", WithLabel("A")))

	first := v.Errors()
	second := v.Errors()
	assert.Equal(t, first, second)

	first[0] = "mutated"
	assert.NotEqual(t, "mutated", v.Errors()[0])
}

func TestErrors_AccumulationOrder(t *testing.T) {
	v := New()
	require.NoError(t, v.Check(RuleLetters, "A1", WithLabel("A")))
	require.NoError(t, v.Check(RuleInt, "B", WithLabel("B")))
	v.Compare(Pair{"x", "C"}, Pair{"y", "D"})

	assert.Equal(t, []string{
		render(RuleLetters, "A"),
		render(RuleInt, "B"),
		render(MsgCompare, "C", "D"),
	}, v.Errors())
}

func TestErr(t *testing.T) {
	v := New()
	require.NoError(t, v.Err())

	require.NoError(t, v.Check(RuleInt, "", WithLabel("A"), Required()))
	err := v.Err()
	require.Error(t, err)

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, v.Errors(), ve.Messages)
}
