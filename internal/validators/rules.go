// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// Rule names accepted by [RuleValidator.Check].
const (
	RuleLetters      = "letters"
	RuleText         = "text"
	RuleTextNum      = "textnum"
	RuleAlphanumeric = "alphanumeric"
	RuleCheckbox     = "checkbox"

	RuleNumeric = "numeric"
	RuleInt     = "int"
	RuleFloat   = "float"
)

// ruleKind tags the variant held by a rule.
type ruleKind int

const (
	patternRule ruleKind = iota
	predicateRule
)

// rule is a tagged union: exactly one of pattern or predicate is set,
// matching kind.
type rule struct {
	name      string
	kind      ruleKind
	pattern   *regexp.Regexp
	predicate func(any) bool
}

// patternRules maps rule names to unanchored expressions. Anchoring is
// added when the registry is built so every match covers the whole value.
var patternRules = map[string]string{
	RuleLetters:      `[\p{L} ]+`,
	RuleText:         `[\p{L}\s.,:;!?'"()@_/&+-]+`,
	RuleTextNum:      `[\p{L}\p{N}\s.,:;!?'"()@_/&+#-]+`,
	RuleAlphanumeric: `[\p{L}\p{N}]+`,
	RuleCheckbox:     `(?i:on|yes|true|checked|1)`,
}

var predicateRules = map[string]func(any) bool{
	RuleNumeric: isNumeric,
	RuleInt:     isInt,
	RuleFloat:   isFloat,
}

// registry holds every rule by name. It is built once and read-only
// afterwards.
var registry = buildRegistry(patternRules, predicateRules)

func buildRegistry(patterns map[string]string, predicates map[string]func(any) bool) map[string]rule {
	rules := make(map[string]rule, len(patterns)+len(predicates))

	for name, expr := range patterns {
		rules[name] = rule{
			name:    name,
			kind:    patternRule,
			pattern: regexp.MustCompile(`^(?:` + expr + `)$`),
		}
	}

	for name, fn := range predicates {
		if _, dup := rules[name]; dup {
			panic(fmt.Sprintf("validators: rule %q is registered as both pattern and predicate", name))
		}
		rules[name] = rule{
			name:      name,
			kind:      predicateRule,
			predicate: fn,
		}
	}

	return rules
}

// lookupRule resolves name in the registry.
func lookupRule(name string) (rule, error) {
	r, ok := registry[name]
	if !ok {
		return rule{}, fmt.Errorf("%w: %s", ErrUnknownRule, name)
	}
	return r, nil
}

// ruleNames returns the names of all registered rules.
func ruleNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// match applies a pattern rule to value. Non-string values are matched
// against their default textual form.
func (r rule) match(value any) bool {
	return r.pattern.MatchString(stringOf(value))
}

// isNumeric accepts any finite number and any string holding one.
func isNumeric(value any) bool {
	_, ok := toFloat(value)
	return ok
}

// isInt accepts integer-kind values and strings holding a base-10 integer.
// Floating point values are rejected even when integral.
func isInt(value any) bool {
	if value == nil {
		return false
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	case reflect.String:
		_, err := strconv.ParseInt(strings.TrimSpace(rv.String()), 10, 64)
		return err == nil
	default:
		return false
	}
}

// isFloat accepts finite floating point values and strings holding a
// finite number. Integer-kind values are rejected.
func isFloat(value any) bool {
	if value == nil {
		return false
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return isFinite(rv.Float())
	case reflect.String:
		_, ok := parseFloat(rv.String())
		return ok
	default:
		return false
	}
}

// toFloat converts numbers and numeric strings to float64.
func toFloat(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f, isFinite(f)
	case reflect.String:
		return parseFloat(rv.String())
	default:
		return 0, false
	}
}

// parseFloat accepts plain decimal notation only. Go literal forms such
// as digit separators and hex floats are rejected.
func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if strings.ContainsRune(s, '_') {
		return 0, false
	}
	if digits := strings.ToLower(strings.TrimLeft(s, "+-")); strings.HasPrefix(digits, "0x") {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(f) {
		return 0, false
	}
	return f, true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// isEmpty treats nil, "", false, nil pointers and zero-length
// collections as empty. Zero numbers are not empty.
func isEmpty(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

func stringOf(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
