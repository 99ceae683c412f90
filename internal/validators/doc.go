// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides form validation for the room booking
// application.
//
// Core concepts:
//   - RuleValidator: a rule-dispatch engine. Each call to Check names a
//     rule ("letters", "int", ...) that resolves to either a full-span
//     regular expression or a numeric predicate. Required, min and max
//     constraints are applied before the type check. Failures are
//     rendered into an ordered error log owned by the instance.
//   - Compare and Unique: cross-field equality and storage-backed
//     uniqueness checks that write into the same log.
//   - Validator: domain validators (rooms, bookings) built on top of
//     RuleValidator and returning *ValidationError.
//
// A RuleValidator belongs to exactly one validation pass (one form
// submission) and must not be shared between goroutines.
package validators
