// Package session keeps short-lived, anonymous visitor sessions.
//
// A session is identified by a random token carried in a cookie. It holds
// the per-visitor redirect counters. Sessions live in a [Store]; the
// in-memory [MemoryStore] is the only implementation. Expired sessions are
// swept periodically by a background worker calling
// [Store.DeleteExpired].
package session
