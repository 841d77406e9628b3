// Package session houses concrete implementations of the core.SessionStore.
// The interface itself (and the Session struct) live in the core package to
// centralize domain contracts. Keeping only implementations here prevents
// higher level packages from depending on concrete storage.
//
// Additional backends (Redis, Postgres, etc.) belong in sub-packages, like
// the embedded sqlite store in session/sqlite – only the wiring layer needs
// to decide which implementation to instantiate.
package session
