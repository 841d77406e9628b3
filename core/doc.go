// Package core provides the foundational domain types and contracts used by
// AdvisorBot. It defines the core abstractions for:
//
//   - Messages and Sessions (ordered per-thread conversation history)
//   - SessionStore (atomic per-thread persistence)
//   - ContextProvider (read-only domain knowledge injection)
//   - The typed error taxonomy routed through the orchestrator's reset path
//
// The package intentionally keeps implementation concerns (persistence
// backends, model providers, orchestration) out of scope, exposing small
// interfaces to enable custom backends and extensions.
package core
