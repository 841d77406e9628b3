package core

// Scope selects which academic programs contribute to the context block.
type Scope string

const (
	// ScopeProgramAI selects the AI program plan only.
	ScopeProgramAI Scope = "ai"
	// ScopeProgramAIProduct selects the AI Product program plan only.
	ScopeProgramAIProduct Scope = "ai_product"
	// ScopeBoth selects both program plans in fixed order (AI first).
	ScopeBoth Scope = "both"
)

// ContextProvider supplies the formatted domain-knowledge text injected into
// the system prompt. Implementations load their sources once at construction;
// Context is deterministic, read-only and safe for unsynchronized concurrent
// use. Absence of context is reported through a sentinel string, never an
// error, so a provider can never fail a turn.
type ContextProvider interface {
	Context(scope Scope) string
}
