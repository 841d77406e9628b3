// Package academics implements core.ContextProvider for the master's program
// plans. Each logical source is resolved once at construction through a
// fallback chain: validated CSV first, a raw prose document second, nothing
// (with a logged warning) last. The rendered context is immutable afterwards,
// so a Loader is freely shared across concurrent turns.
package academics
