// Package orchestrator sequences one conversation turn: load the session,
// obtain the context block, assemble the prompt, invoke the model, persist
// the turn. Turns for the same thread are serialized by a per-thread lock;
// turns for different threads proceed fully in parallel. Any mid-turn
// failure deletes the session and answers with a fixed fallback message, so
// no partial turn is ever visible to subsequent turns.
package orchestrator
