// Package prompt assembles generation requests from a system template, the
// domain context block, and a length-bounded slice of conversation history.
// Assembly is a pure function of its inputs: the same session and context
// always yield an identical request.
package prompt

import (
	"fmt"

	"github.com/aitalenthub/advisorbot/core"
	"github.com/aitalenthub/advisorbot/internal/util"
	"github.com/aitalenthub/advisorbot/model"
)

// DefaultSystemTemplate is the instruction template used when no override is
// supplied. The context block is interpolated at the {{.Context}} placeholder.
const DefaultSystemTemplate = `You are a helpful assistant for applicants and students of the AI Talent Hub master's programs. Use this context to answer questions:

{{.Context}}

Answer based on the academic plans above. Current conversation:`

// DefaultMaxTurns is the number of most recent user/assistant pairs retained
// in the prompt, sized to keep the assembled length bounded (three exchanges,
// six messages).
const DefaultMaxTurns = 3

// Options configure the Assembler.
type Options struct {
	// SystemTemplate is the instruction template with a {{.Context}}
	// placeholder for the domain context block.
	SystemTemplate string
	// MaxTurns is the number of whole turns (user message plus paired
	// assistant reply) kept from the newest end of the history.
	MaxTurns int
}

// Assembler builds model.Requests. Stateless and safe for concurrent use.
type Assembler struct {
	systemTemplate string
	maxTurns       int
}

// NewAssembler constructs an Assembler with optional overrides.
func NewAssembler(optFns ...func(o *Options)) *Assembler {
	opts := Options{
		SystemTemplate: DefaultSystemTemplate,
		MaxTurns:       DefaultMaxTurns,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.MaxTurns < 1 {
		opts.MaxTurns = 1
	}
	return &Assembler{systemTemplate: opts.SystemTemplate, maxTurns: opts.MaxTurns}
}

// Assemble renders the system template with the context block and combines it
// with the retained history and the new user input. The system prompt and the
// newest user message are never dropped; truncation removes whole turns from
// the oldest end first.
func (a *Assembler) Assemble(contextBlock string, history []core.Message, userInput string) (model.Request, error) {
	instructions, err := util.RenderTemplate(a.systemTemplate, map[string]any{"Context": contextBlock})
	if err != nil {
		return model.Request{}, fmt.Errorf("rendering system template: %w", err)
	}

	retained := truncate(history, a.maxTurns)
	messages := make([]core.Message, 0, len(retained)+1)
	messages = append(messages, retained...)
	messages = append(messages, core.NewUserMessage(userInput))

	return model.Request{Instructions: instructions, Messages: messages}, nil
}

// truncate keeps the most recent maxTurns whole turns. A turn is a user
// message together with its paired assistant reply; trimming never splits a
// pair, so the retained slice always starts at a user message.
func truncate(history []core.Message, maxTurns int) []core.Message {
	keep := 2 * maxTurns
	if len(history) <= keep {
		return history
	}
	start := len(history) - keep
	for start < len(history) && history[start].Role != core.RoleUser {
		start++
	}
	return history[start:]
}
