// Package advisorbot provides a high-level façade over the conversation
// orchestrator and its service abstractions (session store, context provider,
// model, logging). Most applications interact with this package by:
//  1. Creating an AdvisorBot via New() (optionally overriding default in-memory services)
//  2. Forwarding inbound transport messages to HandleMessage
//  3. Forwarding explicit restart commands to HandleReset
//
// The façade delegates turn sequencing to orchestrator.Orchestrator while
// keeping setup ergonomics concise. All defaults are safe for local
// development and testing; production deployments typically supply a durable
// session store, real plan sources, a provider-backed model and a structured
// logger.
package advisorbot

import (
	"context"
	"time"

	"github.com/aitalenthub/advisorbot/academics"
	"github.com/aitalenthub/advisorbot/core"
	"github.com/aitalenthub/advisorbot/logging"
	"github.com/aitalenthub/advisorbot/model"
	"github.com/aitalenthub/advisorbot/orchestrator"
	"github.com/aitalenthub/advisorbot/session"
)

// Options configures the AdvisorBot instance.
type Options struct {
	// SessionStore persists per-thread history (defaults to in-memory).
	SessionStore core.SessionStore
	// ContextProvider supplies the domain context block (defaults to an
	// academics.Loader over the default resource paths).
	ContextProvider core.ContextProvider
	// Model is the generation backend (defaults to a MockModel, which lets
	// the full pipeline run in tests and demos without credentials).
	Model model.Model
	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger

	// ContextScope selects which program plans are injected per turn.
	ContextScope core.Scope
	// HistoryTurns bounds the retained history (whole turns).
	HistoryTurns int
	// InvokeTimeout bounds one generation call.
	InvokeTimeout time.Duration
	// SystemTemplate overrides the instruction template.
	SystemTemplate string
}

// AdvisorBot is the high-level façade aggregating the orchestrator and its services.
type AdvisorBot struct {
	opts Options
	orch *orchestrator.Orchestrator
}

// New creates a new AdvisorBot instance with optional overrides. Any unset
// service is initialized with a safe local implementation.
func New(optFns ...func(o *Options)) *AdvisorBot {
	opts := Options{
		Logger:        logging.NoOpLogger{},
		ContextScope:  core.ScopeBoth,
		HistoryTurns:  0, // resolved below to the orchestrator default
		InvokeTimeout: orchestrator.DefaultInvokeTimeout,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.SessionStore == nil {
		opts.SessionStore = session.NewInMemoryStore()
	}
	if opts.ContextProvider == nil {
		opts.ContextProvider = academics.NewLoader(func(o *academics.Options) {
			o.Logger = opts.Logger
		})
	}
	if opts.Model == nil {
		opts.Model = model.NewMockModel("advisor-mock", "mock")
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	orch := orchestrator.New(opts.SessionStore, opts.ContextProvider, opts.Model, func(o *orchestrator.Options) {
		o.ContextScope = opts.ContextScope
		if opts.HistoryTurns > 0 {
			o.MaxHistoryTurns = opts.HistoryTurns
		}
		if opts.InvokeTimeout > 0 {
			o.InvokeTimeout = opts.InvokeTimeout
		}
		if opts.SystemTemplate != "" {
			o.SystemTemplate = opts.SystemTemplate
		}
		o.Logger = opts.Logger
	})

	return &AdvisorBot{opts: opts, orch: orch}
}

// HandleMessage runs one conversation turn and returns the reply text for
// the transport layer.
func (b *AdvisorBot) HandleMessage(ctx context.Context, threadID, text string) string {
	return b.orch.HandleMessage(ctx, threadID, text)
}

// HandleReset discards the thread's conversation state and returns the
// greeting text.
func (b *AdvisorBot) HandleReset(ctx context.Context, threadID string) string {
	return b.orch.HandleReset(ctx, threadID)
}
