package orchestrator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/aitalenthub/advisorbot/core"
	"github.com/aitalenthub/advisorbot/internal/util"
	"github.com/aitalenthub/advisorbot/logging"
	"github.com/aitalenthub/advisorbot/model"
	"github.com/aitalenthub/advisorbot/prompt"
)

const (
	// DefaultFallbackReply is the fixed user-visible message produced when a
	// turn fails; causal detail stays in the logs only.
	DefaultFallbackReply = "An error occurred, starting fresh. Please send your question again."
	// DefaultClarificationReply answers empty or unusable input without
	// touching session state.
	DefaultClarificationReply = "I didn't catch that. Could you rephrase your question?"
	// DefaultGreeting is returned after an explicit reset.
	DefaultGreeting = "Hi! I'm the assistant for the AI Talent Hub master's programs :) How can I help?"
	// DefaultInvokeTimeout bounds a single generation call.
	DefaultInvokeTimeout = 30 * time.Second
)

// Options holds dependency and configuration overrides passed to New().
type Options struct {
	// ContextScope selects which program plans are injected each turn.
	ContextScope core.Scope
	// SystemTemplate overrides the assembler's instruction template.
	SystemTemplate string
	// MaxHistoryTurns bounds the retained history (whole turns).
	MaxHistoryTurns int
	// InvokeTimeout bounds one generation call.
	InvokeTimeout time.Duration
	// FallbackReply, ClarificationReply and Greeting override the fixed
	// user-facing texts.
	FallbackReply      string
	ClarificationReply string
	Greeting           string
	// Logger receives turn diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Orchestrator owns per-thread conversation state transitions. Public
// methods are safe for concurrent use; all mutations for one thread are
// mutually exclusive while unrelated threads never contend.
type Orchestrator struct {
	store     core.SessionStore
	provider  core.ContextProvider
	llm       model.Model
	assembler *prompt.Assembler

	scope              core.Scope
	invokeTimeout      time.Duration
	fallbackReply      string
	clarificationReply string
	greeting           string
	logger             logging.Logger

	mu    sync.Mutex
	locks map[string]*threadLock
}

// threadLock serializes turns for one thread. refs counts holders and
// waiters so the entry can be evicted once the last one releases.
type threadLock struct {
	mu   sync.Mutex
	refs int
}

// New constructs an Orchestrator with optional overrides.
func New(store core.SessionStore, provider core.ContextProvider, llm model.Model, optFns ...func(o *Options)) *Orchestrator {
	opts := Options{
		ContextScope:       core.ScopeBoth,
		SystemTemplate:     prompt.DefaultSystemTemplate,
		MaxHistoryTurns:    prompt.DefaultMaxTurns,
		InvokeTimeout:      DefaultInvokeTimeout,
		FallbackReply:      DefaultFallbackReply,
		ClarificationReply: DefaultClarificationReply,
		Greeting:           DefaultGreeting,
		Logger:             logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	assembler := prompt.NewAssembler(func(o *prompt.Options) {
		o.SystemTemplate = opts.SystemTemplate
		o.MaxTurns = opts.MaxHistoryTurns
	})

	return &Orchestrator{
		store:              store,
		provider:           provider,
		llm:                llm,
		assembler:          assembler,
		scope:              opts.ContextScope,
		invokeTimeout:      opts.InvokeTimeout,
		fallbackReply:      opts.FallbackReply,
		clarificationReply: opts.ClarificationReply,
		greeting:           opts.Greeting,
		logger:             opts.Logger,
		locks:              make(map[string]*threadLock),
	}
}

// HandleMessage runs one full turn for the thread and always returns a
// user-facing reply: the generated text on success, the clarification prompt
// for unusable input, or the fixed fallback after a failed turn.
func (o *Orchestrator) HandleMessage(ctx context.Context, threadID, text string) string {
	if err := validateInput(threadID, text); err != nil {
		o.logger.Warn("rejecting inbound message", "thread_id", threadID, "error", err.Error())
		return o.clarificationReply
	}

	lock := o.acquireThread(threadID)
	defer o.releaseThread(threadID, lock)

	turnID := util.NewID()
	reply, err := o.runTurn(ctx, threadID, turnID, text)
	if err != nil {
		return o.failTurn(threadID, turnID, err)
	}
	return reply
}

// HandleReset discards all state for the thread and returns the greeting,
// used when a user explicitly restarts.
func (o *Orchestrator) HandleReset(ctx context.Context, threadID string) string {
	lock := o.acquireThread(threadID)
	defer o.releaseThread(threadID, lock)

	if err := o.store.Delete(threadID); err != nil {
		o.logger.Error("reset failed", "thread_id", threadID, "error", err.Error())
		return o.fallbackReply
	}
	o.logger.Info("session reset", "thread_id", threadID)
	return o.greeting
}

// runTurn executes the happy path: session load, context, prompt, invoke,
// persist. Every returned error is turn-fatal and handled by failTurn.
func (o *Orchestrator) runTurn(ctx context.Context, threadID, turnID, text string) (string, error) {
	sess, ok, err := o.store.Get(threadID)
	if err != nil {
		return "", err
	}
	var history []core.Message
	if ok {
		history = sess.History
	}
	o.logger.Debug("turn received", "thread_id", threadID, "turn_id", turnID, "history_len", len(history))

	// Context cannot fail the turn; absence degrades to the sentinel text.
	contextBlock := o.provider.Context(o.scope)

	req, err := o.assembler.Assemble(contextBlock, history, text)
	if err != nil {
		return "", err
	}

	reply, err := o.invoke(ctx, req)
	if err != nil {
		return "", err
	}

	if _, err := o.store.AppendTurn(threadID, core.NewUserMessage(text), core.NewAssistantMessage(reply)); err != nil {
		return "", err
	}
	o.logger.Info("turn completed", "thread_id", threadID, "turn_id", turnID)
	return reply, nil
}

// invoke issues the single bounded generation call for the turn.
func (o *Orchestrator) invoke(ctx context.Context, req model.Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.invokeTimeout)
	defer cancel()

	start := time.Now()
	resp, err := o.llm.Generate(ctx, req)
	dur := time.Since(start)
	if err != nil {
		logging.LogModelCall(o.logger, o.llm.Info().Name, 0, dur, err)
		return "", asInvocationError(ctx, err)
	}
	tokens := 0
	if resp.Usage != nil {
		tokens = resp.Usage.TotalTokens
	}
	logging.LogModelCall(o.logger, o.llm.Info().Name, tokens, dur, nil)
	return resp.Text, nil
}

// failTurn handles any turn-fatal error: the session is deleted
// unconditionally, discarding any partial state, and the fixed fallback
// message is produced regardless of the underlying cause.
func (o *Orchestrator) failTurn(threadID, turnID string, cause error) string {
	o.logger.Error("turn failed, resetting session", "thread_id", threadID, "turn_id", turnID, "error", cause.Error())
	if err := o.store.Delete(threadID); err != nil {
		o.logger.Error("session delete during reset failed", "thread_id", threadID, "error", err.Error())
	}
	return o.fallbackReply
}

// acquireThread takes the per-thread mutex, creating the map entry on first
// use. Lock granularity is per-thread so unrelated users never serialize
// against each other.
func (o *Orchestrator) acquireThread(threadID string) *threadLock {
	o.mu.Lock()
	lock, ok := o.locks[threadID]
	if !ok {
		lock = &threadLock{}
		o.locks[threadID] = lock
	}
	lock.refs++
	o.mu.Unlock()

	lock.mu.Lock()
	return lock
}

// releaseThread unlocks and drops the map entry once no goroutine holds or
// waits on it, so the lock map does not grow with every thread ever seen.
func (o *Orchestrator) releaseThread(threadID string, lock *threadLock) {
	lock.mu.Unlock()

	o.mu.Lock()
	lock.refs--
	if lock.refs == 0 {
		delete(o.locks, threadID)
	}
	o.mu.Unlock()
}

func validateInput(threadID, text string) error {
	if strings.TrimSpace(threadID) == "" {
		return &core.MalformedInputError{Reason: "empty thread id"}
	}
	if strings.TrimSpace(text) == "" {
		return &core.MalformedInputError{Reason: "empty message"}
	}
	return nil
}

// asInvocationError guarantees a classified *core.ModelInvocationError even
// when an adapter returns a raw error.
func asInvocationError(ctx context.Context, err error) error {
	var mie *core.ModelInvocationError
	if errors.As(err, &mie) {
		return mie
	}
	if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
		return &core.ModelInvocationError{Cause: core.CauseTimeout, Err: err}
	}
	return &core.ModelInvocationError{Cause: core.CauseBackend, Err: err}
}
