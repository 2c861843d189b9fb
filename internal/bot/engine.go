package bot

import "fmt"

// ChatTurn is the result of handling one message. It is built per request and
// never stored.
type ChatTurn struct {
	Input     string
	Intent    Intent
	Extracted string
	Reply     string
}

// Engine binds a lexicon, reply templates, a match policy, and a random source.
// It holds no mutable state and is safe for concurrent use as long as its
// Source is.
type Engine struct {
	lexicon   Lexicon
	templates Templates
	policy    Policy
	source    Source
}

// Option configures an Engine.
type Option func(*Engine)

// WithPolicy sets the match policy. The default is SubstringPolicy.
func WithPolicy(p Policy) Option {
	return func(e *Engine) { e.policy = p }
}

// WithSource sets the random source used to pick reply variants.
func WithSource(src Source) Option {
	return func(e *Engine) { e.source = src }
}

// New validates and copies lex and tpl and returns an engine using them.
func New(lex Lexicon, tpl Templates, opts ...Option) (*Engine, error) {
	e := &Engine{
		policy: SubstringPolicy{},
		source: ProcessSource(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := lex.Validate(); err != nil {
		return nil, fmt.Errorf("invalid lexicon: %w", err)
	}
	if err := tpl.Validate(); err != nil {
		return nil, fmt.Errorf("invalid templates: %w", err)
	}
	e.lexicon = lex.Normalized(e.policy)
	e.templates = tpl.Clone()
	return e, nil
}

// Default returns an engine over the built-in lexicon and templates.
func Default(opts ...Option) *Engine {
	e, err := New(DefaultLexicon(), DefaultTemplates(), opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// Classify returns the intent of message.
func (e *Engine) Classify(message string) Intent {
	return Classify(&e.lexicon, e.policy, message)
}

// Reply classifies message, runs the matching extractor, and renders the reply.
func (e *Engine) Reply(message string) ChatTurn {
	text := e.policy.Normalize(message)
	intent := classifyNormalized(&e.lexicon, e.policy, text)
	sub := extract(&e.lexicon, e.policy, intent, text)
	return ChatTurn{
		Input:     message,
		Intent:    intent,
		Extracted: sub.Extracted(),
		Reply:     Render(&e.templates, e.source, intent, sub),
	}
}

// Generate renders a reply for an already classified intent.
func (e *Engine) Generate(intent Intent, sub SubIntent) string {
	return Render(&e.templates, e.source, intent, sub)
}
