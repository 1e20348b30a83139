package lint

import (
	"fmt"

	"github.com/yaklabco/jandent/pkg/config"
)

// Engine exposes the convert and lint passes over whole documents.
//
// Each call snapshots the configuration and compiles the rule patterns
// before touching the document, so toggles changed through
// config.Config.SetOption take effect on the next call. The engine keeps no
// per-call state; concurrent calls are safe as long as the configuration is
// not modified while they run.
type Engine struct {
	config   *config.Config
	registry *Registry
}

// NewEngine creates an Engine. A nil cfg uses config.NewConfig and a nil
// registry uses DefaultRegistry.
func NewEngine(cfg *config.Config, registry *Registry) *Engine {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if registry == nil {
		registry = DefaultRegistry
	}
	return &Engine{
		config:   cfg,
		registry: registry,
	}
}

// Config returns the live configuration the engine reads on every call.
func (e *Engine) Config() *config.Config {
	return e.config
}

// Registry returns the rule registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Convert rewrites document. Every line, including the last, is followed by
// the configured newline.
func (e *Engine) Convert(document string) (string, error) {
	result, err := e.process(document, ModeConvert)
	if err != nil {
		return "", err
	}
	if result.Mode != ModeConvert {
		return "", fmt.Errorf("%w: convert produced a %s result", ErrUnexpectedResult, result.Mode)
	}
	return result.Text, nil
}

// Lint reports every violation in document, ordered by line, then by rule,
// then left to right.
func (e *Engine) Lint(document string) ([]Finding, error) {
	result, err := e.process(document, ModeLint)
	if err != nil {
		return nil, err
	}
	if result.Mode != ModeLint {
		return nil, fmt.Errorf("%w: lint produced a %s result", ErrUnexpectedResult, result.Mode)
	}
	return result.Findings, nil
}

// Run performs Convert and Lint as two independent passes.
func (e *Engine) Run(document string) (string, []Finding, error) {
	converted, err := e.Convert(document)
	if err != nil {
		return "", nil, err
	}
	findings, err := e.Lint(document)
	if err != nil {
		return "", nil, err
	}
	return converted, findings, nil
}

func (e *Engine) process(document string, mode Mode) (*Result, error) {
	state := &RunState{Mode: mode}

	set, err := compileRuleSet(e.config, e.registry)
	if err != nil {
		return nil, err
	}

	return processDocument(document, set, state)
}
