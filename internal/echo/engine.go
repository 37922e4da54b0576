package echo

import (
	"fmt"

	"echolint/internal/diag"
	"echolint/internal/token"
)

// Config is the compiled analysis configuration. Build it through the
// config package so field names and patterns are validated eagerly.
type Config struct {
	Radius     int
	Scope      string
	Conditions []Condition
}

// Engine walks containers in order, tokens in container order and
// conditions in declaration order, forwarding every diagnostic to the
// sink as it is produced. It holds no state across calls.
type Engine struct {
	cfg  Config
	sink diag.Sink
}

func NewEngine(cfg Config, sink diag.Sink) *Engine {
	return &Engine{cfg: cfg, sink: sink}
}

// Run analyzes every container. A non-positive radius is fatal: one
// configuration error is reported, anchored at the first available token
// location, and no container is processed.
func (e *Engine) Run(containers []token.Container) error {
	if e.cfg.Radius <= 0 {
		var loc token.Location
		for _, c := range containers {
			if len(c.Tokens) > 0 {
				loc = c.Tokens[0].Loc
				break
			}
		}
		err := fmt.Errorf("echo range must be a positive number of token positions, got %d", e.cfg.Radius)
		e.sink.ReportError(err.Error(), loc)
		return err
	}
	for _, c := range containers {
		e.RunContainer(c)
	}
	return nil
}

// RunContainer analyzes a single container. The window is computed once
// per token and shared across all conditions. Exported for parallel
// drivers that fan containers out to workers; Run uses it sequentially.
func (e *Engine) RunContainer(c token.Container) {
	for _, t := range c.Tokens {
		window := Window(c.Tokens, t.Index, e.cfg.Radius)
		if len(window) == 0 {
			continue
		}
		for _, cond := range e.cfg.Conditions {
			process(cond, t, window, e.cfg.Radius, e.sink)
		}
	}
}
