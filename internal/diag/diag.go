package diag

import (
	"go.uber.org/zap"

	"echolint/internal/token"
)

type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return "unknown"
}

// Diagnostic is the severity + message + location triple produced by the
// engine. The location is forwarded verbatim from the token that raised it.
type Diagnostic struct {
	Severity Severity
	Message  string
	Loc      token.Location
}

// Sink receives diagnostics as they are produced. Both operations are
// fire-and-forget; implementations must preserve call order.
type Sink interface {
	ReportWarning(message string, loc token.Location)
	ReportError(message string, loc token.Location)
}

// Collector is an append-only in-memory sink. It is the only mutable state
// of an analysis run.
type Collector struct {
	Diagnostics []Diagnostic
}

func (c *Collector) ReportWarning(message string, loc token.Location) {
	c.Diagnostics = append(c.Diagnostics, Diagnostic{Severity: SeverityWarning, Message: message, Loc: loc})
}

func (c *Collector) ReportError(message string, loc token.Location) {
	c.Diagnostics = append(c.Diagnostics, Diagnostic{Severity: SeverityError, Message: message, Loc: loc})
}

// LogSink forwards diagnostics to a zap logger.
type LogSink struct {
	log *zap.Logger
}

func NewLogSink(log *zap.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) ReportWarning(message string, loc token.Location) {
	s.log.Warn(message, zap.Int("line", loc.Line), zap.Int("column", loc.Column))
}

func (s *LogSink) ReportError(message string, loc token.Location) {
	s.log.Error(message, zap.Int("line", loc.Line), zap.Int("column", loc.Column))
}

type multi []Sink

// Multi fans every diagnostic out to all given sinks, in argument order.
func Multi(sinks ...Sink) Sink {
	return multi(sinks)
}

func (m multi) ReportWarning(message string, loc token.Location) {
	for _, s := range m {
		s.ReportWarning(message, loc)
	}
}

func (m multi) ReportError(message string, loc token.Location) {
	for _, s := range m {
		s.ReportError(message, loc)
	}
}
