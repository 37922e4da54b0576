// Package config binds the echo configuration document (YAML or JSON) and
// compiles it into the engine's resolved form. Field names and patterns
// resolve eagerly so every configuration error surfaces at load time,
// before any container is processed.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"echolint/internal/echo"
	"echolint/internal/segment"
	"echolint/internal/token"
)

// Document is the raw configuration shape. yaml.v3 also decodes JSON, so
// both bindings share one set of tags.
type Document struct {
	Range      int            `yaml:"range"`
	Scope      string         `yaml:"scope"`
	Conditions []ConditionDoc `yaml:"conditions"`
}

type ConditionDoc struct {
	Field   string      `yaml:"field"`
	Filters []FilterDoc `yaml:"filters"`
	Score   []float64   `yaml:"score"`
	Warning float64     `yaml:"warning"`
	Error   float64     `yaml:"error"`
}

type FilterDoc struct {
	Field    string   `yaml:"field"`
	Includes []string `yaml:"includes"`
}

func Load(path string) (*echo.Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Parse(raw []byte) (*echo.Config, error) {
	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return Compile(doc)
}

// Compile validates the document and resolves every field name and pattern.
func Compile(doc Document) (*echo.Config, error) {
	if doc.Range <= 0 {
		return nil, fmt.Errorf("range must be a positive number of token positions, got %d", doc.Range)
	}
	if doc.Scope == "" {
		doc.Scope = segment.ScopeDocument
	}
	if len(doc.Conditions) == 0 {
		return nil, fmt.Errorf("at least one condition is required")
	}

	cfg := &echo.Config{
		Radius:     doc.Range,
		Scope:      doc.Scope,
		Conditions: make([]echo.Condition, 0, len(doc.Conditions)),
	}
	for i, c := range doc.Conditions {
		cond, err := compileCondition(c)
		if err != nil {
			return nil, fmt.Errorf("conditions[%d]: %w", i, err)
		}
		cfg.Conditions = append(cfg.Conditions, cond)
	}
	return cfg, nil
}

func compileCondition(doc ConditionDoc) (echo.Condition, error) {
	field, err := token.ParseField(doc.Field)
	if err != nil {
		return echo.Condition{}, err
	}
	if len(doc.Score) > 3 {
		return echo.Condition{}, fmt.Errorf("score accepts at most 3 coefficients, got %d", len(doc.Score))
	}

	cond := echo.Condition{
		Field:   field,
		Coeffs:  doc.Score,
		Warning: doc.Warning,
		Error:   doc.Error,
	}
	for j, f := range doc.Filters {
		filter, err := compileFilter(f)
		if err != nil {
			return echo.Condition{}, fmt.Errorf("filters[%d]: %w", j, err)
		}
		cond.Filters = append(cond.Filters, filter)
	}
	return cond, nil
}

func compileFilter(doc FilterDoc) (echo.Filter, error) {
	field, err := token.ParseField(doc.Field)
	if err != nil {
		return echo.Filter{}, err
	}
	filter := echo.Filter{Field: field}
	for _, raw := range doc.Includes {
		p, err := echo.Compile(raw)
		if err != nil {
			return echo.Filter{}, err
		}
		filter.Includes = append(filter.Includes, p)
	}
	return filter, nil
}
