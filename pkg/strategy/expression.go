package strategy

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"roomstudio/internal/config"
	"roomstudio/pkg/catalog"
	"roomstudio/pkg/logger"
	"roomstudio/pkg/recommend"
)

// ExpressionSuggester evaluates configured rules in order and returns the
// items of the first rule whose condition holds.
type ExpressionSuggester struct {
	rules []CompiledRule
}

// CompiledRule caches the byte code of the parsed condition
type CompiledRule struct {
	Program *vm.Program
	Items   []string
}

func NewExpressionSuggester(cfg config.SuggestionConfig) *ExpressionSuggester {
	var compiledRules []CompiledRule

	for _, rule := range cfg.Rules {
		if len(rule.Items) == 0 {
			logger.Warn("Suggestion rule has no items, skipping", "condition", rule.Condition)
			continue
		}
		// Compile expression once at startup
		program, err := expr.Compile(rule.Condition, expr.AllowUndefinedVariables(), expr.AsBool())
		if err != nil {
			logger.Warn("Failed to compile suggestion rule", "condition", rule.Condition, "error", err)
			continue
		}

		compiledRules = append(compiledRules, CompiledRule{
			Program: program,
			Items:   rule.Items,
		})
	}

	return &ExpressionSuggester{rules: compiledRules}
}

func (e *ExpressionSuggester) Name() string {
	return "dynamic_expression"
}

func (e *ExpressionSuggester) Suggest(room recommend.RoomContext) []string {
	env := map[string]any{
		"room_type": room.RoomType,
		"style":     room.Style,
		"objects":   room.Objects,
	}

	for _, rule := range e.rules {
		matched, err := expr.Run(rule.Program, env)
		if err != nil {
			// A failing rule never blocks the ones after it.
			logger.Debug("Suggestion rule evaluation failed", "error", err)
			continue
		}
		if b, ok := matched.(bool); ok && b {
			return append([]string(nil), rule.Items...)
		}
	}

	return catalog.RoomDefaults(room.RoomType)
}
