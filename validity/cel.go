package validity

import (
	"fmt"

	"github.com/google/cel-go/cel"

	"github.com/transcriptguard/redact/span"
)

// Rule is one operator-defined validity expression. The expression is
// evaluated with two string variables, text and label, and must produce a
// bool; true marks the span invalid.
type Rule struct {
	// Label restricts the rule to one category. Empty applies it to every
	// span.
	Label span.Label

	// Expr is the CEL expression, e.g.
	// `text.size() < 2 || text.matches('^[0-9]+$')`.
	Expr string
}

// CELChecker evaluates operator-defined CEL rules. It is typically chained
// after the built-in RuleChecker to extend the blocklists per deployment
// without recompiling.
type CELChecker struct {
	programs []celProgram
}

type celProgram struct {
	label   span.Label
	program cel.Program
}

// NewCELChecker compiles the rules. Compilation errors are returned up front;
// evaluation never fails afterwards (an evaluation error counts as "valid" so
// a bad rule cannot eat spans silently).
func NewCELChecker(rules []Rule) (*CELChecker, error) {
	env, err := cel.NewEnv(
		cel.Variable("text", cel.StringType),
		cel.Variable("label", cel.StringType),
	)
	if err != nil {
		return nil, fmt.Errorf("create CEL environment: %w", err)
	}

	checker := &CELChecker{}
	for _, rule := range rules {
		ast, issues := env.Compile(rule.Expr)
		if issues != nil && issues.Err() != nil {
			return nil, fmt.Errorf("compile validity rule %q: %w", rule.Expr, issues.Err())
		}
		if ast.OutputType() != cel.BoolType {
			return nil, fmt.Errorf("validity rule %q: output type %s, want bool", rule.Expr, ast.OutputType())
		}
		program, err := env.Program(ast)
		if err != nil {
			return nil, fmt.Errorf("program validity rule %q: %w", rule.Expr, err)
		}
		checker.programs = append(checker.programs, celProgram{label: rule.Label, program: program})
	}
	return checker, nil
}

// IsInvalid evaluates every rule applicable to the label; any rule returning
// true marks the span invalid.
func (c *CELChecker) IsInvalid(label span.Label, text string) bool {
	for _, p := range c.programs {
		if p.label != "" && p.label != label {
			continue
		}
		out, _, err := p.program.Eval(map[string]any{
			"text":  text,
			"label": label.String(),
		})
		if err != nil {
			continue
		}
		if invalid, ok := out.Value().(bool); ok && invalid {
			return true
		}
	}
	return false
}
