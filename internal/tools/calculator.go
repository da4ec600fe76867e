package tools

import (
	"github.com/ryan-rushton/textkit/internal/tools/calc"
	"github.com/ryan-rushton/textkit/internal/tools/number"
)

// Calculator strips everything but digits, operators, parentheses and dots
// from the input and evaluates what is left.
func Calculator(ev *calc.Evaluator) func(string) string {
	return func(input string) string {
		v, err := ev.Eval(calc.Sanitize(input))
		if err != nil {
			return MsgInvalidCalculation
		}
		return "Result: " + number.Format(v)
	}
}
