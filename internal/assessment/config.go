package assessment

// Config tunes the generator and evaluator.
type Config struct {
	// Validators run in order over every generated quiz; the first failure
	// rejects it.
	Validators []Validator

	GenMaxTokens   int
	GenTemperature float64

	EvalMaxTokens   int
	EvalTemperature float64
}

// DefaultConfig returns the standard validator chain and token budgets.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&CountValidator{Want: QuizSize},
			&StructuralValidator{},
			&UniqueIDValidator{},
		},
		GenMaxTokens:    8192,
		GenTemperature:  0.8,
		EvalMaxTokens:   2048,
		EvalTemperature: 0.4,
	}
}
