package assessment

import "github.com/abhisek/ksa/internal/llm"

// QuizSchema is the structured output requested from the generation call.
// Questions are wrapped in an object because OpenAI and Anthropic require an
// object at the root.
var QuizSchema = &llm.Schema{
	Name:        "ksa-quiz",
	Description: "A multiple-choice KSA assessment",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "integer",
							"description": "Question number, unique within the quiz",
						},
						"text": map[string]any{
							"type":        "string",
							"description": "The question shown to the candidate",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 answer options",
						},
						"correctAnswer": map[string]any{
							"type":        "integer",
							"description": "Index 0-3 of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct option is right",
						},
					},
					"required":             []any{"id", "text", "options", "correctAnswer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// RemediationSchema is the structured output requested from the evaluation call.
var RemediationSchema = &llm.Schema{
	Name:        "ksa-remediation",
	Description: "Gap analysis and learning prescriptions for an assessment result",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"gapAnalysis": map[string]any{
				"type":        "string",
				"description": "What the candidate is missing, based on the missed questions",
			},
			"prescriptions": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"online": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"description": "Self-paced online courses and resources",
					},
					"offline": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"description": "In-person bootcamps, workshops or mentoring",
					},
				},
				"required":             []any{"online", "offline"},
				"additionalProperties": false,
			},
		},
		"required":             []any{"gapAnalysis", "prescriptions"},
		"additionalProperties": false,
	},
}
