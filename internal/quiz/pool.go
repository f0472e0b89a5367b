package quiz

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// poolSchema is the JSON Schema every pool file must satisfy. Pools are
// authored by hand, so structural mistakes are caught at load instead
// of surfacing as runtime oddities mid-session.
var poolSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"template_id": map[string]any{"type": "string"},
					"prompt":      map[string]any{"type": "string", "minLength": 1},
					"kind": map[string]any{
						"type": "string",
						"enum": []any{"multiple_choice", "free_text"},
					},
					"options": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"answer": map[string]any{"type": "string", "minLength": 1},
					"answer_type": map[string]any{
						"type": "string",
						"enum": []any{"integer", "decimal", "fraction", "text"},
					},
					"explanation": map[string]any{"type": "string"},
					"hint":        map[string]any{"type": "string"},
					"difficulty":  map[string]any{"type": "string"},
				},
				"required":             []any{"prompt", "kind", "answer", "answer_type"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"questions"},
	"additionalProperties": false,
}

// poolQuestion is the on-disk form of one pool entry.
type poolQuestion struct {
	TemplateID  string   `json:"template_id"`
	Prompt      string   `json:"prompt"`
	Kind        string   `json:"kind"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	AnswerType  string   `json:"answer_type"`
	Explanation string   `json:"explanation"`
	Hint        string   `json:"hint"`
	Difficulty  string   `json:"difficulty"`
}

type poolFile struct {
	Questions []poolQuestion `json:"questions"`
}

// LoadPool parses and validates a pool file into QuestionSpecs.
func LoadPool(raw []byte) ([]QuestionSpec, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse pool file: %w", err)
	}

	compiled, err := compiledPoolSchema()
	if err != nil {
		return nil, fmt.Errorf("compile pool schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("pool file invalid: %w", err)
	}

	var pf poolFile
	if err := json.Unmarshal(raw, &pf); err != nil {
		return nil, fmt.Errorf("decode pool file: %w", err)
	}

	specs := make([]QuestionSpec, 0, len(pf.Questions))
	for i, pq := range pf.Questions {
		q := QuestionSpec{
			Prompt:      pq.Prompt,
			Kind:        Kind(pq.Kind),
			Options:     pq.Options,
			Answer:      pq.Answer,
			AnswerType:  AnswerType(pq.AnswerType),
			Explanation: pq.Explanation,
			Hint:        pq.Hint,
			Difficulty:  pq.Difficulty,
			TemplateID:  pq.TemplateID,
			Key:         dedupeKey("pool", pq.TemplateID, i),
		}
		if q.Kind == KindMultipleChoice && !containsOnce(q.Options, q.Answer) {
			return nil, fmt.Errorf("pool question %d: options must contain the answer exactly once", i)
		}
		specs = append(specs, q)
	}
	return specs, nil
}

// compiledPoolSchema compiles poolSchema once.
func compiledPoolSchema() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	const url = "schema://question-pool.json"
	if err := c.AddResource(url, poolSchema); err != nil {
		return nil, err
	}
	return c.Compile(url)
}
