package quiz

import (
	"strings"
	"testing"
)

const validPool = `{
	"questions": [
		{
			"template_id": "perimeter-1",
			"prompt": "A square has sides of 5 cm. What is its perimeter?",
			"kind": "multiple_choice",
			"options": ["20 cm", "25 cm", "10 cm", "15 cm"],
			"answer": "20 cm",
			"answer_type": "text",
			"explanation": "Perimeter of a square is 4 times the side: 4 x 5 = 20 cm.",
			"difficulty": "Easy"
		},
		{
			"prompt": "What is 345 + 278?",
			"kind": "free_text",
			"answer": "623",
			"answer_type": "integer"
		}
	]
}`

func TestLoadPoolValid(t *testing.T) {
	specs, err := LoadPool([]byte(validPool))
	if err != nil {
		t.Fatalf("load valid pool: %v", err)
	}
	if len(specs) != 2 {
		t.Fatalf("got %d questions, want 2", len(specs))
	}
	if specs[0].Kind != KindMultipleChoice {
		t.Errorf("first question kind = %q", specs[0].Kind)
	}
	if specs[0].TemplateID != "perimeter-1" {
		t.Errorf("template id = %q", specs[0].TemplateID)
	}
	if specs[1].Kind != KindFreeText {
		t.Errorf("second question kind = %q", specs[1].Kind)
	}
	if specs[0].Key == specs[1].Key {
		t.Error("pool entries must get distinct dedupe keys")
	}
}

func TestLoadPoolRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"empty questions", `{"questions": []}`},
		{"missing answer", `{"questions": [{"prompt": "p", "kind": "free_text", "answer_type": "integer"}]}`},
		{"bad kind", `{"questions": [{"prompt": "p", "kind": "essay", "answer": "1", "answer_type": "integer"}]}`},
		{"bad answer type", `{"questions": [{"prompt": "p", "kind": "free_text", "answer": "1", "answer_type": "roman"}]}`},
		{"unknown field", `{"questions": [{"prompt": "p", "kind": "free_text", "answer": "1", "answer_type": "integer", "points": 5}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadPool([]byte(tt.raw)); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}

func TestLoadPoolRejectsAnswerMissingFromOptions(t *testing.T) {
	raw := strings.Replace(validPool, `"answer": "20 cm"`, `"answer": "30 cm"`, 1)
	if _, err := LoadPool([]byte(raw)); err == nil {
		t.Error("expected error when the answer is not among the options")
	}
}
