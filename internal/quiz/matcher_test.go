package quiz

import "testing"

func TestMatchFreeText(t *testing.T) {
	tests := []struct {
		name       string
		learner    string
		answer     string
		answerType AnswerType
		want       bool
	}{
		{"integer exact", "623", "623", AnswerTypeInteger, true},
		{"integer leading zeros", "007", "7", AnswerTypeInteger, true},
		{"integer whitespace", "  42 ", "42", AnswerTypeInteger, true},
		{"integer wrong", "624", "623", AnswerTypeInteger, false},
		{"integer garbage", "abc", "623", AnswerTypeInteger, false},
		{"decimal trailing zeros", "3.50", "3.5", AnswerTypeDecimal, true},
		{"decimal leading zero", ".5", "0.5", AnswerTypeDecimal, true},
		{"decimal wrong", "3.51", "3.5", AnswerTypeDecimal, false},
		{"fraction equivalent", "2/4", "1/2", AnswerTypeFraction, true},
		{"fraction exact", "3/4", "3/4", AnswerTypeFraction, true},
		{"fraction negative den", "1/-2", "-1/2", AnswerTypeFraction, true},
		{"fraction zero den", "1/0", "1/2", AnswerTypeFraction, false},
		{"fraction as decimal", "0.5", "1/2", AnswerTypeFraction, true},
		{"fraction as decimal hundredths", "0.75", "3/4", AnswerTypeFraction, true},
		{"fraction as bare decimal point", ".5", "1/2", AnswerTypeFraction, true},
		{"fraction as negative decimal", "-0.5", "-1/2", AnswerTypeFraction, true},
		{"fraction as whole number", "2", "4/2", AnswerTypeFraction, true},
		{"fraction decimal wrong", "0.6", "1/2", AnswerTypeFraction, false},
		{"fraction garbage", "abc", "1/2", AnswerTypeFraction, false},
		{"text case insensitive", "Triangle", "triangle", AnswerTypeText, true},
		{"text wrong", "square", "triangle", AnswerTypeText, false},
		{"empty input", "", "42", AnswerTypeInteger, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &QuestionSpec{
				Kind:       KindFreeText,
				Answer:     tt.answer,
				AnswerType: tt.answerType,
			}
			if got := Match(tt.learner, q); got != tt.want {
				t.Errorf("Match(%q vs %q) = %v, want %v", tt.learner, tt.answer, got, tt.want)
			}
		})
	}
}

func TestMatchMultipleChoice(t *testing.T) {
	q := &QuestionSpec{
		Kind:    KindMultipleChoice,
		Options: []string{"12", "14", "16", "18"},
		Answer:  "16",
	}

	if !Match("16", q) {
		t.Error("exact option text should match")
	}
	if !Match(" 16 ", q) {
		t.Error("whitespace around the option should be ignored")
	}
	if Match("12", q) {
		t.Error("wrong option should not match")
	}
	if Match("", q) {
		t.Error("empty input should not match")
	}
}
