package practice

import "testing"

func TestHydrateUnansweredIsEmpty(t *testing.T) {
	s := NewAnswerStore()
	sel := HydrateSelection(s, 0)
	if sel != (Selection{}) {
		t.Errorf("expected empty selection, got %+v", sel)
	}
}

func TestHydrateRestoresCommittedState(t *testing.T) {
	s := NewAnswerStore()
	s.Check(0, "0.3", true, 12)
	s.Check(1, "15", false, 9)
	s.Skip(2, 4)

	tests := []struct {
		index int
		want  Selection
	}{
		{0, Selection{Value: "0.3", Submitted: true, Correct: true}},
		{1, Selection{Value: "15", Submitted: true}},
		{2, Selection{Submitted: true, Skipped: true}},
	}
	for _, tt := range tests {
		if got := HydrateSelection(s, tt.index); got != tt.want {
			t.Errorf("index %d: got %+v, want %+v", tt.index, got, tt.want)
		}
	}
}

func TestHydrateIsStableAcrossNavigation(t *testing.T) {
	s := NewAnswerStore()
	s.Check(1, "8", true, 3)

	first := HydrateSelection(s, 1)
	// Visit other indices, then come back.
	HydrateSelection(s, 0)
	HydrateSelection(s, 2)
	second := HydrateSelection(s, 1)

	if first != second {
		t.Errorf("selection changed across navigation: %+v vs %+v", first, second)
	}
}
