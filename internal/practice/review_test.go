package practice

import (
	"reflect"
	"testing"
)

func TestOutstandingUnansweredAndSkipped(t *testing.T) {
	s := NewAnswerStore()
	s.Check(0, "a", true, 1)
	s.Skip(1, 1)
	s.Check(3, "b", false, 1)
	// 2 and 4 never touched.

	got := Outstanding(s, 5)
	want := []int{1, 2, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Outstanding = %v, want %v", got, want)
	}
}

func TestOutstandingEmptyWhenAllAnswered(t *testing.T) {
	s := NewAnswerStore()
	for i := 0; i < 4; i++ {
		s.Check(i, "x", false, 1)
	}
	if got := Outstanding(s, 4); got != nil {
		t.Errorf("Outstanding = %v, want nil", got)
	}
}

func TestOutstandingIncorrectAnswersNotIncluded(t *testing.T) {
	s := NewAnswerStore()
	s.Check(0, "wrong", false, 1)
	if got := Outstanding(s, 1); got != nil {
		t.Errorf("Outstanding = %v, want nil (incorrect is still answered)", got)
	}
}
