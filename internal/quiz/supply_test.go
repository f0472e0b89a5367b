package quiz

import (
	"fmt"
	"math/rand"
	"testing"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestGeneratedSupplyDedupeKeysUnique(t *testing.T) {
	for name := range families {
		t.Run(name, func(t *testing.T) {
			s, err := NewGeneratedSupply(name, 10, testRNG())
			if err != nil {
				t.Fatalf("new supply: %v", err)
			}

			seen := map[string]int{}
			for i := 0; i < s.Count(); i++ {
				q, err := s.Question(i)
				if err != nil {
					t.Fatalf("question %d: %v", i, err)
				}
				if prev, dup := seen[q.Key]; dup {
					t.Errorf("question %d reuses key %q of question %d", i, q.Key, prev)
				}
				seen[q.Key] = i
			}
		})
	}
}

func TestGeneratedSupplyMemoizes(t *testing.T) {
	s, err := NewGeneratedSupply("number-patterns", 10, testRNG())
	if err != nil {
		t.Fatalf("new supply: %v", err)
	}

	first, err := s.Question(3)
	if err != nil {
		t.Fatalf("first access: %v", err)
	}
	again, err := s.Question(3)
	if err != nil {
		t.Fatalf("second access: %v", err)
	}
	if first != again {
		t.Error("re-reading an index must return the same question instance")
	}
}

func TestGeneratedSupplyIndexOutOfRange(t *testing.T) {
	s, err := NewGeneratedSupply("number-patterns", 5, testRNG())
	if err != nil {
		t.Fatalf("new supply: %v", err)
	}
	if _, err := s.Question(-1); err == nil {
		t.Error("negative index should error")
	}
	if _, err := s.Question(5); err == nil {
		t.Error("index == count should error")
	}
}

func TestGeneratedSupplyForcedUniqueFallback(t *testing.T) {
	// A generator with a single possible key: every question after the
	// first collides, forcing the fallback path.
	constant := func(_ *rand.Rand) QuestionSpec {
		return QuestionSpec{
			Prompt:     "What is 1 + 1?",
			Kind:       KindFreeText,
			Answer:     "2",
			AnswerType: AnswerTypeInteger,
			Key:        "const",
		}
	}
	s := &GeneratedSupply{
		family: Family{Name: "test", Generators: []Generator{constant}},
		count:  4,
		rng:    testRNG(),
		used:   NewKeySet(),
		memo:   make(map[int]*QuestionSpec),
	}

	seen := map[string]bool{}
	for i := 0; i < 4; i++ {
		q, err := s.Question(i)
		if err != nil {
			t.Fatalf("question %d: %v", i, err)
		}
		if seen[q.Key] {
			t.Errorf("question %d: key %q reused despite fallback", i, q.Key)
		}
		seen[q.Key] = true
	}
}

func TestAllGeneratorsProduceValidMultipleChoice(t *testing.T) {
	rng := testRNG()
	for name, family := range families {
		for gi, generate := range family.Generators {
			for trial := 0; trial < 50; trial++ {
				q := generate(rng)
				if q.Kind != KindMultipleChoice {
					continue
				}
				if !containsOnce(q.Options, q.Answer) {
					t.Fatalf("%s generator %d trial %d: options %v must contain answer %q exactly once",
						name, gi, trial, q.Options, q.Answer)
				}
				unique := map[string]bool{}
				for _, o := range q.Options {
					if unique[o] {
						t.Fatalf("%s generator %d trial %d: duplicate option %q", name, gi, trial, o)
					}
					unique[o] = true
				}
			}
		}
	}
}

func TestIntegerDistractors(t *testing.T) {
	rng := testRNG()
	for _, correct := range []int64{0, 1, 7, 100} {
		ds := integerDistractors(rng, correct, 3, false)
		if len(ds) != 3 {
			t.Fatalf("correct=%d: got %d distractors, want 3", correct, len(ds))
		}
		seen := map[string]bool{}
		for _, d := range ds {
			if d == fmt.Sprint(correct) {
				t.Errorf("correct=%d: distractor equals the answer", correct)
			}
			if seen[d] {
				t.Errorf("correct=%d: duplicate distractor %s", correct, d)
			}
			if d[0] == '-' {
				t.Errorf("correct=%d: negative distractor %s in non-negative domain", correct, d)
			}
			seen[d] = true
		}
	}
}

func TestPoolSupplyNoRepeatUntilExhausted(t *testing.T) {
	pool := make([]QuestionSpec, 5)
	for i := range pool {
		pool[i] = QuestionSpec{
			Prompt:     fmt.Sprintf("q%d", i),
			Kind:       KindFreeText,
			Answer:     "1",
			AnswerType: AnswerTypeInteger,
			Key:        fmt.Sprintf("pool:%d", i),
		}
	}

	// 10 questions over a 5-question pool: two full passes, each a
	// permutation of the whole pool.
	s, err := NewPoolSupply(pool, 10, testRNG())
	if err != nil {
		t.Fatalf("new supply: %v", err)
	}

	var firstPass, secondPass []string
	for i := 0; i < 10; i++ {
		q, err := s.Question(i)
		if err != nil {
			t.Fatalf("question %d: %v", i, err)
		}
		if i < 5 {
			firstPass = append(firstPass, q.Key)
		} else {
			secondPass = append(secondPass, q.Key)
		}
	}

	for _, pass := range [][]string{firstPass, secondPass} {
		seen := map[string]bool{}
		for _, k := range pass {
			if seen[k] {
				t.Errorf("key %q repeated within one pass through the pool", k)
			}
			seen[k] = true
		}
		if len(seen) != 5 {
			t.Errorf("pass served %d distinct questions, want all 5", len(seen))
		}
	}
}

func TestPoolSupplyFirstAccessFarAhead(t *testing.T) {
	pool := make([]QuestionSpec, 2)
	for i := range pool {
		pool[i] = QuestionSpec{
			Prompt:     fmt.Sprintf("q%d", i),
			Kind:       KindFreeText,
			Answer:     "1",
			AnswerType: AnswerTypeInteger,
			Key:        fmt.Sprintf("pool:%d", i),
		}
	}

	// Index 6 needs four passes through a 2-question pool before any
	// earlier index has been dealt.
	s, err := NewPoolSupply(pool, 7, testRNG())
	if err != nil {
		t.Fatalf("new supply: %v", err)
	}
	q, err := s.Question(6)
	if err != nil {
		t.Fatalf("question 6: %v", err)
	}
	if q.Key != "pool:0" && q.Key != "pool:1" {
		t.Errorf("unexpected key %q", q.Key)
	}
}

func TestPoolSupplyShufflesOptionsPerDeal(t *testing.T) {
	pool := []QuestionSpec{{
		Prompt:     "pick",
		Kind:       KindMultipleChoice,
		Options:    []string{"1", "2", "3", "4"},
		Answer:     "3",
		AnswerType: AnswerTypeInteger,
		Key:        "pool:0",
	}}

	s, err := NewPoolSupply(pool, 1, testRNG())
	if err != nil {
		t.Fatalf("new supply: %v", err)
	}
	q, err := s.Question(0)
	if err != nil {
		t.Fatalf("question: %v", err)
	}
	if !containsOnce(q.Options, "3") {
		t.Errorf("shuffled options %v must keep the answer exactly once", q.Options)
	}
	if len(q.Options) != 4 {
		t.Errorf("shuffle changed option count: %v", q.Options)
	}
}

func TestShuffleOptionsPreservesElements(t *testing.T) {
	rng := testRNG()
	in := []string{"a", "b", "c", "d"}
	for trial := 0; trial < 100; trial++ {
		out := shuffleOptions(rng, in)
		if len(out) != len(in) {
			t.Fatalf("length changed: %v", out)
		}
		counts := map[string]int{}
		for _, s := range out {
			counts[s]++
		}
		for _, s := range in {
			if counts[s] != 1 {
				t.Fatalf("element %q count %d after shuffle", s, counts[s])
			}
		}
	}
}
