package topic

import (
	"math/rand"
	"testing"
)

func TestRegistryLoads(t *testing.T) {
	all, err := All()
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}
	if len(all) == 0 {
		t.Fatal("registry is empty")
	}

	for _, tp := range all {
		if tp.MasteryThreshold <= 0 || tp.MasteryThreshold > 1 {
			t.Errorf("%s: threshold %v out of range", tp.ID, tp.MasteryThreshold)
		}
		if tp.QuestionCount <= 0 {
			t.Errorf("%s: non-positive question count", tp.ID)
		}
	}
}

func TestGet(t *testing.T) {
	tp, err := Get("class-5/pattern-identification")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if tp.SkillID != 2001 {
		t.Errorf("skill id = %d, want 2001", tp.SkillID)
	}
	if tp.Supply.Kind != SupplyGenerated {
		t.Errorf("supply kind = %q", tp.Supply.Kind)
	}

	if _, err := Get("class-99/nope"); err == nil {
		t.Error("expected error for unknown topic")
	}
}

func TestBuildSupplyForEveryTopic(t *testing.T) {
	all, err := All()
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}

	for _, tp := range all {
		t.Run(tp.ID, func(t *testing.T) {
			s, err := BuildSupply(tp, rand.New(rand.NewSource(7)))
			if err != nil {
				t.Fatalf("build supply: %v", err)
			}
			if s.Count() != tp.QuestionCount {
				t.Errorf("count = %d, want %d", s.Count(), tp.QuestionCount)
			}
			// Full sequence must be servable.
			for i := 0; i < s.Count(); i++ {
				q, err := s.Question(i)
				if err != nil {
					t.Fatalf("question %d: %v", i, err)
				}
				if q.Prompt == "" || q.Answer == "" {
					t.Errorf("question %d incomplete: %+v", i, q)
				}
			}
		})
	}
}

func TestBuildSupplyUnknownKind(t *testing.T) {
	_, err := BuildSupply(Topic{ID: "x", Supply: SupplyConfig{Kind: "llm"}}, rand.New(rand.NewSource(1)))
	if err == nil {
		t.Error("expected error for unknown supply kind")
	}
}
