// Package topic holds the practice topic registry: every topic page of
// the platform that embeds the practice runner, with its skill id,
// question count, mastery threshold, and question supply configuration.
package topic

import (
	"fmt"
	"math/rand"

	"github.com/mathsala/mathsala/internal/quiz"
)

// Topic is one practice topic as registered in topics.yaml.
type Topic struct {
	// ID is the namespaced topic key, e.g. "class-5/pattern-identification".
	// It doubles as the progress-flag key in the local store.
	ID string `yaml:"id"`

	// SkillID is the numeric skill identifier the backend knows.
	SkillID int `yaml:"skill_id"`

	// Name is the display name, e.g. "Pattern Identification".
	Name string `yaml:"name"`

	// Grade is the class the topic belongs to, e.g. "class-5".
	Grade string `yaml:"grade"`

	// Chapter is the chapter heading within the grade.
	Chapter string `yaml:"chapter"`

	// QuestionCount is the fixed length of one run's question sequence.
	QuestionCount int `yaml:"question_count"`

	// MasteryThreshold is the minimum correct fraction to mark the
	// topic complete. Observed range across the platform is 0.5-0.8.
	MasteryThreshold float64 `yaml:"mastery_threshold"`

	// Supply configures where this topic's questions come from.
	Supply SupplyConfig `yaml:"supply"`
}

// SupplyConfig selects and parameterizes the question source.
type SupplyConfig struct {
	// Kind is "generated" (procedural family) or "pool" (static file).
	Kind string `yaml:"kind"`

	// Family names the generator family for generated topics.
	Family string `yaml:"family,omitempty"`

	// Pool names the JSON pool file under pools/ for pool topics.
	Pool string `yaml:"pool,omitempty"`
}

const (
	SupplyGenerated = "generated"
	SupplyPool      = "pool"
)

// BuildSupply constructs the question supply for one run of t.
func BuildSupply(t Topic, rng *rand.Rand) (quiz.Supply, error) {
	switch t.Supply.Kind {
	case SupplyGenerated:
		return quiz.NewGeneratedSupply(t.Supply.Family, t.QuestionCount, rng)
	case SupplyPool:
		pool, err := loadPoolFile(t.Supply.Pool)
		if err != nil {
			return nil, fmt.Errorf("topic %s: %w", t.ID, err)
		}
		return quiz.NewPoolSupply(pool, t.QuestionCount, rng)
	default:
		return nil, fmt.Errorf("topic %s: unknown supply kind %q", t.ID, t.Supply.Kind)
	}
}
