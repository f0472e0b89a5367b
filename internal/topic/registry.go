package topic

import (
	"embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/mathsala/mathsala/internal/quiz"
)

//go:embed topics.yaml pools/*.json
var registryFS embed.FS

var (
	loadOnce sync.Once
	loadErr  error
	topics   []Topic
	byID     map[string]Topic
)

// All returns every registered topic, ordered by grade then name.
func All() ([]Topic, error) {
	load()
	return topics, loadErr
}

// Get returns the topic with the given id.
func Get(id string) (Topic, error) {
	load()
	if loadErr != nil {
		return Topic{}, loadErr
	}
	t, ok := byID[id]
	if !ok {
		return Topic{}, fmt.Errorf("unknown topic %q", id)
	}
	return t, nil
}

func load() {
	loadOnce.Do(func() {
		raw, err := registryFS.ReadFile("topics.yaml")
		if err != nil {
			loadErr = fmt.Errorf("read topic registry: %w", err)
			return
		}

		var reg struct {
			Topics []Topic `yaml:"topics"`
		}
		if err := yaml.Unmarshal(raw, &reg); err != nil {
			loadErr = fmt.Errorf("parse topic registry: %w", err)
			return
		}

		byID = make(map[string]Topic, len(reg.Topics))
		for i, t := range reg.Topics {
			if err := validate(t); err != nil {
				loadErr = fmt.Errorf("topic %d (%s): %w", i, t.ID, err)
				return
			}
			if _, dup := byID[t.ID]; dup {
				loadErr = fmt.Errorf("duplicate topic id %q", t.ID)
				return
			}
			byID[t.ID] = t
		}

		topics = reg.Topics
		sort.Slice(topics, func(i, j int) bool {
			if topics[i].Grade != topics[j].Grade {
				return topics[i].Grade < topics[j].Grade
			}
			return topics[i].Name < topics[j].Name
		})
	})
}

func validate(t Topic) error {
	if t.ID == "" {
		return fmt.Errorf("missing id")
	}
	if t.SkillID <= 0 {
		return fmt.Errorf("skill_id must be positive")
	}
	if t.Name == "" {
		return fmt.Errorf("missing name")
	}
	if t.QuestionCount <= 0 {
		return fmt.Errorf("question_count must be positive")
	}
	if t.MasteryThreshold <= 0 || t.MasteryThreshold > 1 {
		return fmt.Errorf("mastery_threshold %v outside (0, 1]", t.MasteryThreshold)
	}

	switch t.Supply.Kind {
	case SupplyGenerated:
		if _, err := quiz.FamilyByName(t.Supply.Family); err != nil {
			return err
		}
	case SupplyPool:
		if _, err := loadPoolFile(t.Supply.Pool); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown supply kind %q", t.Supply.Kind)
	}
	return nil
}

// loadPoolFile reads and validates an embedded pool file.
func loadPoolFile(name string) ([]quiz.QuestionSpec, error) {
	if name == "" {
		return nil, fmt.Errorf("pool supply needs a pool file")
	}
	raw, err := registryFS.ReadFile("pools/" + name)
	if err != nil {
		return nil, fmt.Errorf("read pool %s: %w", name, err)
	}
	specs, err := quiz.LoadPool(raw)
	if err != nil {
		return nil, fmt.Errorf("pool %s: %w", name, err)
	}
	return specs, nil
}
