package quiz

import (
	"fmt"
	"math/rand"
)

// maxDedupeAttempts bounds the regeneration loop when a candidate's
// dedupe key collides with one already used this session.
const maxDedupeAttempts = 10

// GeneratedSupply produces questions lazily from a generator family,
// memoizing per index so back-navigation re-serves the same question.
type GeneratedSupply struct {
	family Family
	count  int
	rng    *rand.Rand
	used   KeySet
	memo   map[int]*QuestionSpec
}

// NewGeneratedSupply creates a supply of count questions drawn from the
// named family. The rng is owned by the supply.
func NewGeneratedSupply(familyName string, count int, rng *rand.Rand) (*GeneratedSupply, error) {
	family, err := FamilyByName(familyName)
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		return nil, fmt.Errorf("question count must be positive, got %d", count)
	}
	return &GeneratedSupply{
		family: family,
		count:  count,
		rng:    rng,
		used:   NewKeySet(),
		memo:   make(map[int]*QuestionSpec),
	}, nil
}

func (s *GeneratedSupply) Count() int { return s.count }

// Question returns the question at index, generating and memoizing it
// on first access. The generator is picked by index mod family size;
// candidates are regenerated up to maxDedupeAttempts times until their
// key is unused, then a forced-unique key is substituted so the loop
// always terminates.
func (s *GeneratedSupply) Question(index int) (*QuestionSpec, error) {
	if index < 0 || index >= s.count {
		return nil, fmt.Errorf("question index %d out of range [0,%d)", index, s.count)
	}
	if q, ok := s.memo[index]; ok {
		return q, nil
	}

	generate := s.family.Generators[index%len(s.family.Generators)]

	var q QuestionSpec
	for attempt := 0; attempt < maxDedupeAttempts; attempt++ {
		q = generate(s.rng)
		if !s.used.Has(q.Key) {
			s.used.Add(q.Key)
			s.memo[index] = &q
			return &q, nil
		}
	}

	// Parameter space exhausted for this generator; force uniqueness so
	// the session still gets its full question count.
	q.Key = dedupeKey(q.Key, "forced", index)
	s.used.Add(q.Key)
	s.memo[index] = &q
	return &q, nil
}

// UsedKeys exposes the dedupe set. The set only grows during a run.
func (s *GeneratedSupply) UsedKeys() KeySet { return s.used }

// PoolSupply serves a fixed-size sequence from a static pool: the pool
// is shuffled once, dealt in order, and reshuffled only after every
// entry has been served, so no question repeats until the pool is
// exhausted.
type PoolSupply struct {
	pool  []QuestionSpec
	order []int
	count int
	rng   *rand.Rand
	memo  map[int]*QuestionSpec
}

// NewPoolSupply creates a supply of count questions rotating through
// pool. The pool must be non-empty.
func NewPoolSupply(pool []QuestionSpec, count int, rng *rand.Rand) (*PoolSupply, error) {
	if len(pool) == 0 {
		return nil, fmt.Errorf("question pool is empty")
	}
	if count <= 0 {
		return nil, fmt.Errorf("question count must be positive, got %d", count)
	}
	return &PoolSupply{
		pool:  pool,
		count: count,
		rng:   rng,
		memo:  make(map[int]*QuestionSpec),
	}, nil
}

func (s *PoolSupply) Count() int { return s.count }

func (s *PoolSupply) Question(index int) (*QuestionSpec, error) {
	if index < 0 || index >= s.count {
		return nil, fmt.Errorf("question index %d out of range [0,%d)", index, s.count)
	}
	if q, ok := s.memo[index]; ok {
		return q, nil
	}

	for index >= len(s.order) {
		s.reshuffle()
	}

	q := s.pool[s.order[index]]
	// Present multiple-choice options in a fresh order each deal.
	if q.Kind == KindMultipleChoice {
		q.Options = shuffleOptions(s.rng, q.Options)
	}
	s.memo[index] = &q
	return &q, nil
}

// reshuffle appends a fresh permutation of the pool to the deal order.
// Called when the current order is exhausted; the dedupe guarantee is
// per pass, deliberately reset once the whole pool has been served.
func (s *PoolSupply) reshuffle() {
	perm := s.rng.Perm(len(s.pool))
	s.order = append(s.order, perm...)
}
