package quiz

import (
	"fmt"
	"math/rand"
	"strconv"
)

// Generator produces one candidate question from a source of
// randomness. Generators are pure: no hidden state, dedupe is the
// caller's job via the candidate's Key.
type Generator func(rng *rand.Rand) QuestionSpec

// Family is the ordered set of generators behind one generated topic.
// The supply picks a generator by index mod len(Generators), matching
// how the topic pages cycle question types.
type Family struct {
	Name       string
	Generators []Generator
}

// families is the registry of generator families, keyed by the name
// used in the topic registry.
var families = map[string]Family{
	"number-patterns": {
		Name: "number-patterns",
		Generators: []Generator{
			arithmeticPattern,
			geometricPattern,
			alternatingPattern,
		},
	},
	"fraction-decimal": {
		Name: "fraction-decimal",
		Generators: []Generator{
			tenthToDecimal,
			hundredthToDecimal,
			decimalToFraction,
		},
	},
	"multiply-divide": {
		Name: "multiply-divide",
		Generators: []Generator{
			multiplicationProblem,
			divisionProblem,
		},
	},
}

// FamilyByName looks up a registered generator family.
func FamilyByName(name string) (Family, error) {
	f, ok := families[name]
	if !ok {
		return Family{}, fmt.Errorf("unknown generator family %q", name)
	}
	return f, nil
}

func randomInt(rng *rand.Rand, min, max int) int {
	return rng.Intn(max-min+1) + min
}

// arithmeticPattern: identify the next term of a + kd.
func arithmeticPattern(rng *rand.Rand) QuestionSpec {
	start := randomInt(rng, 1, 20)
	diff := randomInt(rng, 2, 10)

	seq := make([]string, 4)
	for i := range seq {
		seq[i] = strconv.Itoa(start + i*diff)
	}
	next := start + 4*diff
	answer := strconv.Itoa(next)

	distractors := []string{
		strconv.Itoa(start + 5*diff),
		strconv.Itoa(next + 1),
		strconv.Itoa(start + 3*diff),
	}

	return QuestionSpec{
		Prompt: fmt.Sprintf("Identify the next number in the pattern: %s, %s, %s, %s, ...",
			seq[0], seq[1], seq[2], seq[3]),
		Kind:       KindMultipleChoice,
		Options:    buildChoices(rng, answer, distractors),
		Answer:     answer,
		AnswerType: AnswerTypeInteger,
		Explanation: fmt.Sprintf("The difference between consecutive terms is %d. %s + %d = %s.",
			diff, seq[3], diff, answer),
		Hint:       "Look at how much each number grows from the one before it.",
		Difficulty: "Medium",
		Key:        dedupeKey("arith", start, diff),
	}
}

// geometricPattern: identify the next term of a * r^k.
func geometricPattern(rng *rand.Rand) QuestionSpec {
	start := randomInt(rng, 1, 5)
	ratio := randomInt(rng, 2, 3)

	terms := make([]int, 5)
	terms[0] = start
	for i := 1; i < 5; i++ {
		terms[i] = terms[i-1] * ratio
	}
	answer := strconv.Itoa(terms[4])

	distractors := []string{
		strconv.Itoa(terms[4] * ratio),
		strconv.Itoa(terms[4] + ratio),
		strconv.Itoa(terms[3]),
	}

	return QuestionSpec{
		Prompt: fmt.Sprintf("What comes next in the sequence: %d, %d, %d, %d, ...?",
			terms[0], terms[1], terms[2], terms[3]),
		Kind:       KindMultipleChoice,
		Options:    buildChoices(rng, answer, distractors),
		Answer:     answer,
		AnswerType: AnswerTypeInteger,
		Explanation: fmt.Sprintf("Each term is multiplied by %d to get the next term. %d x %d = %s.",
			ratio, terms[3], ratio, answer),
		Hint:       "Try dividing a term by the one before it.",
		Difficulty: "Medium",
		Key:        dedupeKey("geom", start, ratio),
	}
}

// alternatingPattern: two interleaved +1 sequences.
func alternatingPattern(rng *rand.Rand) QuestionSpec {
	a := randomInt(rng, 1, 10)
	b := randomInt(rng, 11, 20)

	seq := []int{a, b, a + 1, b + 1, a + 2, b + 2}
	answer := strconv.Itoa(a + 3)

	distractors := []string{
		strconv.Itoa(b + 3),
		strconv.Itoa(a + 4),
		strconv.Itoa(b + 2),
	}

	return QuestionSpec{
		Prompt: fmt.Sprintf("Observe the alternating pattern: %d, %d, %d, %d, %d, %d, ... What is the next number?",
			seq[0], seq[1], seq[2], seq[3], seq[4], seq[5]),
		Kind:       KindMultipleChoice,
		Options:    buildChoices(rng, answer, distractors),
		Answer:     answer,
		AnswerType: AnswerTypeInteger,
		Explanation: fmt.Sprintf("Two patterns are interleaved: %d, %d, %d, ... and %d, %d, %d, ... The next term belongs to the first one: %d + 1 = %s.",
			a, a+1, a+2, b, b+1, b+2, a+2, answer),
		Difficulty: "Hard",
		Key:        dedupeKey("alt", a, b),
	}
}

// tenthToDecimal: convert n/10 to its decimal form, typed in.
func tenthToDecimal(rng *rand.Rand) QuestionSpec {
	n := randomInt(rng, 1, 9)
	answer := fmt.Sprintf("0.%d", n)

	return QuestionSpec{
		Prompt:     fmt.Sprintf("Convert $\\frac{%d}{10}$ to a decimal.", n),
		Kind:       KindFreeText,
		Answer:     answer,
		AnswerType: AnswerTypeDecimal,
		Explanation: fmt.Sprintf("$\\frac{%d}{10}$ means %d tenths. In decimal form this is written as %s.",
			n, n, answer),
		Hint:       "Tenths go in the first place after the decimal point.",
		Difficulty: "Easy",
		Key:        dedupeKey("tenth", n),
	}
}

// hundredthToDecimal: pick the decimal form of n/100.
func hundredthToDecimal(rng *rand.Rand) QuestionSpec {
	n := randomInt(rng, 1, 9)
	answer := fmt.Sprintf("0.0%d", n)

	distractors := []string{
		fmt.Sprintf("0.%d", n),
		fmt.Sprintf("%d.0", n),
		fmt.Sprintf("1.0%d", n),
	}

	return QuestionSpec{
		Prompt:     fmt.Sprintf("Convert $\\frac{%d}{100}$ to a decimal.", n),
		Kind:       KindMultipleChoice,
		Options:    buildChoices(rng, answer, distractors),
		Answer:     answer,
		AnswerType: AnswerTypeDecimal,
		Explanation: fmt.Sprintf("$\\frac{%d}{100}$ means %d hundredths, so a zero holds the tenths place: %s.",
			n, n, answer),
		Difficulty: "Easy",
		Key:        dedupeKey("hundredth", n),
	}
}

// decimalToFraction: give the fraction equal to 0.n.
func decimalToFraction(rng *rand.Rand) QuestionSpec {
	n := randomInt(rng, 1, 9)
	answer := fmt.Sprintf("%d/10", n)

	return QuestionSpec{
		Prompt:     fmt.Sprintf("What fraction is equal to the decimal $0.%d$? Answer like 3/10.", n),
		Kind:       KindFreeText,
		Answer:     answer,
		AnswerType: AnswerTypeFraction,
		Explanation: fmt.Sprintf("$0.%d$ has %d in the tenths place, so it equals $\\frac{%d}{10}$.",
			n, n, n),
		Difficulty: "Easy",
		Key:        dedupeKey("dec2frac", n),
	}
}

// multiplicationProblem: short word problem, typed integer answer.
func multiplicationProblem(rng *rand.Rand) QuestionSpec {
	rows := randomInt(rng, 12, 25)
	cols := randomInt(rng, 6, 15)
	answer := strconv.Itoa(rows * cols)

	return QuestionSpec{
		Prompt: fmt.Sprintf("A school garden has %d rows of plants with %d plants in each row. How many plants are there in all?",
			rows, cols),
		Kind:       KindFreeText,
		Answer:     answer,
		AnswerType: AnswerTypeInteger,
		Explanation: fmt.Sprintf("Multiply rows by plants per row: %d x %d = %s.",
			rows, cols, answer),
		Hint:       "Equal groups means multiplication.",
		Difficulty: "Medium",
		Key:        dedupeKey("mul", rows, cols),
	}
}

// divisionProblem: equal sharing, multiple choice.
func divisionProblem(rng *rand.Rand) QuestionSpec {
	per := randomInt(rng, 4, 12)
	groups := randomInt(rng, 5, 15)
	total := per * groups
	answer := strconv.Itoa(per)

	distractors := integerDistractors(rng, int64(per), 3, false)

	return QuestionSpec{
		Prompt: fmt.Sprintf("%d marbles are shared equally among %d children. How many marbles does each child get?",
			total, groups),
		Kind:       KindMultipleChoice,
		Options:    buildChoices(rng, answer, distractors),
		Answer:     answer,
		AnswerType: AnswerTypeInteger,
		Explanation: fmt.Sprintf("Divide the total by the number of children: %d / %d = %s.",
			total, groups, answer),
		Difficulty: "Medium",
		Key:        dedupeKey("div", total, groups),
	}
}
