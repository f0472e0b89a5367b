package quiz

import (
	"fmt"
	"strconv"
	"strings"
)

// Match compares the learner's input against the correct answer.
//
// Normalization rules:
//   - Whitespace is trimmed
//   - Comparison is case-insensitive
//   - For fractions: equivalent fractions are accepted ("2/4" matches
//     "1/2"), as is a terminating decimal form ("0.5" matches "1/2")
//   - For decimals: trailing zeros are ignored ("3.50" matches "3.5")
//   - For integers: leading zeros are ignored ("007" matches "7")
//   - For multiple choice: the input must match the correct option text
func Match(learnerAnswer string, q *QuestionSpec) bool {
	learnerAnswer = strings.TrimSpace(learnerAnswer)
	if learnerAnswer == "" {
		return false
	}

	if q.Kind == KindMultipleChoice {
		return strings.EqualFold(learnerAnswer, strings.TrimSpace(q.Answer))
	}

	normalizedLearner, err := normalizeAnswer(learnerAnswer, q.AnswerType)
	if err != nil {
		return false
	}
	normalizedCorrect, err := normalizeAnswer(q.Answer, q.AnswerType)
	if err != nil {
		return false
	}
	return normalizedLearner == normalizedCorrect
}

// normalizeAnswer canonicalizes an answer string for comparison.
func normalizeAnswer(answer string, answerType AnswerType) (string, error) {
	answer = strings.TrimSpace(answer)

	switch answerType {
	case AnswerTypeInteger:
		n, err := strconv.ParseInt(answer, 10, 64)
		if err != nil {
			return "", fmt.Errorf("invalid integer: %w", err)
		}
		return strconv.FormatInt(n, 10), nil

	case AnswerTypeDecimal:
		f, err := strconv.ParseFloat(answer, 64)
		if err != nil {
			return "", fmt.Errorf("invalid decimal: %w", err)
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil

	case AnswerTypeFraction:
		num, den, err := fractionParts(answer)
		if err != nil {
			return "", err
		}
		if den == 0 {
			return "", fmt.Errorf("zero denominator")
		}
		// Normalize sign: negative sign on numerator only.
		if den < 0 {
			num = -num
			den = -den
		}
		g := gcd(abs(num), den)
		num /= g
		den /= g
		return fmt.Sprintf("%d/%d", num, den), nil

	default:
		return strings.ToLower(answer), nil
	}
}

// fractionParts parses a fraction in "a/b" form, or a plain integer or
// terminating decimal rendered as tenths/hundredths/... over a power
// of ten.
func fractionParts(s string) (int64, int64, error) {
	if strings.Contains(s, "/") {
		return parseFraction(s)
	}
	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")
	whole, frac, _ := strings.Cut(digits, ".")
	den := int64(1)
	for range frac {
		den *= 10
	}
	num, err := strconv.ParseInt(whole+frac, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid fraction: %q", s)
	}
	if neg {
		num = -num
	}
	return num, den, nil
}

// parseFraction parses "a/b" into numerator and denominator.
func parseFraction(s string) (int64, int64, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid fraction format: %q", s)
	}
	num, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid numerator: %w", err)
	}
	den, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid denominator: %w", err)
	}
	return num, den, nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
