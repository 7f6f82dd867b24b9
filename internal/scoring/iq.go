package scoring

import (
	"fmt"

	"xinli/pkg/utils"
)

const (
	IQQuestionCount = 60
	MinTestAge      = 10
	MaxTestAge      = 80
)

// correctAnswers holds the 1-based correct option for each of the 60
// Raven-style items, 12 per set across sets A-E.
var correctAnswers = [IQQuestionCount]int{
	4, 5, 1, 2, 6, 3, 6, 2, 1, 3, 4, 5,
	2, 6, 1, 2, 1, 3, 5, 6, 4, 3, 4, 5,
	8, 2, 3, 8, 7, 4, 5, 1, 7, 6, 1, 2,
	3, 4, 3, 7, 8, 6, 5, 4, 1, 2, 5, 6,
	7, 6, 8, 2, 1, 5, 1, 6, 3, 2, 4, 5,
}

// answerCounts is the number of options per item in each set: sets A
// and B present 6 options, C through E present 8.
var answerCounts = [5]int{6, 6, 8, 8, 8}

// scoreToIQ maps a raw correct count to a base IQ. Counts below 15
// have no entry and fall back to the floor value of 60.
var scoreToIQ = map[int]int{
	15: 62, 16: 65, 17: 65, 18: 66, 19: 67, 20: 69, 21: 70, 22: 71,
	23: 72, 24: 73, 25: 75, 26: 76, 27: 77, 28: 79, 29: 80, 30: 82,
	31: 83, 32: 84, 33: 86, 34: 87, 35: 88, 36: 90, 37: 91, 38: 92,
	39: 94, 40: 95, 41: 96, 42: 98, 43: 99, 44: 100, 45: 102, 46: 104,
	47: 106, 48: 108, 49: 110, 50: 112, 51: 114, 52: 116, 53: 118,
	54: 120, 55: 122, 56: 124, 57: 126, 58: 128, 59: 130, 60: 140,
}

const iqFloor = 60

func optionCount(questionIndex int) int {
	return answerCounts[questionIndex/12]
}

// ageQuotient scales the base score down in bands above age 30.
func ageQuotient(age int) int {
	switch {
	case age > 55:
		return 70
	case age > 50:
		return 76
	case age > 45:
		return 82
	case age > 40:
		return 88
	case age > 35:
		return 93
	case age > 30:
		return 97
	default:
		return 100
	}
}

// ScoreIQ counts correct answers against the fixed key, maps the raw
// count through the base-IQ table and applies the age quotient,
// truncating the product. A nil entry means the question was skipped.
// Answer indices are zero-based and must be within the option count of
// their item; out-of-range indices are rejected rather than clamped.
func ScoreIQ(answers []*int, age int) (*IQResult, error) {
	if len(answers) != IQQuestionCount {
		return nil, fmt.Errorf("%w: expected %d answers, got %d", utils.ErrInvalidInput, IQQuestionCount, len(answers))
	}
	if age < MinTestAge || age > MaxTestAge {
		return nil, fmt.Errorf("%w: age must be between %d and %d", utils.ErrInvalidInput, MinTestAge, MaxTestAge)
	}

	correctCount := 0
	for i, a := range answers {
		if a == nil {
			continue
		}
		if *a < 0 || *a >= optionCount(i) {
			return nil, fmt.Errorf("%w: answer %d out of range for question %d", utils.ErrInvalidInput, *a, i+1)
		}
		if *a+1 == correctAnswers[i] {
			correctCount++
		}
	}

	base, ok := scoreToIQ[correctCount]
	if !ok {
		base = iqFloor
	}

	score := base * ageQuotient(age) / 100

	return &IQResult{
		Score:        score,
		CorrectCount: correctCount,
		Age:          age,
		Timestamp:    utils.NowUnixSeconds(),
	}, nil
}

// MaxIQScore is the top entry of the base table, reached only with a
// perfect raw score at full age quotient.
const MaxIQScore = 140

type iqBand struct {
	min         int
	level       string
	description string
}

var iqBands = []iqBand{
	{130, "非常优秀", "你的智力水平远超常人，属于极少数的天才级别。"},
	{120, "优秀", "你的智力水平非常出色，具有很强的逻辑推理能力。"},
	{110, "中上", "你的智力水平高于平均，具有良好的分析和推理能力。"},
	{90, "中等", "你的智力水平处于正常范围，与大多数人相当。"},
	{80, "中下", "你的智力水平略低于平均，但仍在正常范围内。"},
}

// IQLevel maps a final score to its qualitative tier.
func IQLevel(score int) (level, description string) {
	for _, b := range iqBands {
		if score >= b.min {
			return b.level, b.description
		}
	}
	return "偏低", "你的测试成绩偏低，可能受到测试环境或状态的影响。"
}
