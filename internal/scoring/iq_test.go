package scoring

import (
	"errors"
	"testing"

	"xinli/pkg/utils"
)

func intPtr(v int) *int { return &v }

// answerVector builds a 60-item vector with the first n answers
// correct and the rest skipped.
func answerVector(nCorrect int) []*int {
	answers := make([]*int, IQQuestionCount)
	for i := 0; i < nCorrect; i++ {
		answers[i] = intPtr(correctAnswers[i] - 1)
	}
	return answers
}

func TestScoreIQCorrectCount(t *testing.T) {
	for _, n := range []int{0, 1, 15, 30, 45, 60} {
		res, err := ScoreIQ(answerVector(n), 25)
		if err != nil {
			t.Fatalf("ScoreIQ(%d correct): %v", n, err)
		}
		if res.CorrectCount != n {
			t.Errorf("correctCount = %d, want %d", res.CorrectCount, n)
		}
	}
}

func TestScoreIQWrongAnswersDoNotCount(t *testing.T) {
	answers := make([]*int, IQQuestionCount)
	for i := range answers {
		// Pick any in-range index that differs from the key.
		wrong := correctAnswers[i] % optionCount(i)
		if wrong+1 == correctAnswers[i] {
			wrong = (wrong + 1) % optionCount(i)
		}
		answers[i] = intPtr(wrong)
	}
	res, err := ScoreIQ(answers, 25)
	if err != nil {
		t.Fatalf("ScoreIQ: %v", err)
	}
	if res.CorrectCount != 0 {
		t.Errorf("correctCount = %d, want 0", res.CorrectCount)
	}
	// Below the table range the base falls back to the floor.
	if res.Score != 60 {
		t.Errorf("score = %d, want floor 60", res.Score)
	}
}

func TestScoreIQTableLookup(t *testing.T) {
	// Young respondents keep the base score unchanged.
	cases := []struct{ correct, want int }{
		{15, 62},
		{30, 82},
		{45, 102},
		{59, 130},
		{60, 140},
	}
	for _, tc := range cases {
		res, err := ScoreIQ(answerVector(tc.correct), 25)
		if err != nil {
			t.Fatalf("ScoreIQ(%d correct): %v", tc.correct, err)
		}
		if res.Score != tc.want {
			t.Errorf("score(%d correct, age 25) = %d, want %d", tc.correct, res.Score, tc.want)
		}
	}
}

func TestScoreIQAgeQuotientTruncates(t *testing.T) {
	// 45 correct -> base 102. 102*93/100 = 94.86, truncated to 94.
	res, err := ScoreIQ(answerVector(45), 38)
	if err != nil {
		t.Fatalf("ScoreIQ: %v", err)
	}
	if res.Score != 94 {
		t.Errorf("score(45 correct, age 38) = %d, want 94", res.Score)
	}

	// Oldest band scales by 70%.
	res, err = ScoreIQ(answerVector(60), 60)
	if err != nil {
		t.Fatalf("ScoreIQ: %v", err)
	}
	if res.Score != 98 {
		t.Errorf("score(60 correct, age 60) = %d, want 98", res.Score)
	}
}

func TestScoreIQBounds(t *testing.T) {
	for _, n := range []int{0, 15, 30, 60} {
		for _, age := range []int{10, 31, 41, 56, 80} {
			res, err := ScoreIQ(answerVector(n), age)
			if err != nil {
				t.Fatalf("ScoreIQ(%d, age %d): %v", n, age, err)
			}
			if res.Score < 0 || res.Score > MaxIQScore {
				t.Errorf("score(%d, age %d) = %d, out of [0,%d]", n, age, res.Score, MaxIQScore)
			}
		}
	}
}

func TestScoreIQRejectsBadInput(t *testing.T) {
	if _, err := ScoreIQ(answerVector(10)[:59], 25); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("short vector: err = %v, want ErrInvalidInput", err)
	}
	if _, err := ScoreIQ(answerVector(10), 9); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("age too low: err = %v, want ErrInvalidInput", err)
	}
	if _, err := ScoreIQ(answerVector(10), 81); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("age too high: err = %v, want ErrInvalidInput", err)
	}

	answers := answerVector(0)
	answers[0] = intPtr(-1)
	if _, err := ScoreIQ(answers, 25); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("negative index: err = %v, want ErrInvalidInput", err)
	}

	// Set A items only have 6 options; index 6 is out of range there
	// but legal in set C.
	answers = answerVector(0)
	answers[0] = intPtr(6)
	if _, err := ScoreIQ(answers, 25); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("index past option count: err = %v, want ErrInvalidInput", err)
	}
	answers = answerVector(0)
	answers[24] = intPtr(6)
	if _, err := ScoreIQ(answers, 25); err != nil {
		t.Errorf("index 6 in an 8-option set: err = %v, want nil", err)
	}
}

func TestIQLevelBands(t *testing.T) {
	cases := []struct {
		score int
		level string
	}{
		{140, "非常优秀"},
		{130, "非常优秀"},
		{129, "优秀"},
		{120, "优秀"},
		{110, "中上"},
		{109, "中等"},
		{90, "中等"},
		{89, "中下"},
		{80, "中下"},
		{79, "偏低"},
		{42, "偏低"},
	}
	for _, tc := range cases {
		level, desc := IQLevel(tc.score)
		if level != tc.level {
			t.Errorf("IQLevel(%d) = %q, want %q", tc.score, level, tc.level)
		}
		if desc == "" {
			t.Errorf("IQLevel(%d) returned empty description", tc.score)
		}
	}
}
