package scoring

import (
	"errors"
	"testing"

	"xinli/pkg/utils"
)

func TestScoreCareerUniformAnswers(t *testing.T) {
	// First five items reverse to 1, so every trait sums 1+1=2.
	res, err := ScoreCareer([]int{5, 5, 5, 5, 5, 1, 1, 1, 1, 1})
	if err != nil {
		t.Fatalf("ScoreCareer: %v", err)
	}
	if len(res.FFMScores) != 5 {
		t.Fatalf("got %d trait scores, want 5", len(res.FFMScores))
	}
	for i, s := range res.FFMScores {
		if s.Percentage != 20 {
			t.Errorf("trait %d percentage = %d, want 20", i, s.Percentage)
		}
		if s.Trait != FFMTraits[i] {
			t.Errorf("trait %d = %q, want %q", i, s.Trait, FFMTraits[i])
		}
	}
}

func TestScoreCareerPercentageRange(t *testing.T) {
	vectors := [][]int{
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{5, 5, 5, 5, 5, 5, 5, 5, 5, 5},
		{1, 2, 3, 4, 5, 5, 4, 3, 2, 1},
		{3, 3, 3, 3, 3, 3, 3, 3, 3, 3},
	}
	for _, answers := range vectors {
		res, err := ScoreCareer(answers)
		if err != nil {
			t.Fatalf("ScoreCareer(%v): %v", answers, err)
		}
		for _, s := range res.FFMScores {
			if s.Percentage < 20 || s.Percentage > 100 || s.Percentage%10 != 0 {
				t.Errorf("answers %v: percentage %d not a multiple of 10 in [20,100]", answers, s.Percentage)
			}
		}
	}
}

// Ties in the type derivation fall to the second letter of each pair,
// unlike the personality scorer.
func TestScoreCareerTieBreakFavorsSecondLetter(t *testing.T) {
	// All 3s: items 1-5 reverse to 3, so every comparison ties.
	res, err := ScoreCareer([]int{3, 3, 3, 3, 3, 3, 3, 3, 3, 3})
	if err != nil {
		t.Fatalf("ScoreCareer: %v", err)
	}
	if res.MBTIType != "ISTP" {
		t.Errorf("type = %q, want ISTP on all ties", res.MBTIType)
	}
}

func TestScoreCareerTypeDerivation(t *testing.T) {
	// Item 3 (reversed) vs item 8 drives E/I, item 1 vs 6 drives N/S,
	// item 4 vs 9 drives F/T, item 2 vs 7 drives J/P.
	res, err := ScoreCareer([]int{1, 1, 1, 1, 3, 1, 1, 1, 1, 3})
	if err != nil {
		t.Fatalf("ScoreCareer: %v", err)
	}
	// Reversed first five: [5,5,5,5,3]. 5>1, 5>1, 5>1, 5>1 -> ENFJ.
	if res.MBTIType != "ENFJ" {
		t.Errorf("type = %q, want ENFJ", res.MBTIType)
	}
}

func TestScoreCareerAllCodesHaveLookupData(t *testing.T) {
	letters := [4][2]byte{{'E', 'I'}, {'N', 'S'}, {'F', 'T'}, {'J', 'P'}}
	for mask := 0; mask < 16; mask++ {
		code := ""
		for bit := 0; bit < 4; bit++ {
			code += string(letters[bit][(mask>>bit)&1])
		}
		if _, ok := careerTypes[code]; !ok {
			t.Errorf("derivable code %s has no lookup entry", code)
		}
	}
}

func TestScoreCareerRejectsBadInput(t *testing.T) {
	if _, err := ScoreCareer([]int{1, 2, 3}); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("short vector: err = %v, want ErrInvalidInput", err)
	}
	if _, err := ScoreCareer([]int{0, 1, 1, 1, 1, 1, 1, 1, 1, 1}); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("value below range: err = %v, want ErrInvalidInput", err)
	}
	if _, err := ScoreCareer([]int{1, 1, 1, 1, 1, 1, 1, 1, 1, 6}); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("value above range: err = %v, want ErrInvalidInput", err)
	}
}
