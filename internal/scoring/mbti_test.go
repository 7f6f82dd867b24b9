package scoring

import (
	"errors"
	"strings"
	"testing"

	"xinli/pkg/utils"
)

func allChoices(c string) []string {
	out := make([]string, MBTIQuestionCount)
	for i := range out {
		out[i] = c
	}
	return out
}

func TestScoreMBTIAllA(t *testing.T) {
	res, err := ScoreMBTI(allChoices("A"))
	if err != nil {
		t.Fatalf("ScoreMBTI: %v", err)
	}
	if res.Type != "ESTJ" {
		t.Errorf("type = %q, want ESTJ", res.Type)
	}
	// 10 E questions, 20 each for the doubled dimensions.
	want := map[string]int{"E": 10, "I": 0, "S": 20, "N": 0, "T": 20, "F": 0, "J": 20, "P": 0}
	for letter, n := range want {
		if res.Counts[letter] != n {
			t.Errorf("counts[%s] = %d, want %d", letter, res.Counts[letter], n)
		}
	}
}

func TestScoreMBTIAllB(t *testing.T) {
	res, err := ScoreMBTI(allChoices("B"))
	if err != nil {
		t.Fatalf("ScoreMBTI: %v", err)
	}
	if res.Type != "INFP" {
		t.Errorf("type = %q, want INFP", res.Type)
	}
}

func TestScoreMBTICountsSumToQuestionCount(t *testing.T) {
	choices := allChoices("A")
	for i := 0; i < len(choices); i += 3 {
		choices[i] = "B"
	}
	res, err := ScoreMBTI(choices)
	if err != nil {
		t.Fatalf("ScoreMBTI: %v", err)
	}
	total := 0
	for _, n := range res.Counts {
		total += n
	}
	if total != MBTIQuestionCount {
		t.Errorf("counts sum to %d, want %d", total, MBTIQuestionCount)
	}
}

// A tie within a pair must go to the first-listed letter of that pair.
func TestScoreMBTITieBreakFavorsFirstLetter(t *testing.T) {
	// E appears only in questions 1, 8, 15, ... (every 7th). Answer A
	// on half of those and B on the other half for a 5-5 E/I tie.
	choices := allChoices("A")
	eSeen := 0
	for i := 0; i < MBTIQuestionCount; i += 7 {
		if eSeen%2 == 1 {
			choices[i] = "B"
		}
		eSeen++
	}
	res, err := ScoreMBTI(choices)
	if err != nil {
		t.Fatalf("ScoreMBTI: %v", err)
	}
	if res.Counts["E"] != 5 || res.Counts["I"] != 5 {
		t.Fatalf("E/I counts = %d/%d, want 5/5", res.Counts["E"], res.Counts["I"])
	}
	if !strings.HasPrefix(res.Type, "E") {
		t.Errorf("type = %q, tie should resolve to E", res.Type)
	}
}

// Each pair's winning letter must have a count >= the losing letter's.
func TestScoreMBTIWinnerDominatesPair(t *testing.T) {
	patterns := [][]string{
		allChoices("A"),
		allChoices("B"),
	}
	mixed := allChoices("A")
	for i := range mixed {
		if i%2 == 0 {
			mixed[i] = "B"
		}
	}
	patterns = append(patterns, mixed)

	pairs := [4][2]string{{"E", "I"}, {"S", "N"}, {"T", "F"}, {"J", "P"}}
	for _, choices := range patterns {
		res, err := ScoreMBTI(choices)
		if err != nil {
			t.Fatalf("ScoreMBTI: %v", err)
		}
		for i, pair := range pairs {
			winner := string(res.Type[i])
			loser := pair[0]
			if winner == pair[0] {
				loser = pair[1]
			}
			if res.Counts[winner] < res.Counts[loser] {
				t.Errorf("type %s: %s won with %d < %s's %d", res.Type, winner, res.Counts[winner], loser, res.Counts[loser])
			}
		}
	}
}

func TestScoreMBTIInvalidInput(t *testing.T) {
	if _, err := ScoreMBTI(allChoices("A")[:69]); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("short vector: err = %v, want ErrInvalidInput", err)
	}
	bad := allChoices("A")
	bad[33] = "C"
	if _, err := ScoreMBTI(bad); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("bad choice: err = %v, want ErrInvalidInput", err)
	}
}
