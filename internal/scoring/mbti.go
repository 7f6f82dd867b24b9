package scoring

import (
	"fmt"

	"xinli/pkg/utils"
)

// MBTIQuestionCount is the length of a complete answer vector.
const MBTIQuestionCount = 70

// answerKey maps each question to the letter scored by choice A and
// choice B. The question bank cycles through the four dimensions in a
// fixed 7-question pattern.
var answerKey = func() [MBTIQuestionCount][2]byte {
	cycle := [7][2]byte{
		{'E', 'I'},
		{'S', 'N'},
		{'S', 'N'},
		{'T', 'F'},
		{'T', 'F'},
		{'J', 'P'},
		{'J', 'P'},
	}
	var key [MBTIQuestionCount][2]byte
	for i := range key {
		key[i] = cycle[i%7]
	}
	return key
}()

// ScoreMBTI tallies 70 A/B choices into a 4-letter type code plus the
// full 8-way letter count map. Ties within a pair go to the first
// letter: E over I, S over N, T over F, J over P.
func ScoreMBTI(choices []string) (*MBTIResult, error) {
	if len(choices) != MBTIQuestionCount {
		return nil, fmt.Errorf("%w: expected %d choices, got %d", utils.ErrInvalidInput, MBTIQuestionCount, len(choices))
	}

	counts := map[string]int{"E": 0, "I": 0, "S": 0, "N": 0, "T": 0, "F": 0, "J": 0, "P": 0}
	for i, c := range choices {
		var letter byte
		switch c {
		case "A":
			letter = answerKey[i][0]
		case "B":
			letter = answerKey[i][1]
		default:
			return nil, fmt.Errorf("%w: choice %d must be \"A\" or \"B\", got %q", utils.ErrInvalidInput, i+1, c)
		}
		counts[string(letter)]++
	}

	code := ""
	for _, pair := range [4][2]string{{"E", "I"}, {"S", "N"}, {"T", "F"}, {"J", "P"}} {
		if counts[pair[0]] >= counts[pair[1]] {
			code += pair[0]
		} else {
			code += pair[1]
		}
	}

	return &MBTIResult{Type: code, Counts: counts}, nil
}
