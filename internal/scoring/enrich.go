package scoring

import (
	"encoding/json"
	"fmt"

	"xinli/pkg/utils"
)

// EnrichMBTI fills the display fields for a scored personality result
// from the static type table. Fields already present are kept. An
// unknown type code is an error: the scorer can only emit the 16 known
// codes, so anything else means the record is corrupt.
func EnrichMBTI(r *MBTIResult) error {
	if r == nil || r.Type == "" || len(r.Counts) == 0 {
		return fmt.Errorf("%w: mbti result needs type and counts", utils.ErrIncompleteResult)
	}
	info, ok := mbtiTypes[r.Type]
	if !ok {
		return fmt.Errorf("%w: unknown mbti type %q", utils.ErrIncompleteResult, r.Type)
	}
	if r.TypeName == "" {
		r.TypeName = info.typeName
	}
	if r.Epithet == "" {
		r.Epithet = info.epithet
	}
	if r.Description == "" {
		r.Description = info.description
	}
	if len(r.GeneralTraits) == 0 {
		r.GeneralTraits = info.generalTraits
	}
	if len(r.Strengths) == 0 {
		r.Strengths = info.strengths
	}
	if len(r.TenRulesToLive) == 0 {
		r.TenRulesToLive = info.tenRules
	}
	return nil
}

// EnrichIQ derives the level label and description from the score
// band. A zero correct count is legal (all questions skipped or
// wrong), so only the age field distinguishes an empty record from a
// real one.
func EnrichIQ(r *IQResult) error {
	if r == nil || r.Age == 0 {
		return fmt.Errorf("%w: iq result needs a respondent age", utils.ErrIncompleteResult)
	}
	if r.Level == "" || r.Description == "" {
		r.Level, r.Description = IQLevel(r.Score)
	}
	return nil
}

// EnrichCareer fills the type display name and recommended occupations.
// A code outside the 16-entry table yields empty fields, matching the
// lookup-miss behavior of the scorer's own table.
func EnrichCareer(r *CareerResult) error {
	if r == nil || r.MBTIType == "" || len(r.FFMScores) == 0 {
		return fmt.Errorf("%w: career result needs type and trait scores", utils.ErrIncompleteResult)
	}
	match, ok := careerTypes[r.MBTIType]
	if !ok {
		return nil
	}
	if r.MBTITypeName == "" {
		r.MBTITypeName = match.typeName
	}
	if len(r.Careers) == 0 {
		r.Careers = match.careers
	}
	return nil
}

// ParseAndEnrich deserializes a raw result payload for the given test
// type and enriches it. This is the single entry point result delivery
// uses for payloads loaded back off an order row.
func ParseAndEnrich(testType string, raw json.RawMessage) (interface{}, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty result payload", utils.ErrIncompleteResult)
	}
	switch testType {
	case "mbti":
		var r MBTIResult
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrIncompleteResult, err)
		}
		if err := EnrichMBTI(&r); err != nil {
			return nil, err
		}
		return &r, nil
	case "iq":
		var r IQResult
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrIncompleteResult, err)
		}
		if err := EnrichIQ(&r); err != nil {
			return nil, err
		}
		return &r, nil
	case "career":
		var r CareerResult
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrIncompleteResult, err)
		}
		if err := EnrichCareer(&r); err != nil {
			return nil, err
		}
		return &r, nil
	default:
		return nil, fmt.Errorf("%w: unknown test type %q", utils.ErrInvalidInput, testType)
	}
}

// LetterMeaning labels a preference letter for display, e.g.
// "E" -> "Extroverted - 外向的".
func LetterMeaning(letter string) string {
	return letterMeanings[letter]
}
