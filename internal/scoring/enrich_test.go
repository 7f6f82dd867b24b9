package scoring

import (
	"encoding/json"
	"errors"
	"testing"

	"xinli/pkg/utils"
)

func TestEnrichMBTIFillsDisplayFields(t *testing.T) {
	res, err := ScoreMBTI(allChoices("A"))
	if err != nil {
		t.Fatalf("ScoreMBTI: %v", err)
	}
	if err := EnrichMBTI(res); err != nil {
		t.Fatalf("EnrichMBTI: %v", err)
	}
	if res.TypeName == "" || res.Epithet == "" || res.Description == "" {
		t.Errorf("display fields not filled: %+v", res)
	}
	if len(res.GeneralTraits) == 0 || len(res.Strengths) == 0 || len(res.TenRulesToLive) == 0 {
		t.Errorf("list fields not filled: %+v", res)
	}
}

func TestEnrichMBTIKeepsExistingFields(t *testing.T) {
	res := &MBTIResult{
		Type:     "INTP",
		Counts:   map[string]int{"I": 1},
		TypeName: "自定义",
	}
	if err := EnrichMBTI(res); err != nil {
		t.Fatalf("EnrichMBTI: %v", err)
	}
	if res.TypeName != "自定义" {
		t.Errorf("typeName overwritten: %q", res.TypeName)
	}
	if res.Epithet == "" {
		t.Errorf("missing epithet not filled")
	}
}

func TestEnrichMBTIIncomplete(t *testing.T) {
	if err := EnrichMBTI(&MBTIResult{}); !errors.Is(err, utils.ErrIncompleteResult) {
		t.Errorf("empty record: err = %v, want ErrIncompleteResult", err)
	}
	bad := &MBTIResult{Type: "XXXX", Counts: map[string]int{"E": 1}}
	if err := EnrichMBTI(bad); !errors.Is(err, utils.ErrIncompleteResult) {
		t.Errorf("unknown type: err = %v, want ErrIncompleteResult", err)
	}
}

func TestEnrichIQ(t *testing.T) {
	r := &IQResult{Score: 125, CorrectCount: 57, Age: 25}
	if err := EnrichIQ(r); err != nil {
		t.Fatalf("EnrichIQ: %v", err)
	}
	if r.Level != "优秀" {
		t.Errorf("level = %q, want 优秀", r.Level)
	}
	if err := EnrichIQ(&IQResult{Score: 100}); !errors.Is(err, utils.ErrIncompleteResult) {
		t.Errorf("missing age: want ErrIncompleteResult")
	}
}

func TestEnrichCareer(t *testing.T) {
	res, err := ScoreCareer([]int{3, 3, 3, 3, 3, 3, 3, 3, 3, 3})
	if err != nil {
		t.Fatalf("ScoreCareer: %v", err)
	}
	if err := EnrichCareer(res); err != nil {
		t.Fatalf("EnrichCareer: %v", err)
	}
	if res.MBTITypeName == "" || len(res.Careers) == 0 {
		t.Errorf("lookup fields not filled: %+v", res)
	}

	// A code outside the table keeps empty display fields.
	odd := &CareerResult{MBTIType: "ZZZZ", FFMScores: []FFMScore{{Trait: "开放性", Percentage: 20}}}
	if err := EnrichCareer(odd); err != nil {
		t.Fatalf("EnrichCareer: %v", err)
	}
	if odd.MBTITypeName != "" || len(odd.Careers) != 0 {
		t.Errorf("unmatched code should stay empty: %+v", odd)
	}
}

func TestParseAndEnrich(t *testing.T) {
	raw, _ := json.Marshal(IQResult{Score: 102, CorrectCount: 45, Age: 25})
	got, err := ParseAndEnrich("iq", raw)
	if err != nil {
		t.Fatalf("ParseAndEnrich: %v", err)
	}
	iq, ok := got.(*IQResult)
	if !ok {
		t.Fatalf("got %T, want *IQResult", got)
	}
	if iq.Level == "" {
		t.Errorf("level not enriched")
	}

	if _, err := ParseAndEnrich("tarot", raw); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("unknown test type: err = %v, want ErrInvalidInput", err)
	}
	if _, err := ParseAndEnrich("iq", nil); !errors.Is(err, utils.ErrIncompleteResult) {
		t.Errorf("empty payload: err = %v, want ErrIncompleteResult", err)
	}
	if _, err := ParseAndEnrich("mbti", json.RawMessage(`{"type":`)); !errors.Is(err, utils.ErrIncompleteResult) {
		t.Errorf("malformed payload: err = %v, want ErrIncompleteResult", err)
	}
}
